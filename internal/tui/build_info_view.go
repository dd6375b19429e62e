// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := []string{titleStyle.Render("go-mood-journal"), ""}
	for _, f := range info.Fields() {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	lines = append(lines, "", helpStyle.Render("Entries never leave this device."))

	return overlayBoxStyle.Render(strings.Join(lines, "\n") + "\n\n" + helpStyle.Render("esc: back"))
}
