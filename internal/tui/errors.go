// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/service"
)

var errNilServices = errors.New("tui: services are required")

// humanizeError turns err into the text of the error overlay. File system
// errors keep their path so the user can tell which file failed.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := service.UserMessage(err)
	if msg != app.MsgUnexpectedError {
		return msg
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path + ": " + pathErr.Err.Error()
	}
	return err.Error()
}
