// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build metadata that was not injected at link
// time.
const NotAvailable = "N/A"

// BuildField is one labelled line of build metadata.
type BuildField struct {
	Label string
	Value string
}

// AppBuildInfo is the version, date and commit stamped into the journal
// binary with -ldflags. Blank values read as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.version)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.date)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.commit)
}

// Fields lists the metadata in display order.
func (a AppBuildInfo) Fields() []BuildField {
	return []BuildField{
		{Label: "Version", Value: a.BuildVersion()},
		{Label: "Date", Value: a.BuildDate()},
		{Label: "Commit", Value: a.BuildCommit()},
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return NotAvailable
	}
	return v
}
