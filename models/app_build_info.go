// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// unknownBuildValue is what the binaries print for values not linked in.
const unknownBuildValue = "N/A"

// AppBuildInfo describes the running binary as set with -ldflags -X.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// NewAppBuildInfo trims the values and treats "N/A" as not set.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: knownBuildValue(version),
		Date:    knownBuildValue(date),
		Commit:  knownBuildValue(commit),
	}
}

func knownBuildValue(v string) string {
	v = strings.TrimSpace(v)
	if v == unknownBuildValue {
		return ""
	}
	return v
}
