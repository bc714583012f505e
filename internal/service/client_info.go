// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"unicode/utf8"

	"github.com/mssola/useragent"

	"github.com/MKhiriev/airline-guard/models"
)

// Column widths of the client metadata fields.
const (
	maxIPLength        = 45
	maxUserAgentLength = 512
	maxClientField     = 100
)

// parseClientInfo derives browser, OS and device from a User-Agent header.
// The result is advisory: a header the parser cannot handle leaves those
// fields empty instead of failing the caller.
func parseClientInfo(ip, userAgent string) (info models.ClientInfo) {
	info.IPAddress = truncate(strings.TrimSpace(ip), maxIPLength)
	info.UserAgent = truncate(strings.TrimSpace(userAgent), maxUserAgentLength)
	if info.UserAgent == "" {
		return info
	}

	defer func() {
		if recover() != nil {
			info.Browser, info.OS, info.Device = "", "", ""
		}
	}()

	ua := useragent.New(info.UserAgent)

	name, version := ua.Browser()
	info.Browser = truncate(strings.TrimSpace(name+" "+majorVersion(version)), maxClientField)

	os := ua.OSInfo()
	info.OS = truncate(strings.TrimSpace(os.Name+" "+os.Version), maxClientField)

	switch {
	case ua.Bot():
		info.Device = "Bot"
	case ua.Mobile():
		info.Device = "Mobile"
		if model := ua.Model(); model != "" {
			info.Device = truncate(model, maxClientField)
		}
	default:
		info.Device = "Desktop"
	}

	return info
}

func majorVersion(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
