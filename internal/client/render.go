// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/airline-guard/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

const timeLayout = "2006-01-02 15:04"

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func renderKeyValues(pairs [][2]string) string {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

func renderRetention(overview models.RetentionOverview) string {
	rows := make([][]string, 0, len(models.RetentionCategories))
	for _, category := range models.RetentionCategories {
		stats := overview.Statistics.Categories[category]
		rows = append(rows, []string{
			string(category),
			strconv.Itoa(overview.Config.Days(category)),
			strconv.FormatInt(stats.Total, 10),
			strconv.FormatInt(stats.Eligible, 10),
			optionalTime(stats.Oldest),
		})
	}

	auto := "disabled"
	if overview.Config.EnableAutoCleanup {
		auto = "enabled"
	}
	return renderTable([]string{"Category", "Days", "Rows", "Eligible", "Oldest"}, rows) +
		"\nautomatic cleanup " + auto
}

func renderRetentionResult(result models.RetentionResult) string {
	if result.Skipped {
		return "automatic cleanup is disabled, nothing deleted"
	}

	rows := make([][]string, 0, len(result.Deleted)+1)
	for _, category := range models.RetentionCategories {
		n, ok := result.Deleted[category]
		if !ok {
			continue
		}
		rows = append(rows, []string{string(category), strconv.FormatInt(n, 10)})
	}
	rows = append(rows, []string{"total", strconv.FormatInt(result.TotalDeleted, 10)})

	return renderTable([]string{"Category", "Deleted"}, rows)
}

func renderConfig(entries []models.ConfigEntry) string {
	byKey := make(map[string]models.ConfigEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	rows := make([][]string, 0, len(entries))
	for _, key := range slices.Sorted(maps.Keys(byKey)) {
		e := byKey[key]
		rows = append(rows, []string{e.Key, e.Value, e.LastModifiedBy, optionalTime(&e.LastModified)})
	}
	return renderTable([]string{"Key", "Value", "Modified by", "Modified at"}, rows)
}

func renderSessions(sessions []models.Session) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		id := s.SessionID
		if s.IsCurrent {
			id += " *"
		}
		rows = append(rows, []string{
			id,
			s.IPAddress,
			fmt.Sprintf("%s / %s", s.Browser, s.OS),
			s.LastActivity.Local().Format(timeLayout),
			optionalTime(s.ExpiresAt),
		})
	}
	return renderTable([]string{"Session", "IP", "Client", "Last activity", "Expires"}, rows)
}

func optionalTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func optionalDays(days *int) string {
	if days == nil {
		return "never"
	}
	return strconv.Itoa(*days)
}

func sortedCommandNames() []string {
	return slices.Sorted(maps.Keys(commands))
}
