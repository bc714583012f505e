// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ApplicationLog is a persisted log event, written for warnings and errors so
// operators can inspect them without access to stdout.
type ApplicationLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Exception string    `json:"exception,omitempty"`
	LogEvent  string    `json:"log_event,omitempty"`
}

// TableName returns the name of the database table
// associated with the ApplicationLog model.
func (a ApplicationLog) TableName() string {
	return "application_logs"
}
