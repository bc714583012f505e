// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaintenanceStatus is read from the Maintenance configuration category.
type MaintenanceStatus struct {
	Enabled      bool   `json:"enabled"`
	Message      string `json:"message,omitempty"`
	EstimatedEnd string `json:"estimated_end,omitempty"`
}
