// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
	// Details lists the unmet password requirements, when that is the cause.
	Details []string `json:"details,omitempty"`
}

// CountResponse reports how many records an operation touched.
type CountResponse struct {
	Count int64 `json:"count"`
}

// RetentionOverview combines the resolved retention windows with the
// current statistics.
type RetentionOverview struct {
	Config     RetentionConfig     `json:"config"`
	Statistics RetentionStatistics `json:"statistics"`
}

// MaintenanceResponse is the 503 body served while maintenance mode is on.
type MaintenanceResponse struct {
	Error string `json:"error"`
	MaintenanceStatus
}

// PasswordPolicyOverview is the resolved password policy together with its
// human readable requirements.
type PasswordPolicyOverview struct {
	Policy       PasswordPolicy `json:"policy"`
	Requirements []string       `json:"requirements"`
}

// AccountProfile is the caller's own account as shown on the account page.
type AccountProfile struct {
	User
	// DaysUntilExpiration is absent when password expiration is disabled.
	DaysUntilExpiration  *int     `json:"days_until_expiration,omitempty"`
	PasswordRequirements []string `json:"password_requirements"`
}
