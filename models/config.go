// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SystemActor is recorded as LastModifiedBy when a configuration change has
// no human author (seed data, background jobs).
const SystemActor = "System"

// Configuration categories as seeded by the migrations.
const (
	CategorySecurity         = "Security"
	CategoryPasswordSecurity = "Password Security"
	CategoryDataRetention    = "Data Retention"
	CategorySMTP             = "SMTP"
	CategoryMaintenance      = "Maintenance"
	CategoryTheme            = "Theme"
)

// Configuration keys. Keys are provisioned by migrations and can only be
// updated, never created, through the configuration service.
const (
	KeyPasswordRequireDigit          = "Security_Password_RequireDigit"
	KeyPasswordRequireLowercase      = "Security_Password_RequireLowercase"
	KeyPasswordRequireUppercase      = "Security_Password_RequireUppercase"
	KeyPasswordRequireNonAlphanum    = "Security_Password_RequireNonAlphanumeric"
	KeyPasswordRequiredLength        = "Security_Password_RequiredLength"
	KeyPasswordRequiredUniqueChars   = "Security_Password_RequiredUniqueChars"
	KeyMaxFailedLoginAttempts        = "Security_MaxFailedLoginAttempts"
	KeyLockoutDurationMinutes        = "Security_LockoutDurationMinutes"
	KeyPasswordExpirationDays        = "Security_PasswordExpirationDays"
	KeyRetentionApplicationLogsDays  = "DataRetention_ApplicationLogs_Days"
	KeyRetentionLoginHistoryDays     = "DataRetention_LoginHistory_Days"
	KeyRetentionAuditLogsDays        = "DataRetention_AuditLogs_Days"
	KeyRetentionInactiveSessionsDays = "DataRetention_InactiveSessions_Days"
	KeyRetentionEnableAutoCleanup    = "DataRetention_EnableAutoCleanup"
	KeySMTPHost                      = "SMTP_Host"
	KeySMTPPort                      = "SMTP_Port"
	KeySMTPUsername                  = "SMTP_Username"
	KeySMTPPassword                  = "SMTP_Password"
	KeySMTPFromEmail                 = "SMTP_FromEmail"
	KeySMTPFromName                  = "SMTP_FromName"
	KeySMTPEnableSSL                 = "SMTP_EnableSSL"
	KeyMaintenanceEnabled            = "Maintenance_Mode_Enabled"
	KeyMaintenanceMessage            = "Maintenance_Mode_Message"
	KeyMaintenanceEstimatedEnd       = "Maintenance_Mode_EstimatedEnd"
	KeyThemeDefault                  = "Theme_Default"
)

// ConfigEntry is a single named setting stored in the app_configurations table.
// There is exactly one row per Key.
type ConfigEntry struct {
	// Key is the unique, non-empty setting name.
	Key string `json:"key"`

	// Value holds the stored string. When IsEncrypted is set the persisted
	// value is ciphertext; the service layer decrypts it on read.
	Value string `json:"value"`

	// Category groups related settings for administration screens.
	Category string `json:"category"`

	// Description is a human readable explanation of the setting.
	Description string `json:"description,omitempty"`

	// IsEncrypted marks values that are encrypted at rest.
	IsEncrypted bool `json:"is_encrypted"`

	// LastModified is the time of the last successful Set.
	LastModified time.Time `json:"last_modified"`

	// LastModifiedBy identifies the actor of the last change, or SystemActor.
	LastModifiedBy string `json:"last_modified_by"`
}

// TableName returns the name of the database table
// associated with the ConfigEntry model.
func (c ConfigEntry) TableName() string {
	return "app_configurations"
}

// ConfigChange is broadcast after a configuration value has been updated.
type ConfigChange struct {
	Key        string    `json:"key"`
	Category   string    `json:"category"`
	ModifiedBy string    `json:"modified_by"`
	ModifiedAt time.Time `json:"modified_at"`
}
