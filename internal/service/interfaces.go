// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/airline-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigService is the dynamic configuration store. Reads never fail: any
// error degrades to "absent" and the caller applies its default.
type ConfigService interface {
	Get(ctx context.Context, key string) (string, bool)
	GetBool(ctx context.Context, key string) (bool, bool)
	GetInt(ctx context.Context, key string) (int, bool)
	// GetCategory decrypts every value; values that fail to decrypt are "".
	GetCategory(ctx context.Context, category string) map[string]string

	// Set updates a provisioned key. Unknown keys yield ErrNotFound.
	Set(ctx context.Context, key, value, modifiedBy string) error
	// SetCategory updates several keys that must all belong to category.
	SetCategory(ctx context.Context, category string, values map[string]string, modifiedBy string) error
	// Entries lists a category for administration with encrypted values
	// masked.
	Entries(ctx context.Context, category string) ([]models.ConfigEntry, error)
}

type PasswordPolicyService interface {
	Resolve(ctx context.Context) models.PasswordPolicy
	Describe(ctx context.Context) []string
	// Apply resolves the policy and pushes it into live password validation.
	Apply(ctx context.Context) models.PasswordPolicy
}

type LockoutService interface {
	Resolve(ctx context.Context) models.LockoutPolicy
	IsEnabled(ctx context.Context) bool
	// Apply resolves the policy and pushes it into the options used for new
	// users.
	Apply(ctx context.Context) models.LockoutPolicy
	// RegisterFailure counts a failed attempt and locks the account when the
	// threshold is reached. It reports whether the account is now locked.
	RegisterFailure(ctx context.Context, user models.User) (bool, error)
}

type PasswordExpirationService interface {
	IsExpired(ctx context.Context, user models.User) bool
	// DaysUntilExpiration is nil when expiration is disabled and may be
	// negative once the password is overdue.
	DaysUntilExpiration(ctx context.Context, user models.User) *int
	MarkChanged(ctx context.Context, userID int64) error
}

type TwoFactorService interface {
	BeginEnrollment(ctx context.Context, userID int64) (models.TwoFactorEnrollment, error)
	// ConfirmEnrollment enables 2FA and returns the recovery codes. They are
	// never retrievable again.
	ConfirmEnrollment(ctx context.Context, userID int64, code string) ([]string, error)
	VerifyCode(ctx context.Context, userID int64, code string) bool
	SignInSecondFactor(ctx context.Context, pending models.PendingSignIn, code string) (models.SignInResult, error)
	RedeemRecoveryCode(ctx context.Context, userID int64, code string) (models.SignInResult, error)
	ResetRecoveryCodes(ctx context.Context, userID int64) ([]string, error)
	Disable(ctx context.Context, userID int64) error
	Status(ctx context.Context, userID int64) (models.TwoFactorStatus, error)
}

type SessionService interface {
	CreateOrRefresh(ctx context.Context, userID int64, sessionID, clientIP, userAgent string, persistent bool) (models.Session, error)
	// Touch extends an active session and reports whether it was.
	Touch(ctx context.Context, sessionID string) (bool, error)
	Get(ctx context.Context, sessionID string) (models.Session, error)
	ListActive(ctx context.Context, userID int64) ([]models.Session, error)

	Revoke(ctx context.Context, sessionID string) error
	// RevokeOwned revokes sessionID only if it belongs to userID.
	RevokeOwned(ctx context.Context, userID int64, sessionID string) error
	RevokeAllExcept(ctx context.Context, userID int64, keepSessionID string) (int64, error)
	RevokeAll(ctx context.Context, userID int64) (int64, error)

	SweepExpired(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type RetentionService interface {
	ResolveConfig(ctx context.Context) models.RetentionConfig
	Cleanup(ctx context.Context, category models.RetentionCategory) (int64, error)
	CleanupAll(ctx context.Context) (models.RetentionResult, error)
	Statistics(ctx context.Context) (models.RetentionStatistics, error)
}

type RecorderService interface {
	RecordLogin(ctx context.Context, attempt models.LoginAttempt) error
	RecordAudit(ctx context.Context, record models.AuditRecord) error
	RecentLogins(ctx context.Context, userID int64, limit uint64) ([]models.LoginHistoryEntry, error)
	AuditTrail(ctx context.Context, userID int64, limit uint64) ([]models.AuditLogEntry, error)
	ApplicationLogs(ctx context.Context, limit uint64) ([]models.ApplicationLog, error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	CompleteTwoFactor(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error)
	CompleteRecovery(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error)
	Logout(ctx context.Context, identity models.Identity) error
	// Authenticate resolves an access token into the caller's identity.
	Authenticate(ctx context.Context, accessToken string) (models.Identity, error)
	// RefreshToken issues a new access token for the caller's session, for
	// use after the caller's own security stamp rotated.
	RefreshToken(ctx context.Context, identity models.Identity) (models.LoginResult, error)
}

type AccountService interface {
	Profile(ctx context.Context, userID int64) (models.User, error)
	ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	SetTheme(ctx context.Context, userID int64, theme string) error
}

type UserService interface {
	CreateUser(ctx context.Context, actor models.Identity, req models.CreateUserRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, actor models.Identity, userID int64) error
	SetRoles(ctx context.Context, actor models.Identity, userID int64, roles []string) error
	ResetPassword(ctx context.Context, actor models.Identity, userID int64, req models.AdminResetPasswordRequest) error
}

type MaintenanceService interface {
	Status(ctx context.Context) models.MaintenanceStatus
}

// Mailer sends template-free messages.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
