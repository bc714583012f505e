// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/notify"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/validators"
	"github.com/MKhiriev/airline-guard/models"
)

// Dependencies are the process-wide resources the services are built on.
type Dependencies struct {
	Storages  *store.Storages
	Cipher    crypto.ValueCipher
	Hasher    crypto.PasswordHasher
	Publisher notify.Publisher
	Metrics   *metrics.Metrics
	BuildInfo models.AppBuildInfo
}

type Services struct {
	ConfigService             ConfigService
	PasswordPolicyService     PasswordPolicyService
	LockoutService            LockoutService
	PasswordExpirationService PasswordExpirationService
	TwoFactorService          TwoFactorService
	SessionService            SessionService
	RetentionService          RetentionService
	RecorderService           RecorderService
	AuthService               AuthService
	AccountService            AccountService
	UserService               UserService
	MaintenanceService        MaintenanceService
	AppInfoService            AppInfoService

	// Roles ranks role names for the HTTP role gates.
	Roles RoleHierarchy
	// PasswordValidator and LockoutOptions hold the live identity options
	// kept current by the policy refresher.
	PasswordValidator *validators.PasswordValidator
	LockoutOptions    *validators.LockoutOptions
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	storages := deps.Storages

	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	passwordValidator := validators.NewPasswordValidator()
	lockoutOptions := validators.NewLockoutOptions()
	roles := NewRoleHierarchy(cfg.Security.RoleHierarchy)

	configService := NewConfigService(storages.ConfigRepository, deps.Cipher, deps.Publisher, logger)
	lockout := NewLockoutService(configService, storages.UserRepository, lockoutOptions, logger)
	expiration := NewPasswordExpirationService(configService, storages.UserRepository, logger)
	twoFactor := NewTwoFactorService(storages.UserRepository, lockout, cfg.App.TOTPIssuer, logger)
	sessions := NewSessionService(storages.SessionRepository, storages.UserRepository, logger)
	recorder := NewRecorderService(storages.LoginHistoryRepository, storages.AuditLogRepository, storages.ApplicationLogRepository, logger)

	return &Services{
		ConfigService:             configService,
		PasswordPolicyService:     NewPasswordPolicyService(configService, passwordValidator, logger),
		LockoutService:            lockout,
		PasswordExpirationService: expiration,
		TwoFactorService:          twoFactor,
		SessionService:            sessions,
		RetentionService:          NewRetentionService(configService, storages.RetentionRepository, deps.Metrics, logger),
		RecorderService:           recorder,
		AuthService: NewAuthService(AuthDependencies{
			Users:      storages.UserRepository,
			Hasher:     deps.Hasher,
			Lockout:    lockout,
			Expiration: expiration,
			TwoFactor:  twoFactor,
			Sessions:   sessions,
			Recorder:   recorder,
			Metrics:    deps.Metrics,
		}, cfg.App, logger),
		AccountService: NewAccountService(AccountDependencies{
			Users:      storages.UserRepository,
			Hasher:     deps.Hasher,
			Passwords:  passwordValidator,
			Expiration: expiration,
			Sessions:   sessions,
			Recorder:   recorder,
			Mailer:     NewSMTPMailer(configService, logger),
		}, cfg.App, logger),
		UserService: NewUserService(UserDependencies{
			Users:     storages.UserRepository,
			Hasher:    deps.Hasher,
			Passwords: passwordValidator,
			Lockout:   lockoutOptions,
			Config:    configService,
			Sessions:  sessions,
			Recorder:  recorder,
			Roles:     roles,
		}, logger),
		MaintenanceService: NewMaintenanceService(configService),
		AppInfoService:     appInfo,
		Roles:              roles,
		PasswordValidator:  passwordValidator,
		LockoutOptions:     lockoutOptions,
	}, nil
}
