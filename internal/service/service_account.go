// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/internal/validators"
	"github.com/MKhiriev/airline-guard/models"
)

// PasswordResetTTL bounds how long a mailed reset link stays usable. The
// link also dies as soon as the password changes.
const PasswordResetTTL = time.Hour

// AccountDependencies are the collaborators of self-service account
// management.
type AccountDependencies struct {
	Users      store.UserRepository
	Hasher     crypto.PasswordHasher
	Passwords  validators.Validator
	Expiration PasswordExpirationService
	Sessions   SessionService
	Recorder   RecorderService
	Mailer     Mailer
}

type accountService struct {
	users      store.UserRepository
	hasher     crypto.PasswordHasher
	passwords  validators.Validator
	expiration PasswordExpirationService
	sessions   SessionService
	recorder   RecorderService
	mailer     Mailer

	tokenSignKey string
	tokenIssuer  string
	publicURL    string

	logger *logger.Logger
}

func NewAccountService(deps AccountDependencies, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		users:        deps.Users,
		hasher:       deps.Hasher,
		passwords:    deps.Passwords,
		expiration:   deps.Expiration,
		sessions:     deps.Sessions,
		recorder:     deps.Recorder,
		mailer:       deps.Mailer,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		publicURL:    cfg.PublicURL,
		logger:       logger,
	}
}

func (a *accountService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

// ChangePassword keeps the caller's own session and signs out every other
// one. The caller needs a fresh token afterwards because the stamp rotates.
func (a *accountService) ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return mapStoreError(err)
	}

	ok, err := a.hasher.Verify(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
	}
	if !ok {
		return fmt.Errorf("%w: current password is incorrect", ErrInvalidInput)
	}
	if req.CurrentPassword == req.NewPassword {
		return fmt.Errorf("%w: new password must differ from the current one", ErrInvalidInput)
	}

	if err = a.setPassword(ctx, user, req.NewPassword); err != nil {
		return err
	}

	if _, err = a.sessions.RevokeAllExcept(ctx, user.UserID, identity.SessionID); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("error revoking other sessions after password change")
	}

	a.audit(ctx, models.AuditRecord{
		SubjectUserID:  user.UserID,
		SubjectEmail:   user.Email,
		ModifierUserID: user.UserID,
		ModifierEmail:  user.Email,
		Action:         models.AuditPasswordChanged,
		Changes:        "password changed by the account owner",
	})

	log.Info().Int64("user_id", user.UserID).Msg("password changed")
	return nil
}

// ForgotPassword answers the same way whether or not the address is known.
func (a *accountService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "*accountService.ForgotPassword").Msg("error loading user")
		}
		return nil
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, PasswordResetTTL, a.tokenSignKey, models.TokenClaims{
		Purpose: models.PurposePasswordReset,
		Stamp:   user.SecurityStamp,
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPassword").Msg("error issuing reset token")
		return err
	}

	link := strings.TrimRight(a.publicURL, "/") + "/reset-password?token=" + url.QueryEscape(token.SignedString)
	body := fmt.Sprintf("A password reset was requested for your account.\r\n\r\n"+
		"Open the link below within %d minutes to choose a new password:\r\n%s\r\n\r\n"+
		"If you did not request this, ignore this message.\r\n", int(PasswordResetTTL.Minutes()), link)

	if err = a.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPassword").Int64("user_id", user.UserID).Msg("error sending reset mail")
	}
	return nil
}

func (a *accountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(req.Token, a.tokenSignKey, a.tokenIssuer, models.PurposePasswordReset)
	if err != nil {
		return fmt.Errorf("%w: reset link is invalid or expired", ErrInvalidInput)
	}

	user, err := a.users.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: reset link is invalid or expired", ErrInvalidInput)
		}
		return mapStoreError(err)
	}
	if user.SecurityStamp != token.Claims.Stamp {
		return fmt.Errorf("%w: reset link was already used", ErrInvalidInput)
	}

	if err = a.setPassword(ctx, user, req.NewPassword); err != nil {
		return err
	}
	if err = a.users.SetLockoutEnd(ctx, user.UserID, nil); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("error clearing lockout after password reset")
	}
	if _, err = a.sessions.RevokeAll(ctx, user.UserID); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("error revoking sessions after password reset")
	}

	a.audit(ctx, models.AuditRecord{
		SubjectUserID:  user.UserID,
		SubjectEmail:   user.Email,
		ModifierUserID: user.UserID,
		ModifierEmail:  user.Email,
		Action:         models.AuditPasswordReset,
		Changes:        "password reset through a mailed link",
	})

	log.Info().Int64("user_id", user.UserID).Msg("password reset")
	return nil
}

func (a *accountService) SetTheme(ctx context.Context, userID int64, theme string) error {
	if !models.ValidTheme(theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, theme)
	}
	if err := a.users.SetPreferredTheme(ctx, userID, theme); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// setPassword validates against the live policy, rotates the stamp and
// clears the forced change.
func (a *accountService) setPassword(ctx context.Context, user models.User, password string) error {
	log := logger.FromContext(ctx)

	if err := a.passwords.Validate(ctx, password); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.setPassword").Msg("error hashing password")
		return err
	}

	if err = a.users.UpdatePassword(ctx, user.UserID, hash, newSecurityStamp(), nil, false); err != nil {
		log.Err(err).Str("func", "*accountService.setPassword").Int64("user_id", user.UserID).Msg("error storing password")
		return mapStoreError(err)
	}
	return a.expiration.MarkChanged(ctx, user.UserID)
}

func (a *accountService) audit(ctx context.Context, record models.AuditRecord) {
	if err := a.recorder.RecordAudit(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("action", record.Action).Msg("audit entry was not recorded")
	}
}
