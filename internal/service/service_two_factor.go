// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base32"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

const (
	totpPeriod     = 30
	totpSkew       = 1
	totpSecretSize = 20
	totpDigits     = otp.DigitsSix
)

var b32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// twoFactorService drives Disabled -> PendingVerification -> Enabled ->
// Disabled. The pending secret lives on the user row, so an enrollment
// survives across requests and processes.
type twoFactorService struct {
	users   store.UserRepository
	lockout LockoutService
	issuer  string
	now     func() time.Time

	logger *logger.Logger
}

func NewTwoFactorService(users store.UserRepository, lockout LockoutService, issuer string, logger *logger.Logger) TwoFactorService {
	return &twoFactorService{
		users:   users,
		lockout: lockout,
		issuer:  issuer,
		now:     time.Now,
		logger:  logger,
	}
}

// BeginEnrollment replaces any unconfirmed secret with a fresh one.
func (t *twoFactorService) BeginEnrollment(ctx context.Context, userID int64) (models.TwoFactorEnrollment, error) {
	log := logger.FromContext(ctx)

	user, err := t.user(ctx, userID)
	if err != nil {
		return models.TwoFactorEnrollment{}, err
	}
	if user.TwoFactorEnabled {
		return models.TwoFactorEnrollment{}, fmt.Errorf("%w: two-factor authentication is already enabled", ErrConflict)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      t.issuer,
		AccountName: user.Email,
		Period:      totpPeriod,
		SecretSize:  totpSecretSize,
		Digits:      totpDigits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		log.Err(err).Str("func", "*twoFactorService.BeginEnrollment").Msg("error generating authenticator key")
		return models.TwoFactorEnrollment{}, fmt.Errorf("generate authenticator key: %w", err)
	}

	if err = t.users.SetTwoFactor(ctx, userID, false, key.Secret()); err != nil {
		log.Err(err).Str("func", "*twoFactorService.BeginEnrollment").Int64("user_id", userID).Msg("error storing authenticator key")
		return models.TwoFactorEnrollment{}, mapStoreError(err)
	}

	return models.TwoFactorEnrollment{
		SharedKey:        key.Secret(),
		AuthenticatorURI: key.URL(),
	}, nil
}

func (t *twoFactorService) ConfirmEnrollment(ctx context.Context, userID int64, code string) ([]string, error) {
	log := logger.FromContext(ctx)

	user, err := t.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TwoFactorEnabled {
		return nil, fmt.Errorf("%w: two-factor authentication is already enabled", ErrConflict)
	}
	if user.AuthenticatorKey == "" {
		return nil, fmt.Errorf("%w: no enrollment in progress", ErrInvalidInput)
	}
	if !t.validate(user.AuthenticatorKey, code) {
		return nil, ErrInvalidCode
	}

	if err = t.users.SetTwoFactor(ctx, userID, true, user.AuthenticatorKey); err != nil {
		log.Err(err).Str("func", "*twoFactorService.ConfirmEnrollment").Int64("user_id", userID).Msg("error enabling two-factor authentication")
		return nil, mapStoreError(err)
	}

	codes, err := t.issueRecoveryCodes(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", userID).Msg("two-factor authentication enabled")
	return codes, nil
}

func (t *twoFactorService) VerifyCode(ctx context.Context, userID int64, code string) bool {
	user, err := t.user(ctx, userID)
	if err != nil || user.AuthenticatorKey == "" {
		return false
	}
	return t.validate(user.AuthenticatorKey, code)
}

// SignInSecondFactor checks the lockout before the code, so a locked account
// is refused even when the code is right.
func (t *twoFactorService) SignInSecondFactor(ctx context.Context, pending models.PendingSignIn, code string) (models.SignInResult, error) {
	user, err := t.user(ctx, pending.UserID)
	if err != nil {
		return models.SignInFailed, err
	}
	if user.IsLockedOut(t.now()) {
		return models.SignInLockedOut, nil
	}
	if !user.TwoFactorEnabled {
		return models.SignInFailed, nil
	}

	if t.validate(user.AuthenticatorKey, code) {
		return models.SignInSucceeded, nil
	}

	locked, err := t.lockout.RegisterFailure(ctx, user)
	if err != nil {
		return models.SignInFailed, err
	}
	if locked {
		return models.SignInLockedOut, nil
	}
	return models.SignInInvalidCode, nil
}

func (t *twoFactorService) RedeemRecoveryCode(ctx context.Context, userID int64, code string) (models.SignInResult, error) {
	canonical := canonicalCode(code)
	if canonical == "" {
		return models.SignInFailed, nil
	}

	err := t.users.RedeemRecoveryCode(ctx, userID, hashRecoveryCode(userID, canonical), t.now().UTC())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.SignInFailed, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*twoFactorService.RedeemRecoveryCode").Int64("user_id", userID).Msg("error redeeming recovery code")
		return models.SignInFailed, err
	}

	return models.SignInSucceeded, nil
}

func (t *twoFactorService) ResetRecoveryCodes(ctx context.Context, userID int64) ([]string, error) {
	user, err := t.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.TwoFactorEnabled {
		return nil, fmt.Errorf("%w: two-factor authentication is not enabled", ErrInvalidInput)
	}

	return t.issueRecoveryCodes(ctx, userID)
}

// Disable rotates the security stamp so tokens minted under the old 2FA state
// stop working everywhere.
func (t *twoFactorService) Disable(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := t.user(ctx, userID); err != nil {
		return err
	}

	if err := t.users.SetTwoFactor(ctx, userID, false, ""); err != nil {
		log.Err(err).Str("func", "*twoFactorService.Disable").Int64("user_id", userID).Msg("error disabling two-factor authentication")
		return mapStoreError(err)
	}
	if err := t.users.DeleteRecoveryCodes(ctx, userID); err != nil {
		log.Err(err).Str("func", "*twoFactorService.Disable").Int64("user_id", userID).Msg("error deleting recovery codes")
		return mapStoreError(err)
	}
	if err := t.users.UpdateSecurityStamp(ctx, userID, newSecurityStamp()); err != nil {
		log.Err(err).Str("func", "*twoFactorService.Disable").Int64("user_id", userID).Msg("error rotating security stamp")
		return mapStoreError(err)
	}

	log.Info().Int64("user_id", userID).Msg("two-factor authentication disabled")
	return nil
}

func (t *twoFactorService) Status(ctx context.Context, userID int64) (models.TwoFactorStatus, error) {
	user, err := t.user(ctx, userID)
	if err != nil {
		return models.TwoFactorStatus{}, err
	}

	status := models.TwoFactorStatus{
		Enabled: user.TwoFactorEnabled,
		Pending: user.TwoFactorPending(),
	}

	if user.TwoFactorEnabled {
		left, err := t.users.CountRecoveryCodes(ctx, userID)
		if err != nil {
			return models.TwoFactorStatus{}, mapStoreError(err)
		}
		status.RecoveryCodesLeft = left
	}

	if status.Pending {
		status.SharedKey = user.AuthenticatorKey
		status.AuthenticatorURI, err = t.provisioningURI(user.Email, user.AuthenticatorKey)
		if err != nil {
			// the enrollment can still be restarted
			logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("stored authenticator key is unreadable")
		}
	}

	return status, nil
}

func (t *twoFactorService) issueRecoveryCodes(ctx context.Context, userID int64) ([]string, error) {
	codes, hashes, err := newRecoveryCodes(userID, models.RecoveryCodeCount)
	if err != nil {
		return nil, err
	}

	if err = t.users.ReplaceRecoveryCodes(ctx, userID, hashes); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*twoFactorService.issueRecoveryCodes").Int64("user_id", userID).Msg("error storing recovery codes")
		return nil, mapStoreError(err)
	}

	return codes, nil
}

func (t *twoFactorService) validate(secret, code string) bool {
	code = normalizeCode(code)
	if len(code) != totpDigits.Length() {
		return false
	}

	ok, err := totp.ValidateCustom(code, secret, t.now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    totpDigits,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

func (t *twoFactorService) provisioningURI(account, secret string) (string, error) {
	raw, err := b32NoPadding.DecodeString(secret)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      t.issuer,
		AccountName: account,
		Period:      totpPeriod,
		Secret:      raw,
		Digits:      totpDigits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", err
	}
	return key.URL(), nil
}

func (t *twoFactorService) user(ctx context.Context, userID int64) (models.User, error) {
	user, err := t.users.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*twoFactorService.user").Int64("user_id", userID).Msg("error loading user")
		}
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

func newSecurityStamp() string {
	return uuid.NewString()
}
