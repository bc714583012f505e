// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/models"
)

var recoveryCodePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{5}-[A-HJ-NP-Z2-9]{5}$`)

// enable runs a complete enrollment and returns the secret and the codes.
func enable(t *testing.T, env *testEnv, userID int64) (string, []string) {
	t.Helper()
	ctx := context.Background()

	enrollment, err := env.services.TwoFactorService.BeginEnrollment(ctx, userID)
	require.NoError(t, err)

	codes, err := env.services.TwoFactorService.ConfirmEnrollment(ctx, userID, totpCode(t, enrollment.SharedKey))
	require.NoError(t, err)
	return enrollment.SharedKey, codes
}

// ── enrollment ────────────────────────────────────────────────────────────────

func TestTwoFactor_BeginEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")

	enrollment, err := env.services.TwoFactorService.BeginEnrollment(context.Background(), user.UserID)
	require.NoError(t, err)

	assert.Len(t, enrollment.SharedKey, 32, "20 random bytes in unpadded base32")

	uri, err := url.Parse(enrollment.AuthenticatorURI)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", uri.Scheme)
	assert.Equal(t, "totp", uri.Host)
	assert.Equal(t, "AirlineManager", uri.Query().Get("issuer"))
	assert.Equal(t, "6", uri.Query().Get("digits"))
	assert.Equal(t, enrollment.SharedKey, uri.Query().Get("secret"))
	assert.Contains(t, uri.Path, "captain@airline.test")

	status, err := env.services.TwoFactorService.Status(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.True(t, status.Pending)
	assert.Equal(t, enrollment.SharedKey, status.SharedKey)
	assert.NotEmpty(t, status.AuthenticatorURI)
}

func TestTwoFactor_ConfirmWithWrongCodeKeepsPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	enrollment, err := env.services.TwoFactorService.BeginEnrollment(ctx, user.UserID)
	require.NoError(t, err)

	_, err = env.services.TwoFactorService.ConfirmEnrollment(ctx, user.UserID, wrongCode(t, enrollment.SharedKey))
	assert.ErrorIs(t, err, ErrInvalidCode)

	stored := env.user(t, user.UserID)
	assert.False(t, stored.TwoFactorEnabled)
	assert.Equal(t, enrollment.SharedKey, stored.AuthenticatorKey)
}

func TestTwoFactor_ConfirmWithoutEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")

	_, err := env.services.TwoFactorService.ConfirmEnrollment(context.Background(), user.UserID, "123456")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Scenario C.
func TestTwoFactor_EnableAndRedeemRecoveryCodeOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	_, codes := enable(t, env, user.UserID)

	assert.True(t, env.user(t, user.UserID).TwoFactorEnabled)
	require.Len(t, codes, models.RecoveryCodeCount)
	unique := map[string]struct{}{}
	for _, c := range codes {
		assert.Regexp(t, recoveryCodePattern, c)
		unique[c] = struct{}{}
	}
	assert.Len(t, unique, models.RecoveryCodeCount)

	result, err := env.services.TwoFactorService.RedeemRecoveryCode(ctx, user.UserID, codes[3])
	require.NoError(t, err)
	assert.Equal(t, models.SignInSucceeded, result)

	result, err = env.services.TwoFactorService.RedeemRecoveryCode(ctx, user.UserID, codes[3])
	require.NoError(t, err)
	assert.Equal(t, models.SignInFailed, result)

	status, err := env.services.TwoFactorService.Status(ctx, user.UserID)
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.Empty(t, status.SharedKey)
	assert.Equal(t, models.RecoveryCodeCount-1, status.RecoveryCodesLeft)
}

func TestTwoFactor_RecoveryCodeNormalisation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")
	_, codes := enable(t, env, user.UserID)

	typed := " " + strings.ToLower(strings.ReplaceAll(codes[0], "-", " ")) + " "
	result, err := env.services.TwoFactorService.RedeemRecoveryCode(context.Background(), user.UserID, typed)
	require.NoError(t, err)
	assert.Equal(t, models.SignInSucceeded, result)

	result, err = env.services.TwoFactorService.RedeemRecoveryCode(context.Background(), user.UserID, "not a code")
	require.NoError(t, err)
	assert.Equal(t, models.SignInFailed, result)
}

func TestTwoFactor_BeginWhenEnabledConflicts(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")
	enable(t, env, user.UserID)

	_, err := env.services.TwoFactorService.BeginEnrollment(context.Background(), user.UserID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTwoFactor_VerifyCodeAcceptsSeparators(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")
	secret, _ := enable(t, env, user.UserID)

	code := totpCode(t, secret)
	spaced := code[:3] + " " + code[3:]
	hyphen := code[:3] + "-" + code[3:]

	assert.True(t, env.services.TwoFactorService.VerifyCode(context.Background(), user.UserID, spaced))
	assert.True(t, env.services.TwoFactorService.VerifyCode(context.Background(), user.UserID, hyphen))
	assert.False(t, env.services.TwoFactorService.VerifyCode(context.Background(), user.UserID, "12345"))
}

// ── sign-in ───────────────────────────────────────────────────────────────────

func TestTwoFactor_SignInSecondFactorLocksOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.setConfig(t, models.KeyMaxFailedLoginAttempts, "2")

	user := env.createUser(t, "captain@airline.test")
	secret, _ := enable(t, env, user.UserID)
	pending := models.PendingSignIn{UserID: user.UserID}

	result, err := env.services.TwoFactorService.SignInSecondFactor(ctx, pending, wrongCode(t, secret))
	require.NoError(t, err)
	assert.Equal(t, models.SignInInvalidCode, result)

	result, err = env.services.TwoFactorService.SignInSecondFactor(ctx, pending, wrongCode(t, secret))
	require.NoError(t, err)
	assert.Equal(t, models.SignInLockedOut, result)

	result, err = env.services.TwoFactorService.SignInSecondFactor(ctx, pending, totpCode(t, secret))
	require.NoError(t, err)
	assert.Equal(t, models.SignInLockedOut, result, "a correct code does not bypass the lockout")
}

func TestTwoFactor_SignInSecondFactorSucceeds(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")
	secret, _ := enable(t, env, user.UserID)

	result, err := env.services.TwoFactorService.SignInSecondFactor(context.Background(), models.PendingSignIn{UserID: user.UserID}, totpCode(t, secret))
	require.NoError(t, err)
	assert.Equal(t, models.SignInSucceeded, result)
}

// ── reset / disable ───────────────────────────────────────────────────────────

func TestTwoFactor_ResetRecoveryCodes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	_, err := env.services.TwoFactorService.ResetRecoveryCodes(ctx, user.UserID)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, old := enable(t, env, user.UserID)
	fresh, err := env.services.TwoFactorService.ResetRecoveryCodes(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, fresh, models.RecoveryCodeCount)

	result, err := env.services.TwoFactorService.RedeemRecoveryCode(ctx, user.UserID, old[0])
	require.NoError(t, err)
	assert.Equal(t, models.SignInFailed, result, "previous codes are invalidated")
}

func TestTwoFactor_DisableRotatesStamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")
	enable(t, env, user.UserID)

	require.NoError(t, env.services.TwoFactorService.Disable(ctx, user.UserID))

	stored := env.user(t, user.UserID)
	assert.False(t, stored.TwoFactorEnabled)
	assert.Empty(t, stored.AuthenticatorKey)
	assert.NotEqual(t, user.SecurityStamp, stored.SecurityStamp)

	left, err := env.storages.UserRepository.CountRecoveryCodes(ctx, user.UserID)
	require.NoError(t, err)
	assert.Zero(t, left)

	status, err := env.services.TwoFactorService.Status(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.TwoFactorStatus{}, status)
}

func TestTwoFactor_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.TwoFactorService.Status(context.Background(), 4242)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, env.services.TwoFactorService.VerifyCode(context.Background(), 4242, "123456"))
}
