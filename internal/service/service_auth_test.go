// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/models"
)

func login(env *testEnv, email, password string) (models.LoginResult, error) {
	return env.services.AuthService.Login(context.Background(), models.LoginRequest{
		Email:     email,
		Password:  password,
		ClientIP:  "203.0.113.9",
		UserAgent: testUserAgent,
	})
}

// ── password step ─────────────────────────────────────────────────────────────

func TestAuth_LoginAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test", "Admin")

	result, err := login(env, "Captain@Airline.test", testPassword)
	require.NoError(t, err)
	assert.Equal(t, models.LoginSucceeded, result.Status)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.SessionID)
	assert.False(t, result.MustChangePassword)
	require.NotNil(t, result.DaysUntilExpiration)
	assert.InDelta(t, 90, *result.DaysUntilExpiration, 1)

	identity, err := env.services.AuthService.Authenticate(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, identity.UserID)
	assert.Equal(t, result.SessionID, identity.SessionID)
	assert.Equal(t, []string{"Admin"}, identity.Roles)

	session, err := env.services.SessionService.Get(ctx, result.SessionID)
	require.NoError(t, err)
	assert.False(t, session.IsPersistent)
	assert.Equal(t, "203.0.113.9", session.IPAddress)

	history, err := env.services.RecorderService.RecentLogins(ctx, user.UserID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
}

func TestAuth_LogoutRevokesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "captain@airline.test")

	result, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	identity, err := env.services.AuthService.Authenticate(ctx, result.AccessToken)
	require.NoError(t, err)

	require.NoError(t, env.services.AuthService.Logout(ctx, identity))

	_, err = env.services.AuthService.Authenticate(ctx, result.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")

	_, unknownErr := login(env, "nobody@airline.test", testPassword)
	_, wrongErr := login(env, "captain@airline.test", "Wr0ngPassword")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	history, err := env.services.RecorderService.RecentLogins(context.Background(), user.UserID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.FailureInvalidPassword, history[0].FailureReason)
}

// Scenario A.
func TestAuth_LockoutAfterRepeatedFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	for i := 1; i <= 4; i++ {
		_, err := login(env, "captain@airline.test", "Wr0ngPassword")
		require.ErrorIs(t, err, ErrInvalidCredentials, "attempt %d", i)
	}
	_, err := login(env, "captain@airline.test", "Wr0ngPassword")
	require.ErrorIs(t, err, ErrLockedOut, "the fifth failure locks the account")

	stored := env.user(t, user.UserID)
	require.NotNil(t, stored.LockoutEnd)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *stored.LockoutEnd, 5*time.Second)

	_, err = login(env, "captain@airline.test", testPassword)
	assert.ErrorIs(t, err, ErrLockedOut, "the right password is refused while locked")

	history, err := env.services.RecorderService.RecentLogins(ctx, user.UserID, 10)
	require.NoError(t, err)
	require.Len(t, history, 6)
	assert.Equal(t, models.FailureLockedOut, history[0].FailureReason)
}

func TestAuth_LockoutExpires(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, env.storages.UserRepository.SetLockoutEnd(ctx, user.UserID, &past))

	_, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	assert.Zero(t, env.user(t, user.UserID).FailedAccessCount)
}

func TestAuth_SuccessResetsFailureCount(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "captain@airline.test")

	for i := 0; i < 3; i++ {
		_, _ = login(env, "captain@airline.test", "Wr0ngPassword")
	}
	assert.Equal(t, 3, env.user(t, user.UserID).FailedAccessCount)

	_, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	assert.Zero(t, env.user(t, user.UserID).FailedAccessCount)
}

func TestAuth_ExpiredPasswordRequiresChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")
	require.NoError(t, env.storages.UserRepository.SetPasswordChangedAt(ctx, user.UserID, time.Now().UTC().AddDate(0, 0, -100)))

	result, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	assert.True(t, result.MustChangePassword)
	require.NotNil(t, result.DaysUntilExpiration)
	assert.Negative(t, *result.DaysUntilExpiration)
	assert.True(t, env.user(t, user.UserID).MustChangePassword)

	identity, err := env.services.AuthService.Authenticate(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.True(t, identity.MustChangePassword)
}

func TestAuth_PersistentSignIn(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "captain@airline.test")

	result, err := env.services.AuthService.Login(context.Background(), models.LoginRequest{
		Email:      "captain@airline.test",
		Password:   testPassword,
		RememberMe: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(models.PersistentSessionTTL), *result.ExpiresAt, time.Minute)

	session, err := env.services.SessionService.Get(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.True(t, session.IsPersistent)
}

// ── tokens ────────────────────────────────────────────────────────────────────

func TestAuth_StampRotationInvalidatesTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	result, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)

	require.NoError(t, env.storages.UserRepository.UpdateSecurityStamp(ctx, user.UserID, "rotated"))

	_, err = env.services.AuthService.Authenticate(ctx, result.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_RefreshTokenAfterStampRotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	result, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	identity, err := env.services.AuthService.Authenticate(ctx, result.AccessToken)
	require.NoError(t, err)

	require.NoError(t, env.storages.UserRepository.UpdateSecurityStamp(ctx, user.UserID, "rotated"))

	refreshed, err := env.services.AuthService.RefreshToken(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, result.SessionID, refreshed.SessionID)

	again, err := env.services.AuthService.Authenticate(ctx, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.SessionID, again.SessionID)
}

func TestAuth_RejectsForeignTokens(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "captain@airline.test")
	enabled := env.createUser(t, "first.officer@airline.test")
	enable(t, env, enabled.UserID)

	pending, err := login(env, "first.officer@airline.test", testPassword)
	require.NoError(t, err)

	_, err = env.services.AuthService.Authenticate(context.Background(), pending.PendingToken)
	assert.ErrorIs(t, err, ErrUnauthorized, "a pending token is not an access token")

	_, err = env.services.AuthService.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── second factor ─────────────────────────────────────────────────────────────

func TestAuth_TwoFactorSignIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")
	secret, _ := enable(t, env, user.UserID)

	pending, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	assert.Equal(t, models.LoginRequiresTwoFactor, pending.Status)
	assert.NotEmpty(t, pending.PendingToken)
	assert.Empty(t, pending.AccessToken)

	_, err = env.services.AuthService.CompleteTwoFactor(ctx, models.TwoFactorLoginRequest{
		PendingToken: pending.PendingToken,
		Code:         wrongCode(t, secret),
	})
	assert.ErrorIs(t, err, ErrInvalidCode)

	result, err := env.services.AuthService.CompleteTwoFactor(ctx, models.TwoFactorLoginRequest{
		PendingToken:   pending.PendingToken,
		Code:           totpCode(t, secret),
		RememberDevice: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoginSucceeded, result.Status)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RememberDeviceToken)

	history, err := env.services.RecorderService.RecentLogins(ctx, user.UserID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Success)
	assert.True(t, history[0].RequiredTwoFactor)
	assert.Equal(t, models.FailureInvalid2FACode, history[1].FailureReason)

	// the remembered device skips the second step
	remembered, err := env.services.AuthService.Login(ctx, models.LoginRequest{
		Email:               "captain@airline.test",
		Password:            testPassword,
		RememberDeviceToken: result.RememberDeviceToken,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoginSucceeded, remembered.Status)
	assert.NotEmpty(t, remembered.AccessToken)
}

func TestAuth_RememberedDeviceDiesWithStamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")
	secret, _ := enable(t, env, user.UserID)

	pending, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)
	result, err := env.services.AuthService.CompleteTwoFactor(ctx, models.TwoFactorLoginRequest{
		PendingToken:   pending.PendingToken,
		Code:           totpCode(t, secret),
		RememberDevice: true,
	})
	require.NoError(t, err)

	require.NoError(t, env.storages.UserRepository.UpdateSecurityStamp(ctx, user.UserID, "rotated"))

	again, err := env.services.AuthService.Login(ctx, models.LoginRequest{
		Email:               "captain@airline.test",
		Password:            testPassword,
		RememberDeviceToken: result.RememberDeviceToken,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoginRequiresTwoFactor, again.Status)
}

func TestAuth_RecoveryCodeSignIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")
	_, codes := enable(t, env, user.UserID)

	pending, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)

	_, err = env.services.AuthService.CompleteRecovery(ctx, models.TwoFactorLoginRequest{
		PendingToken: pending.PendingToken,
		Code:         "AAAAA-BBBBB",
	})
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Equal(t, 1, env.user(t, user.UserID).FailedAccessCount)

	result, err := env.services.AuthService.CompleteRecovery(ctx, models.TwoFactorLoginRequest{
		PendingToken: pending.PendingToken,
		Code:         codes[0],
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = env.services.AuthService.CompleteRecovery(ctx, models.TwoFactorLoginRequest{
		PendingToken: pending.PendingToken,
		Code:         codes[0],
	})
	assert.ErrorIs(t, err, ErrInvalidCode, "a recovery code works once")
}

func TestAuth_PendingTokenDiesWithStamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")
	secret, _ := enable(t, env, user.UserID)

	pending, err := login(env, "captain@airline.test", testPassword)
	require.NoError(t, err)

	require.NoError(t, env.storages.UserRepository.UpdateSecurityStamp(ctx, user.UserID, "rotated"))

	_, err = env.services.AuthService.CompleteTwoFactor(ctx, models.TwoFactorLoginRequest{
		PendingToken: pending.PendingToken,
		Code:         totpCode(t, secret),
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
