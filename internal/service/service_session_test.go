// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

const testUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// sessionsAt returns a session service whose clock is fixed to *clock.
func sessionsAt(env *testEnv, clock *time.Time) *sessionService {
	s := NewSessionService(env.storages.SessionRepository, env.storages.UserRepository, logger.Nop()).(*sessionService)
	s.now = func() time.Time { return *clock }
	return s
}

// Scenario B.
func TestSession_RefreshExtendsToPersistentTTL(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	t0 := time.Now().UTC().Truncate(time.Second)
	clock := t0
	sessions := sessionsAt(env, &clock)

	first, err := sessions.CreateOrRefresh(ctx, user.UserID, "s-1", "203.0.113.7", testUserAgent, false)
	require.NoError(t, err)
	require.NotNil(t, first.ExpiresAt)
	assert.WithinDuration(t, t0.Add(time.Hour), *first.ExpiresAt, time.Second)
	assert.False(t, first.IsPersistent)
	assert.Equal(t, "captain@airline.test", first.UserEmail)
	assert.Equal(t, "Desktop", first.Device)

	clock = t0.Add(10 * time.Minute)
	second, err := sessions.CreateOrRefresh(ctx, user.UserID, "s-1", "203.0.113.7", testUserAgent, true)
	require.NoError(t, err)

	assert.WithinDuration(t, t0, second.CreatedAt, time.Second, "creation time is kept")
	assert.WithinDuration(t, clock.Add(30*24*time.Hour), *second.ExpiresAt, time.Second)
	assert.True(t, second.IsPersistent)
	assert.True(t, second.IsActive)
	assert.Equal(t, first.ID, second.ID)
}

func TestSession_CreateValidatesInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	_, err := env.services.SessionService.CreateOrRefresh(ctx, user.UserID, "  ", "", "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.services.SessionService.CreateOrRefresh(ctx, user.UserID, strings.Repeat("s", 129), "", "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.services.SessionService.CreateOrRefresh(ctx, 4242, "s-1", "", "", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_IDOwnedByAnotherUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice@airline.test")
	bob := env.createUser(t, "bob@airline.test")

	_, err := env.services.SessionService.CreateOrRefresh(ctx, alice.UserID, "shared", "", "", false)
	require.NoError(t, err)

	_, err = env.services.SessionService.CreateOrRefresh(ctx, bob.UserID, "shared", "", "", false)
	assert.ErrorIs(t, err, ErrConflict)

	session, err := env.services.SessionService.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, session.UserID)
}

func TestSession_Touch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	t0 := time.Now().UTC().Truncate(time.Second)
	clock := t0
	sessions := sessionsAt(env, &clock)

	_, err := sessions.CreateOrRefresh(ctx, user.UserID, "s-1", "", "", false)
	require.NoError(t, err)

	clock = t0.Add(45 * time.Minute)
	touched, err := sessions.Touch(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, touched)

	session, err := sessions.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.WithinDuration(t, clock, session.LastActivity, time.Second)
	assert.WithinDuration(t, clock.Add(time.Hour), *session.ExpiresAt, time.Second)

	clock = t0.Add(3 * time.Hour)
	touched, err = sessions.Touch(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, touched, "an expired session is not revived")

	touched, err = sessions.Touch(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, touched)
}

func TestSession_ListAndRevoke(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice@airline.test")
	bob := env.createUser(t, "bob@airline.test")
	svc := env.services.SessionService

	for _, id := range []string{"a-1", "a-2", "a-3"} {
		_, err := svc.CreateOrRefresh(ctx, alice.UserID, id, "", "", false)
		require.NoError(t, err)
	}
	_, err := svc.CreateOrRefresh(ctx, bob.UserID, "b-1", "", "", false)
	require.NoError(t, err)

	active, err := svc.ListActive(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	assert.ErrorIs(t, svc.RevokeOwned(ctx, alice.UserID, "b-1"), ErrNotFound)
	assert.ErrorIs(t, svc.RevokeOwned(ctx, alice.UserID, "missing"), ErrNotFound)
	require.NoError(t, svc.RevokeOwned(ctx, alice.UserID, "a-1"))
	require.NoError(t, svc.Revoke(ctx, "a-1"), "revoking twice succeeds")

	n, err := svc.RevokeAllExcept(ctx, alice.UserID, "a-3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err = svc.ListActive(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a-3", active[0].SessionID)

	n, err = svc.RevokeAll(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	bobs, err := svc.ListActive(ctx, bob.UserID)
	require.NoError(t, err)
	assert.Len(t, bobs, 1)
}

func TestSession_SweepAndCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "captain@airline.test")

	t0 := time.Now().UTC().Truncate(time.Second)
	clock := t0
	sessions := sessionsAt(env, &clock)

	_, err := sessions.CreateOrRefresh(ctx, user.UserID, "short", "", "", false)
	require.NoError(t, err)
	_, err = sessions.CreateOrRefresh(ctx, user.UserID, "long", "", "", true)
	require.NoError(t, err)

	count, err := sessions.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	clock = t0.Add(2 * time.Hour)
	swept, err := sessions.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	swept, err = sessions.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, swept)

	count, err = sessions.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	short, err := sessions.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, short.IsActive)
}

func TestSession_Lifetime(t *testing.T) {
	assert.Equal(t, time.Hour, models.SessionTTL(false))
	assert.Equal(t, 30*24*time.Hour, models.SessionTTL(true))
}
