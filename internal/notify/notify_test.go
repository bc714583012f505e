// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

func receive(t *testing.T, ch <-chan models.ConfigChange) models.ConfigChange {
	t.Helper()

	select {
	case change, ok := <-ch:
		require.True(t, ok, "channel closed")
		return change
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
	return models.ConfigChange{}
}

// ── LocalBus ──────────────────────────────────────────────────────────────────

func TestLocalBus_FanOut(t *testing.T) {
	bus := NewLocalBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	b, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	change := models.ConfigChange{Key: models.KeyPasswordRequiredLength, Category: models.CategoryPasswordSecurity}
	require.NoError(t, bus.Publish(ctx, change))

	assert.Equal(t, change.Key, receive(t, a).Key)
	assert.Equal(t, change.Key, receive(t, b).Key)
}

func TestLocalBus_CancelClosesChannel(t *testing.T) {
	bus := NewLocalBus()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestLocalBus_PublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewLocalBus()
	_, err := bus.Subscribe(context.Background())
	require.NoError(t, err)

	for i := 0; i < subscriberBuffer*2; i++ {
		require.NoError(t, bus.Publish(context.Background(), models.ConfigChange{Key: "k"}))
	}
}

func TestLocalBus_Closed(t *testing.T) {
	bus := NewLocalBus()
	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	assert.ErrorIs(t, bus.Publish(context.Background(), models.ConfigChange{}), ErrBusClosed)
	_, err := bus.Subscribe(context.Background())
	assert.ErrorIs(t, err, ErrBusClosed)
}

// ── RedisBus ──────────────────────────────────────────────────────────────────

func newTestRedisBus(t *testing.T) (*miniredis.Miniredis, *RedisBus) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	bus := NewRedisBusFromClient(client, "", logger.Nop())
	t.Cleanup(func() { bus.Close() })

	return mr, bus
}

func TestRedisBus_PublishSubscribe(t *testing.T) {
	_, bus := newTestRedisBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	change := models.ConfigChange{
		Key:        models.KeyMaxFailedLoginAttempts,
		Category:   models.CategorySecurity,
		ModifiedBy: "admin@example.com",
		ModifiedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, bus.Publish(ctx, change))

	got := receive(t, ch)
	assert.Equal(t, change.Key, got.Key)
	assert.Equal(t, change.ModifiedBy, got.ModifiedBy)
	assert.True(t, change.ModifiedAt.Equal(got.ModifiedAt))
}

func TestRedisBus_IgnoresMalformedPayload(t *testing.T) {
	mr, bus := newTestRedisBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	mr.Publish(config.DefaultRedisChannel, "not json")
	require.NoError(t, bus.Publish(ctx, models.ConfigChange{Key: "after"}))

	assert.Equal(t, "after", receive(t, ch).Key)
}

func TestNewBus_FallsBackToLocal(t *testing.T) {
	bus, err := NewBus(context.Background(), config.Redis{}, logger.Nop())
	require.NoError(t, err)
	defer bus.Close()

	_, ok := bus.(*LocalBus)
	assert.True(t, ok)
}

func TestNewBus_UsesRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	bus, err := NewBus(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	defer bus.Close()

	_, ok := bus.(*RedisBus)
	assert.True(t, ok)
}

func TestNewRedisBus_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisBus(ctx, config.Redis{Address: "127.0.0.1:1"}, logger.Nop())
	assert.Error(t, err)
}
