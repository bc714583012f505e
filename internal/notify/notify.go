// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify carries "configuration changed" events from the process
// that wrote a setting to every process that caches policy derived from it.
//
// Two buses are provided: a Redis pub/sub bus for multi-instance
// deployments and an in-process bus used when no Redis address is
// configured. Delivery is best effort on both; subscribers are expected to
// re-poll periodically.
package notify

import (
	"context"
	"errors"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

// subscriberBuffer is the per-subscriber queue length. Events that do not
// fit are dropped.
const subscriberBuffer = 16

// ErrBusClosed is returned by Publish and Subscribe after Close.
var ErrBusClosed = errors.New("notification bus is closed")

// Publisher announces configuration changes.
type Publisher interface {
	Publish(ctx context.Context, change models.ConfigChange) error
}

// Subscriber delivers configuration changes until ctx is cancelled, after
// which the returned channel is closed.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan models.ConfigChange, error)
}

// Bus is both ends of the notification channel.
type Bus interface {
	Publisher
	Subscriber
	Close() error
}

// NewBus returns a Redis bus when cfg.Address is set and an in-process bus
// otherwise.
func NewBus(ctx context.Context, cfg config.Redis, log *logger.Logger) (Bus, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "notify.NewBus").Msg("no redis address configured, using in-process notifications")
		return NewLocalBus(), nil
	}

	return NewRedisBus(ctx, cfg, log)
}
