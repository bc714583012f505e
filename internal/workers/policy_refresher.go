// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/notify"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/models"
)

const PolicyRefresherName = "policy-refresher"

// Refresh triggers, used as the "trigger" metrics label.
const (
	TriggerStartup      = "startup"
	TriggerPoll         = "poll"
	TriggerNotification = "notification"
)

// PolicyRefresher keeps the live password and lockout options in step with
// the configuration store. It applies them at start, on every poll tick and
// whenever a change in a relevant category is announced. Polling alone is
// enough to converge, so a bus that cannot be subscribed to only adds
// latency.
type PolicyRefresher struct {
	passwords  service.PasswordPolicyService
	lockout    service.LockoutService
	subscriber notify.Subscriber
	interval   time.Duration
	metrics    *metrics.Metrics

	logger *logger.Logger
}

func NewPolicyRefresher(passwords service.PasswordPolicyService, lockout service.LockoutService, subscriber notify.Subscriber, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *PolicyRefresher {
	return &PolicyRefresher{
		passwords:  passwords,
		lockout:    lockout,
		subscriber: subscriber,
		interval:   interval,
		metrics:    m,
		logger:     logger,
	}
}

func (p *PolicyRefresher) Name() string { return PolicyRefresherName }

func (p *PolicyRefresher) Run(ctx context.Context) {
	p.Refresh(ctx, TriggerStartup)

	var changes <-chan models.ConfigChange
	if p.subscriber != nil {
		var err error
		changes, err = p.subscriber.Subscribe(ctx)
		if err != nil {
			p.logger.Warn().Err(err).Str("worker", PolicyRefresherName).Msg("cannot subscribe to configuration changes, polling only")
		}
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx, TriggerPoll)
		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if affectsPolicy(change) {
				p.Refresh(ctx, TriggerNotification)
			}
		}
	}
}

// Refresh re-resolves both policies and pushes them into the live options.
func (p *PolicyRefresher) Refresh(ctx context.Context, trigger string) {
	passwordPolicy := p.passwords.Apply(ctx)
	lockoutPolicy := p.lockout.Apply(ctx)

	p.metrics.PolicyRefresh(trigger)
	p.metrics.WorkerRun(PolicyRefresherName, nil)

	p.logger.Debug().
		Str("worker", PolicyRefresherName).
		Str("trigger", trigger).
		Int("required_length", passwordPolicy.RequiredLength).
		Int("max_failed_attempts", lockoutPolicy.MaxFailedAttempts).
		Msg("identity policies refreshed")
}

func affectsPolicy(change models.ConfigChange) bool {
	return change.Category == models.CategoryPasswordSecurity || change.Category == models.CategorySecurity
}
