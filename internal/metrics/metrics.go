// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus collectors for sign-ins, sessions,
// retention runs, background workers and HTTP traffic.
//
// Every recording method is safe to call on a nil *Metrics, which is how
// components run with metrics disabled (and in most unit tests).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "airline_guard"

// Sign-in outcomes used as the "result" label of LoginAttempts.
const (
	LoginSucceeded          = "succeeded"
	LoginInvalidCredentials = "invalid_credentials"
	LoginLockedOut          = "locked_out"
	LoginTwoFactorRequired  = "two_factor_required"
	LoginInvalidCode        = "invalid_code"
)

// Metrics owns a private registry so that several instances can coexist in
// tests.
type Metrics struct {
	registry *prometheus.Registry

	loginAttempts     *prometheus.CounterVec
	sessionsSwept     prometheus.Counter
	activeSessions    prometheus.Gauge
	retentionDeleted  *prometheus.CounterVec
	retentionDuration prometheus.Histogram
	workerRuns        *prometheus.CounterVec
	policyRefreshes   *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Sign-in attempts by outcome",
		}, []string{"result"}),

		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_swept_total",
			Help:      "Sessions deactivated because they expired",
		}),

		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Active unexpired sessions at the last sweep",
		}),

		retentionDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_deleted_rows_total",
			Help:      "Rows removed by data retention per category",
		}, []string{"category"}),

		retentionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "retention_run_duration_seconds",
			Help:      "Duration of complete retention runs",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}),

		workerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_runs_total",
			Help:      "Background worker runs by worker and status",
		}, []string{"worker", "status"}),

		policyRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_refreshes_total",
			Help:      "Live policy refreshes by trigger",
		}, []string{"trigger"}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.loginAttempts,
		m.sessionsSwept,
		m.activeSessions,
		m.retentionDeleted,
		m.retentionDuration,
		m.workerRuns,
		m.policyRefreshes,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) LoginAttempt(result string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) SessionsSwept(n int64, active int64) {
	if m == nil {
		return
	}
	m.sessionsSwept.Add(float64(n))
	m.activeSessions.Set(float64(active))
}

func (m *Metrics) RetentionDeleted(category string, n int64) {
	if m == nil {
		return
	}
	m.retentionDeleted.WithLabelValues(category).Add(float64(n))
}

func (m *Metrics) RetentionRun(d time.Duration) {
	if m == nil {
		return
	}
	m.retentionDuration.Observe(d.Seconds())
}

// WorkerRun records one run; err == nil counts as "ok".
func (m *Metrics) WorkerRun(worker string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.workerRuns.WithLabelValues(worker, status).Inc()
}

func (m *Metrics) PolicyRefresh(trigger string) {
	if m == nil {
		return
	}
	m.policyRefreshes.WithLabelValues(trigger).Inc()
}

func (m *Metrics) HTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
