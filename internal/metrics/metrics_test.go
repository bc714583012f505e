// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.LoginAttempt(LoginSucceeded)
	m.LoginAttempt(LoginSucceeded)
	m.LoginAttempt(LoginLockedOut)
	m.SessionsSwept(3, 10)
	m.RetentionDeleted("loginHistory", 1)
	m.WorkerRun("session-sweeper", nil)
	m.WorkerRun("session-sweeper", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loginAttempts.WithLabelValues(LoginSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginAttempts.WithLabelValues(LoginLockedOut)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessionsSwept))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.retentionDeleted.WithLabelValues("loginHistory")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.workerRuns.WithLabelValues("session-sweeper", "error")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.LoginAttempt(LoginSucceeded)
		m.SessionsSwept(1, 1)
		m.RetentionDeleted("auditLogs", 1)
		m.RetentionRun(time.Second)
		m.WorkerRun("x", nil)
		m.PolicyRefresh("poll")
		m.HTTPRequest(http.MethodGet, "/healthz", http.StatusOK, time.Millisecond)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.PolicyRefresh("startup")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `airline_guard_policy_refreshes_total{trigger="startup"} 1`)
}
