// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "scheme added", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "https://guard.airline.test/", want: "https://guard.airline.test"},
		{name: "whitespace trimmed", raw: "  http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: ErrEmptyAddress},
		{name: "no host", raw: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ops@airline.test", req.Email)
		assert.True(t, req.RememberMe)

		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.LoginResult{Status: models.LoginSucceeded, AccessToken: "header-token", SessionID: "sess-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "ops@airline.test", Password: "Secret#2026", RememberMe: true})

	require.NoError(t, err)
	assert.Equal(t, models.LoginSucceeded, got.Status)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin_TokenFromBodyWithoutHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResult{Status: models.LoginSucceeded, AccessToken: "body-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ops@airline.test", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_TwoFactorPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResult{Status: models.LoginRequiresTwoFactor, PendingToken: "pending"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "ops@airline.test", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "pending", got.PendingToken)
	assert.Empty(t, a.Token())
}

func TestLogin_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    models.ErrorResponse
		wantErr error
		wantMsg string
	}{
		{name: "invalid credentials", status: http.StatusUnauthorized, body: models.ErrorResponse{Error: "invalid login attempt"}, wantErr: ErrUnauthorized, wantMsg: "invalid login attempt"},
		{name: "locked out", status: http.StatusLocked, body: models.ErrorResponse{Error: "account locked"}, wantErr: ErrLocked, wantMsg: "account locked"},
		{name: "maintenance", status: http.StatusServiceUnavailable, body: models.ErrorResponse{Error: "down for upgrade"}, wantErr: ErrServiceUnavailable, wantMsg: "down for upgrade"},
		{name: "validation details", status: http.StatusBadRequest, body: models.ErrorResponse{Error: "weak password", Details: []string{"At least 8 characters long"}}, wantErr: ErrBadRequest, wantMsg: "At least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Email: "ops@airline.test", Password: "x"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, a.Token())
		})
	}
}

func TestCompleteTwoFactor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login/2fa", r.URL.Path)

		var req models.TwoFactorLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pending", req.PendingToken)
		assert.Equal(t, "123456", req.Code)

		w.Header().Set("Authorization", "Bearer final-token")
		writeJSON(t, w, http.StatusOK, models.LoginResult{Status: models.LoginSucceeded})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CompleteTwoFactor(context.Background(), models.TwoFactorLoginRequest{PendingToken: "pending", Code: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "final-token", got.AccessToken)
	assert.Equal(t, "final-token", a.Token())
}

// ── Maintenance ─────────────────────────────────────────────────────────────

func TestMaintenance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/maintenance", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.MaintenanceStatus{Enabled: true, Message: "Upgrade", EstimatedEnd: "02:00 UTC"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Maintenance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatus{Enabled: true, Message: "Upgrade", EstimatedEnd: "02:00 UTC"}, got)
}

// ── retention ───────────────────────────────────────────────────────────────

func TestRetentionOverview(t *testing.T) {
	overview := models.RetentionOverview{
		Config: models.DefaultRetentionConfig(),
		Statistics: models.RetentionStatistics{
			Categories: map[models.RetentionCategory]models.CategoryStatistics{
				models.RetentionLoginHistory: {Total: 10, Eligible: 4},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/retention", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, overview)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" admin-token ")
	got, err := a.RetentionOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, overview.Config, got.Config)
	assert.Equal(t, int64(4), got.Statistics.Categories[models.RetentionLoginHistory].Eligible)
}

func TestCleanupAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/retention/cleanup", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.RetentionResult{
			Deleted:      map[models.RetentionCategory]int64{models.RetentionAuditLogs: 3},
			TotalDeleted: 3,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("admin-token")
	got, err := a.CleanupAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalDeleted)
	assert.Equal(t, int64(3), got.Deleted[models.RetentionAuditLogs])
}

func TestCleanup_Category(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/retention/cleanup/inactiveSessions", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.CountResponse{Count: 12})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("admin-token")
	n, err := a.Cleanup(context.Background(), models.RetentionInactiveSessions)

	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestCleanup_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "Forbidden"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("manager-token")
	_, err := a.Cleanup(context.Background(), models.RetentionAuditLogs)

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── configuration ───────────────────────────────────────────────────────────

func TestConfigCategory_EscapesCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/config/Password Security", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.ConfigEntry{
			{Key: models.KeyPasswordRequiredLength, Value: "12", Category: models.CategoryPasswordSecurity},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("admin-token")
	got, err := a.ConfigCategory(context.Background(), models.CategoryPasswordSecurity)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "12", got[0].Value)
}

func TestUpdateConfigCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/config/Maintenance", r.URL.Path)

		var req models.ConfigUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{models.KeyMaintenanceEnabled: "true"}, req.Values)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("admin-token")

	err := a.UpdateConfigCategory(context.Background(), models.CategoryMaintenance, map[string]string{models.KeyMaintenanceEnabled: "true"})
	require.NoError(t, err)
}

func TestUpdateConfigCategory_UnknownKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: `configuration key "Nope": not found`})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateConfigCategory(context.Background(), models.CategorySecurity, map[string]string{"Nope": "1"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Nope")
}

// ── sessions ────────────────────────────────────────────────────────────────

func TestSessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/account/sessions", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.Session{
			{SessionID: "sess-1", IsActive: true, IsCurrent: true},
			{SessionID: "sess-2", IsActive: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token")
	got, err := a.Sessions(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsCurrent)
	assert.Equal(t, "sess-2", got[1].SessionID)
}

func TestRevokeSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/account/sessions/sess-2", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token")
	require.NoError(t, a.RevokeSession(context.Background(), "sess-2"))
}

func TestSessions_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Sessions(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "plain text", errorMessage([]byte(" plain text\n")))
	assert.Equal(t, "bad", errorMessage([]byte(`{"error":"bad"}`)))
	assert.Equal(t, "weak password (a; b)", errorMessage([]byte(`{"error":"weak password","details":["a","b"]}`)))
	assert.Equal(t, "", errorMessage(nil))
}

func TestUnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Maintenance(context.Background())
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}
