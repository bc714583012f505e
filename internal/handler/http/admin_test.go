// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

func superAdmin(f *fixture) models.Identity {
	identity := identityWith("SuperAdmin")
	f.signIn(identity)
	return identity
}

// ── configuration ─────────────────────────────────────────────────────────────

func TestConfigCategory_MasksSecrets(t *testing.T) {
	f := newFixture(t)
	superAdmin(f)
	f.config.EXPECT().Entries(gomock.Any(), models.CategorySMTP).Return([]models.ConfigEntry{
		{Key: models.KeySMTPHost, Value: "smtp.airline.test", Category: models.CategorySMTP},
		{Key: models.KeySMTPPassword, Value: service.MaskedValue, Category: models.CategorySMTP, IsEncrypted: true},
	}, nil)

	rec := f.do(http.MethodGet, "/api/admin/config/SMTP", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]models.ConfigEntry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, service.MaskedValue, entries[1].Value)
}

func TestUpdateConfigCategory(t *testing.T) {
	f := newFixture(t)
	identity := superAdmin(f)

	values := map[string]string{
		models.KeyPasswordRequiredLength:     "12",
		models.KeyPasswordRequireDigit:       "true",
		models.KeyPasswordRequireNonAlphanum: "true",
	}
	f.config.EXPECT().SetCategory(gomock.Any(), models.CategoryPasswordSecurity, values, identity.Email).Return(nil)
	f.recorder.EXPECT().RecordAudit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record models.AuditRecord) error {
		assert.Equal(t, models.AuditConfigChanged, record.Action)
		assert.Equal(t, "Updated Password Security settings: Security_Password_RequireDigit, Security_Password_RequireNonAlphanumeric, Security_Password_RequiredLength", record.Changes)
		return nil
	})

	rec := f.do(http.MethodPut, "/api/admin/config/Password%20Security",
		`{"values":{"Security_Password_RequiredLength":"12","Security_Password_RequireDigit":"true","Security_Password_RequireNonAlphanumeric":"true"}}`, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateConfigCategory_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "no values", body: `{"values":{}}`, wantStatus: http.StatusBadRequest},
		{name: "unknown key", body: `{"values":{"Nope":"1"}}`, serviceErr: fmt.Errorf("configuration key %q: %w", "Nope", service.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "key of another category", body: `{"values":{"SMTP_Host":"x"}}`, serviceErr: service.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			superAdmin(f)
			if tt.serviceErr != nil {
				f.config.EXPECT().SetCategory(gomock.Any(), models.CategorySecurity, gomock.Any(), gomock.Any()).Return(tt.serviceErr)
			}

			rec := f.do(http.MethodPut, "/api/admin/config/Security", tt.body, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPasswordPolicy(t *testing.T) {
	f := newFixture(t)
	f.signIn(identityWith("Admin"))

	policy := models.DefaultPasswordPolicy()
	f.policy.EXPECT().Resolve(gomock.Any()).Return(policy)
	f.policy.EXPECT().Describe(gomock.Any()).Return([]string{"At least 8 characters long"})

	rec := f.do(http.MethodGet, "/api/admin/password-policy", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	overview := decodeBody[models.PasswordPolicyOverview](t, rec)
	assert.Equal(t, policy, overview.Policy)
	assert.Len(t, overview.Requirements, 1)
}

// ── retention ─────────────────────────────────────────────────────────────────

func TestRetentionOverview(t *testing.T) {
	f := newFixture(t)
	superAdmin(f)

	cfg := models.DefaultRetentionConfig()
	stats := models.RetentionStatistics{
		Config:     cfg,
		Categories: map[models.RetentionCategory]models.CategoryStatistics{models.RetentionLoginHistory: {Total: 10, Eligible: 4}},
	}
	f.retention.EXPECT().Statistics(gomock.Any()).Return(stats, nil)
	f.retention.EXPECT().ResolveConfig(gomock.Any()).Return(cfg)

	rec := f.do(http.MethodGet, "/api/admin/retention", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	overview := decodeBody[models.RetentionOverview](t, rec)
	assert.Equal(t, cfg, overview.Config)
	assert.Equal(t, int64(4), overview.Statistics.Categories[models.RetentionLoginHistory].Eligible)
}

func TestCleanupAll(t *testing.T) {
	f := newFixture(t)
	superAdmin(f)
	f.retention.EXPECT().CleanupAll(gomock.Any()).Return(models.RetentionResult{
		Deleted:      map[models.RetentionCategory]int64{models.RetentionAuditLogs: 2},
		TotalDeleted: 2,
		ExecutedAt:   time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC),
	}, nil)

	rec := f.do(http.MethodPost, "/api/admin/retention/cleanup", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), decodeBody[models.RetentionResult](t, rec).TotalDeleted)
}

func TestCleanupCategory(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		f := newFixture(t)
		superAdmin(f)
		f.retention.EXPECT().Cleanup(gomock.Any(), models.RetentionInactiveSessions).Return(int64(5), nil)

		rec := f.do(http.MethodPost, "/api/admin/retention/cleanup/inactiveSessions", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), decodeBody[models.CountResponse](t, rec).Count)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newFixture(t)
		superAdmin(f)

		rec := f.do(http.MethodPost, "/api/admin/retention/cleanup/flightPlans", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		superAdmin(f)
		f.retention.EXPECT().Cleanup(gomock.Any(), models.RetentionAuditLogs).
			Return(int64(0), fmt.Errorf("%w: %w", store.ErrExecutingStatement, errors.New("deadlock")))

		rec := f.do(http.MethodPost, "/api/admin/retention/cleanup/auditLogs", "", true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestApplicationLogs(t *testing.T) {
	f := newFixture(t)
	superAdmin(f)
	f.recorder.EXPECT().ApplicationLogs(gomock.Any(), uint64(0)).Return([]models.ApplicationLog{{ID: 1, Level: "error", Message: "boom"}}, nil)

	rec := f.do(http.MethodGet, "/api/admin/logs", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.ApplicationLog](t, rec), 1)
}

// ── users ─────────────────────────────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	identity := identityWith("Admin")
	f.signIn(identity)

	req := models.CreateUserRequest{Email: "fo@airline.test", DisplayName: "First Officer", Password: "Temp0rary!", Roles: []string{"User"}}
	f.users.EXPECT().CreateUser(gomock.Any(), identity, req).
		Return(models.User{UserID: 42, Email: req.Email, MustChangePassword: true, Roles: req.Roles}, nil)

	rec := f.do(http.MethodPost, "/api/admin/users",
		`{"email":"fo@airline.test","display_name":"First Officer","password":"Temp0rary!","roles":["User"]}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeBody[models.User](t, rec)
	assert.Equal(t, int64(42), user.UserID)
	assert.True(t, user.MustChangePassword)
}

func TestCreateUser_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "bad email", body: `{"email":"x","password":"Temp0rary!","roles":["User"]}`, wantStatus: http.StatusBadRequest},
		{name: "no roles", body: `{"email":"a@b.test","password":"Temp0rary!","roles":[]}`, wantStatus: http.StatusBadRequest},
		{name: "duplicate email", body: `{"email":"a@b.test","password":"Temp0rary!","roles":["User"]}`, serviceErr: service.ErrConflict, wantStatus: http.StatusConflict},
		{name: "outranking role", body: `{"email":"a@b.test","password":"Temp0rary!","roles":["SuperAdmin"]}`, serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.signIn(identityWith("Admin"))
			if tt.serviceErr != nil {
				f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rec := f.do(http.MethodPost, "/api/admin/users", tt.body, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)
		identity := identityWith("Admin")
		f.signIn(identity)
		f.users.EXPECT().DeleteUser(gomock.Any(), identity, int64(42)).Return(nil)

		rec := f.do(http.MethodDelete, "/api/admin/users/42", "", true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(identityWith("Admin"))

		rec := f.do(http.MethodDelete, "/api/admin/users/abc", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("modifier of audit entries", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(identityWith("Admin"))
		f.users.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), int64(9)).Return(service.ErrConflict)

		rec := f.do(http.MethodDelete, "/api/admin/users/9", "", true)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestSetUserRoles(t *testing.T) {
	t.Run("assigned", func(t *testing.T) {
		f := newFixture(t)
		identity := identityWith("SuperAdmin")
		f.signIn(identity)
		f.users.EXPECT().SetRoles(gomock.Any(), identity, int64(42), []string{"User", "Moderator"}).Return(nil)

		rec := f.do(http.MethodPut, "/api/admin/users/42/roles", `{"roles":["User","Moderator"]}`, true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("repeated role", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(identityWith("SuperAdmin"))

		rec := f.do(http.MethodPut, "/api/admin/users/42/roles", `{"roles":["User","User"]}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminResetPassword(t *testing.T) {
	f := newFixture(t)
	identity := identityWith("Admin")
	f.signIn(identity)
	f.users.EXPECT().ResetPassword(gomock.Any(), identity, int64(42), models.AdminResetPasswordRequest{NewPassword: "Temp0rary!"}).Return(nil)

	rec := f.do(http.MethodPost, "/api/admin/users/42/reset-password", `{"new_password":"Temp0rary!"}`, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuditTrail(t *testing.T) {
	f := newFixture(t)
	f.signIn(identityWith("Admin"))
	f.recorder.EXPECT().AuditTrail(gomock.Any(), int64(42), uint64(20)).Return([]models.AuditLogEntry{{ID: 1, UserID: 42, Action: models.AuditRolesChanged}}, nil)

	rec := f.do(http.MethodGet, "/api/admin/audit?user_id=42&limit=20", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]models.AuditLogEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditRolesChanged, entries[0].Action)
}

// ── system ────────────────────────────────────────────────────────────────────

func TestSystemRoutes(t *testing.T) {
	f := newFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rec := f.do(http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = f.do(http.MethodGet, "/api/version", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `airline_guard_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
