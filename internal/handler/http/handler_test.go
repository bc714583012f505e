// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/mock"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/models"
)

// ── fixture ───────────────────────────────────────────────────────────────────

const testToken = "access-token"

type fixture struct {
	handler *Handler
	router  http.Handler
	metrics *metrics.Metrics

	// maintenanceStatus is served by the maintenance service mock.
	maintenanceStatus models.MaintenanceStatus

	config      *mock.MockConfigService
	policy      *mock.MockPasswordPolicyService
	expiration  *mock.MockPasswordExpirationService
	twoFactor   *mock.MockTwoFactorService
	sessions    *mock.MockSessionService
	retention   *mock.MockRetentionService
	recorder    *mock.MockRecorderService
	auth        *mock.MockAuthService
	account     *mock.MockAccountService
	users       *mock.MockUserService
	maintenance *mock.MockMaintenanceService
	appInfo     *mock.MockAppInfoService
}

// newFixture wires every service as a gomock mock. Maintenance mode is off
// until a test sets f.maintenanceStatus. opts adjust the security settings.
func newFixture(t *testing.T, opts ...func(*config.Security)) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		metrics:     metrics.New(),
		config:      mock.NewMockConfigService(ctrl),
		policy:      mock.NewMockPasswordPolicyService(ctrl),
		expiration:  mock.NewMockPasswordExpirationService(ctrl),
		twoFactor:   mock.NewMockTwoFactorService(ctrl),
		sessions:    mock.NewMockSessionService(ctrl),
		retention:   mock.NewMockRetentionService(ctrl),
		recorder:    mock.NewMockRecorderService(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		account:     mock.NewMockAccountService(ctrl),
		users:       mock.NewMockUserService(ctrl),
		maintenance: mock.NewMockMaintenanceService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		ConfigService:             f.config,
		PasswordPolicyService:     f.policy,
		PasswordExpirationService: f.expiration,
		TwoFactorService:          f.twoFactor,
		SessionService:            f.sessions,
		RetentionService:          f.retention,
		RecorderService:           f.recorder,
		AuthService:               f.auth,
		AccountService:            f.account,
		UserService:               f.users,
		MaintenanceService:        f.maintenance,
		AppInfoService:            f.appInfo,
		Roles:                     service.NewRoleHierarchy(config.DefaultRoleHierarchy),
	}
	security := config.Security{
		RoleHierarchy:         config.DefaultRoleHierarchy,
		MaintenanceBypassRole: config.DefaultMaintenanceBypassRole,
		AdminRole:             config.DefaultAdminRole,
	}
	for _, opt := range opts {
		opt(&security)
	}

	f.maintenance.EXPECT().Status(gomock.Any()).DoAndReturn(func(context.Context) models.MaintenanceStatus {
		return f.maintenanceStatus
	}).AnyTimes()

	f.handler = NewHandler(services, security, f.metrics, logger.Nop())
	f.router = f.handler.Init()
	return f
}

// signIn makes testToken resolve to identity and its session touchable.
func (f *fixture) signIn(identity models.Identity) {
	f.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(identity, nil).AnyTimes()
	f.sessions.EXPECT().Touch(gomock.Any(), identity.SessionID).Return(true, nil).AnyTimes()
}

func (f *fixture) do(method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func identityWith(roles ...string) models.Identity {
	return models.Identity{UserID: 7, Email: "ops@airline.test", SessionID: "sess-7", Roles: roles}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
