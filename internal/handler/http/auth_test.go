// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/models"
)

// ── login ─────────────────────────────────────────────────────────────────────

func trustProxyHeaders(s *config.Security) { s.TrustProxyHeaders = true }

func TestLogin_Succeeded(t *testing.T) {
	f := newFixture(t, trustProxyHeaders)

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
		assert.Equal(t, "pilot@airline.test", req.Email)
		assert.True(t, req.RememberMe)
		assert.Equal(t, "203.0.113.7", req.ClientIP)
		assert.Equal(t, "test-agent", req.UserAgent)
		return models.LoginResult{Status: models.LoginSucceeded, AccessToken: "signed.jwt", SessionID: "s-1"}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"pilot@airline.test","password":"secret","remember_me":true}`))
	req.Header.Set("X-Real-IP", "203.0.113.7")
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt", rec.Header().Get("Authorization"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	result := decodeBody[models.LoginResult](t, rec)
	assert.Equal(t, models.LoginSucceeded, result.Status)
	assert.Equal(t, "s-1", result.SessionID)
}

func TestLogin_ClientIP(t *testing.T) {
	tests := []struct {
		name  string
		trust bool
		want  string
	}{
		{name: "proxy headers ignored by default", trust: false, want: "192.0.2.1"},
		{name: "proxy headers trusted", trust: true, want: "198.51.100.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(s *config.Security) { s.TrustProxyHeaders = tt.trust })

			f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
				assert.Equal(t, tt.want, req.ClientIP)
				return models.LoginResult{Status: models.LoginSucceeded, AccessToken: "signed.jwt", SessionID: "s-1"}, nil
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
				strings.NewReader(`{"email":"pilot@airline.test","password":"secret"}`))
			req.RemoteAddr = "192.0.2.1:51234"
			req.Header.Set("X-Forwarded-For", "198.51.100.4")
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestLogin_RequiresTwoFactor(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResult{Status: models.LoginRequiresTwoFactor, PendingToken: "pending"}, nil)

	rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"pilot@airline.test","password":"secret"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
	assert.Equal(t, "pending", decodeBody[models.LoginResult](t, rec).PendingToken)
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsLogin bool
		wantStatus int
		wantError  string
	}{
		{name: "invalid JSON", body: `{"email":`, wantStatus: http.StatusBadRequest},
		{name: "malformed email", body: `{"email":"nope","password":"x"}`, wantStatus: http.StatusBadRequest, wantError: "invalid email"},
		{name: "empty password", body: `{"email":"a@b.test","password":""}`, wantStatus: http.StatusBadRequest, wantError: "password is required"},
		{
			name:       "wrong credentials",
			body:       `{"email":"a@b.test","password":"x"}`,
			serviceErr: service.ErrInvalidCredentials,
			callsLogin: true,
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid login attempt",
		},
		{
			name:       "locked out",
			body:       `{"email":"a@b.test","password":"x"}`,
			serviceErr: service.ErrLockedOut,
			callsLogin: true,
			wantStatus: http.StatusLocked,
			wantError:  "account locked",
		},
		{
			name:       "store failure is not leaked",
			body:       `{"email":"a@b.test","password":"x"}`,
			serviceErr: errors.New("dial tcp: connection refused"),
			callsLogin: true,
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.callsLogin {
				f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, tt.serviceErr)
			}

			rec := f.do(http.MethodPost, "/api/auth/login", tt.body, false)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec).Error)
			}
		})
	}
}

// ── second factor ─────────────────────────────────────────────────────────────

func TestLoginTwoFactor(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().CompleteTwoFactor(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error) {
		assert.Equal(t, "pending", req.PendingToken)
		assert.Equal(t, "123456", req.Code)
		assert.True(t, req.RememberDevice)
		return models.LoginResult{Status: models.LoginSucceeded, AccessToken: "signed.jwt", RememberDeviceToken: "remember"}, nil
	})

	rec := f.do(http.MethodPost, "/api/auth/login/2fa", `{"pending_token":"pending","code":"123456","remember_device":true}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt", rec.Header().Get("Authorization"))
	assert.Equal(t, "remember", decodeBody[models.LoginResult](t, rec).RememberDeviceToken)
}

func TestLoginTwoFactor_InvalidCode(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().CompleteTwoFactor(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, service.ErrInvalidCode)

	rec := f.do(http.MethodPost, "/api/auth/login/2fa", `{"pending_token":"pending","code":"000000"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginTwoFactor_MissingCode(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/auth/login/2fa", `{"pending_token":"pending"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRecovery(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().CompleteRecovery(gomock.Any(), gomock.Any()).
		Return(models.LoginResult{Status: models.LoginSucceeded, AccessToken: "signed.jwt"}, nil)

	rec := f.do(http.MethodPost, "/api/auth/login/recovery", `{"pending_token":"pending","code":"ABCDE-12345"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt", rec.Header().Get("Authorization"))
}

// ── logout and password reset ─────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	f := newFixture(t)
	identity := identityWith("User")
	f.signIn(identity)
	f.auth.EXPECT().Logout(gomock.Any(), identity).Return(nil)

	rec := f.do(http.MethodPost, "/api/auth/logout", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogout_RequiresToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/auth/logout", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgotPassword_AlwaysAccepted(t *testing.T) {
	f := newFixture(t)
	f.account.EXPECT().ForgotPassword(gomock.Any(), models.ForgotPasswordRequest{Email: "nobody@airline.test"}).Return(nil)

	rec := f.do(http.MethodPost, "/api/auth/password/forgot", `{"email":"nobody@airline.test"}`, false)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.account.EXPECT().ResetPassword(gomock.Any(), models.ResetPasswordRequest{Token: "reset", NewPassword: "N3wPassword"}).Return(nil)

		rec := f.do(http.MethodPost, "/api/auth/password/reset", `{"token":"reset","new_password":"N3wPassword"}`, false)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/password/reset", `{"new_password":"N3wPassword"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("used or forged token", func(t *testing.T) {
		f := newFixture(t)
		f.account.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: reset token is no longer valid", service.ErrUnauthorized))

		rec := f.do(http.MethodPost, "/api/auth/password/reset", `{"token":"old","new_password":"N3wPassword"}`, false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusUnauthorized), decodeBody[models.ErrorResponse](t, rec).Error)
	})
}
