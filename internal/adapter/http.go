// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

const userAgent = "airline-guard-admin"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A missing scheme in cfg.HTTPAddress defaults to http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts the credentials to POST /api/auth/login. The access token is
// taken from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	if result.Status == models.LoginRequiresTwoFactor {
		h.logger.Debug().Msg("sign-in is waiting for a second factor")
		return result, nil
	}

	if err = h.storeBearer(resp, &result); err != nil {
		return models.LoginResult{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) CompleteTwoFactor(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login/2fa")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("two-factor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	if err = h.storeBearer(resp, &result); err != nil {
		return models.LoginResult{}, fmt.Errorf("two-factor parse bearer token: %w", err)
	}
	return result, nil
}

// storeBearer keeps the token from the Authorization header, or from the
// body when a proxy stripped the header.
func (h *httpServerAdapter) storeBearer(resp *resty.Response, result *models.LoginResult) error {
	header := resp.Header().Get("Authorization")
	if header == "" {
		if result.AccessToken == "" {
			return ErrUnauthorized
		}
		h.SetToken(result.AccessToken)
		return nil
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return err
	}
	h.SetToken(token)
	result.AccessToken = token
	return nil
}

func (h *httpServerAdapter) Maintenance(ctx context.Context) (models.MaintenanceStatus, error) {
	var status models.MaintenanceStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/maintenance")
	if err != nil {
		return models.MaintenanceStatus{}, fmt.Errorf("maintenance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MaintenanceStatus{}, err
	}

	return status, nil
}

func (h *httpServerAdapter) RetentionOverview(ctx context.Context) (models.RetentionOverview, error) {
	var overview models.RetentionOverview

	resp, err := h.authedRequest(ctx).
		SetResult(&overview).
		Get("/api/admin/retention")
	if err != nil {
		return models.RetentionOverview{}, fmt.Errorf("retention overview request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RetentionOverview{}, err
	}

	return overview, nil
}

func (h *httpServerAdapter) CleanupAll(ctx context.Context) (models.RetentionResult, error) {
	var result models.RetentionResult

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post("/api/admin/retention/cleanup")
	if err != nil {
		return models.RetentionResult{}, fmt.Errorf("retention cleanup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RetentionResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Cleanup(ctx context.Context, category models.RetentionCategory) (int64, error) {
	var count models.CountResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("category", string(category)).
		SetResult(&count).
		Post("/api/admin/retention/cleanup/{category}")
	if err != nil {
		return 0, fmt.Errorf("retention cleanup %s request: %w", category, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return count.Count, nil
}

func (h *httpServerAdapter) ConfigCategory(ctx context.Context, category string) ([]models.ConfigEntry, error) {
	var entries []models.ConfigEntry

	resp, err := h.authedRequest(ctx).
		SetPathParam("category", category).
		SetResult(&entries).
		Get("/api/admin/config/{category}")
	if err != nil {
		return nil, fmt.Errorf("config category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) UpdateConfigCategory(ctx context.Context, category string, values map[string]string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("category", category).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ConfigUpdateRequest{Values: values}).
		Put("/api/admin/config/{category}")
	if err != nil {
		return fmt.Errorf("config update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Sessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session

	resp, err := h.authedRequest(ctx).
		SetResult(&sessions).
		Get("/api/account/sessions")
	if err != nil {
		return nil, fmt.Errorf("sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (h *httpServerAdapter) RevokeSession(ctx context.Context, sessionID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("sessionID", sessionID).
		Delete("/api/account/sessions/{sessionID}")
	if err != nil {
		return fmt.Errorf("revoke session request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
