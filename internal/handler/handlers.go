// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/handler/http"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Security, m, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
