// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	security  config.Security
	metrics   *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, security config.Security, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewAccountValidator(),
		security:  security,
		metrics:   m,
		logger:    logger,
	}
}
