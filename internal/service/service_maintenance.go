// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/airline-guard/models"
)

type maintenanceService struct {
	config ConfigService
}

func NewMaintenanceService(config ConfigService) MaintenanceService {
	return &maintenanceService{config: config}
}

// Status is read on every call so that switching maintenance mode takes
// effect without a restart.
func (m *maintenanceService) Status(ctx context.Context) models.MaintenanceStatus {
	status := models.MaintenanceStatus{
		Enabled: boolOr(ctx, m.config, models.KeyMaintenanceEnabled, false),
	}
	if !status.Enabled {
		return status
	}

	status.Message, _ = m.config.Get(ctx, models.KeyMaintenanceMessage)
	status.EstimatedEnd, _ = m.config.Get(ctx, models.KeyMaintenanceEstimatedEnd)
	return status
}
