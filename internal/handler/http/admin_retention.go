// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

func (h *Handler) retentionOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.services.RetentionService.Statistics(ctx)
	if err != nil {
		writeError(w, r, err, "error collecting retention statistics")
		return
	}

	utils.WriteJSON(w, models.RetentionOverview{
		Config:     h.services.RetentionService.ResolveConfig(ctx),
		Statistics: stats,
	}, http.StatusOK)
}

// cleanupAll runs every category now, the same run the retention worker
// performs daily. Categories that failed are reported through the error.
func (h *Handler) cleanupAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.RetentionService.CleanupAll(r.Context())
	if err != nil {
		writeError(w, r, err, "retention cleanup failed")
		return
	}

	logger.FromRequest(r).Info().Int64("total_deleted", result.TotalDeleted).Bool("skipped", result.Skipped).Msg("manual retention cleanup finished")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) cleanupCategory(w http.ResponseWriter, r *http.Request) {
	category, err := models.ParseRetentionCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidInput, err), "invalid retention category")
		return
	}

	n, err := h.services.RetentionService.Cleanup(r.Context(), category)
	if err != nil {
		writeError(w, r, err, "retention cleanup failed")
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: n}, http.StatusOK)
}

func (h *Handler) applicationLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := uint64Query(r, "limit")
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	entries, err := h.services.RecorderService.ApplicationLogs(r.Context(), limit)
	if err != nil {
		writeError(w, r, err, "error listing application logs")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
