// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

// configCategory lists one category; encrypted values come back masked.
func (h *Handler) configCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	entries, err := h.services.ConfigService.Entries(r.Context(), category)
	if err != nil {
		writeError(w, r, err, "error listing configuration")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) updateConfigCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	category := chi.URLParam(r, "category")

	var req models.ConfigUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid configuration update")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid configuration update")
		return
	}

	if err := h.services.ConfigService.SetCategory(ctx, category, req.Values, identity.Email); err != nil {
		writeError(w, r, err, "error updating configuration")
		return
	}

	keys := slices.Sorted(maps.Keys(req.Values))
	h.audit(r, selfAudit(identity, models.AuditConfigChanged,
		fmt.Sprintf("Updated %s settings: %s", category, strings.Join(keys, ", "))))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) passwordPolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.PasswordPolicyOverview{
		Policy:       h.services.PasswordPolicyService.Resolve(ctx),
		Requirements: h.services.PasswordPolicyService.Describe(ctx),
	}, http.StatusOK)
}
