// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
)

// RoleHierarchy ranks role names. Roles later in the configured list outrank
// earlier ones; unknown roles have no rank.
type RoleHierarchy struct {
	order []string
	ranks map[string]int
}

// NewRoleHierarchy builds a hierarchy from roles ordered lowest first. Blank
// and repeated names are skipped.
func NewRoleHierarchy(roles []string) RoleHierarchy {
	h := RoleHierarchy{ranks: make(map[string]int, len(roles))}
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}
		if _, ok := h.ranks[role]; ok {
			continue
		}
		h.ranks[role] = len(h.order)
		h.order = append(h.order, role)
	}
	return h
}

// Rank returns the position of role, or -1 for unknown roles.
func (h RoleHierarchy) Rank(role string) int {
	if rank, ok := h.ranks[role]; ok {
		return rank
	}
	return -1
}

func (h RoleHierarchy) Valid(role string) bool {
	return h.Rank(role) >= 0
}

// Roles returns the known roles lowest first.
func (h RoleHierarchy) Roles() []string {
	return append([]string(nil), h.order...)
}

// Top is the highest configured role.
func (h RoleHierarchy) Top() string {
	if len(h.order) == 0 {
		return ""
	}
	return h.order[len(h.order)-1]
}

// Highest returns the best ranked known role of roles, or "".
func (h RoleHierarchy) Highest(roles []string) string {
	best, bestRank := "", -1
	for _, role := range roles {
		if rank := h.Rank(role); rank > bestRank {
			best, bestRank = role, rank
		}
	}
	return best
}

// AtLeast reports whether any of roles ranks at or above minimum.
func (h RoleHierarchy) AtLeast(roles []string, minimum string) bool {
	floor := h.Rank(minimum)
	if floor < 0 {
		return false
	}
	return h.Rank(h.Highest(roles)) >= floor
}

// CanManage reports whether an actor holding actor may change an account
// holding target. Actors manage strictly lower ranks; holders of the top role
// manage everyone.
func (h RoleHierarchy) CanManage(actor, target []string) bool {
	actorRank := h.Rank(h.Highest(actor))
	if actorRank < 0 {
		return false
	}
	if actorRank == len(h.order)-1 {
		return true
	}
	return actorRank > h.Rank(h.Highest(target))
}

// Check validates a requested role set: unknown names are invalid input and
// a repeated name is a conflict.
func (h RoleHierarchy) Check(roles []string) error {
	seen := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		if !h.Valid(role) {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
		}
		if _, ok := seen[role]; ok {
			return fmt.Errorf("%w: role %q assigned twice", ErrConflict, role)
		}
		seen[role] = struct{}{}
	}
	return nil
}
