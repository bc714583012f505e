// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.security.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMaintenance)

	// routes without authorization
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/maintenance", h.maintenanceStatus)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/login/2fa", h.loginTwoFactor)
		r.Post("/login/recovery", h.loginRecovery)
		r.Post("/password/forgot", h.forgotPassword)
		r.Post("/password/reset", h.resetPassword)

		r.With(h.auth, h.touchSession).Post("/logout", h.logout)
	})

	router.Route("/api/account", func(r chi.Router) {
		r.Use(h.auth, h.touchSession)

		// reachable while a password change is pending
		r.Put("/password", h.changePassword)
		r.Route("/2fa", func(r chi.Router) {
			r.Get("/", h.twoFactorStatus)
			r.Post("/", h.beginTwoFactor)
			r.Delete("/", h.disableTwoFactor)
			r.Post("/confirm", h.confirmTwoFactor)
			r.Post("/recovery-codes", h.resetRecoveryCodes)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireCurrentPassword)

			r.Get("/", h.profile)
			r.Put("/theme", h.setTheme)
			r.Get("/sessions", h.listSessions)
			r.Delete("/sessions", h.revokeOtherSessions)
			r.Delete("/sessions/{sessionID}", h.revokeSession)
			r.Get("/logins", h.recentLogins)
		})
	})

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.auth, h.touchSession, h.requireCurrentPassword, h.requireRole(h.security.AdminRole))

		r.Get("/password-policy", h.passwordPolicy)
		r.Get("/audit", h.auditTrail)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Delete("/{userID}", h.deleteUser)
			r.Put("/{userID}/roles", h.setUserRoles)
			r.Post("/{userID}/reset-password", h.adminResetPassword)
		})

		// settings and data lifecycle belong to the top role
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(h.services.Roles.Top()))

			r.Get("/config/{category}", h.configCategory)
			r.Put("/config/{category}", h.updateConfigCategory)
			r.Get("/retention", h.retentionOverview)
			r.Post("/retention/cleanup", h.cleanupAll)
			r.Post("/retention/cleanup/{category}", h.cleanupCategory)
			r.Get("/logs", h.applicationLogs)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
