// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the engine.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, maintenance mode,
// authentication, session sliding and role gates are handled in this
// package before requests are delegated to the service layer.
package http
