// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the administrative command line client.
//
// Commands talk to the server through [adapter.ServerAdapter] and render
// their results as lipgloss tables.
package client
