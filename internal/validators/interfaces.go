// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation and the live identity options
// that configuration drives: the password rules every new password is
// checked against and the lockout switch applied to newly created users.
//
// Validators implement a single interface and support optional field-level
// scoping, so a handler can validate only the fields a route accepts.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
