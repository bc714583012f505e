// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose separates the kinds of tokens signed with the same key so one
// can never be replayed as another.
type TokenPurpose string

const (
	// PurposeAccess authenticates API requests and carries the session id.
	PurposeAccess TokenPurpose = "access"
	// PurposeTwoFactor identifies a sign-in waiting for its second factor.
	PurposeTwoFactor TokenPurpose = "2fa"
	// PurposeRememberDevice lets a client skip the second factor.
	PurposeRememberDevice TokenPurpose = "remember"
	// PurposePasswordReset authorizes a single password reset.
	PurposePasswordReset TokenPurpose = "reset"
)

// TokenClaims is the claim set of every token issued by the server.
//
// Stamp is the user's security stamp at issue time; the token becomes
// invalid as soon as the stamp rotates.
type TokenClaims struct {
	jwt.RegisteredClaims

	Purpose    TokenPurpose `json:"pur"`
	SessionID  string       `json:"sid,omitempty"`
	Stamp      string       `json:"stm,omitempty"`
	Persistent bool         `json:"pst,omitempty"`
}

// Token is a signed token together with its parsed claims.
type Token struct {
	Claims TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string

	// UserID is the parsed "sub" claim.
	UserID int64
}

// GetUserID parses the subject claim as a base-10 int64.
func (c TokenClaims) GetUserID() (int64, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
