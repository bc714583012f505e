// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/models"
)

func TestGenerateAndParseJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, time.Hour, "secret-key", models.TokenClaims{
		Purpose:    models.PurposeAccess,
		SessionID:  "session-1",
		Stamp:      "stamp-1",
		Persistent: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)

	parsed, err := ValidateAndParseJWTToken(token.String(), "secret-key", "test-issuer", models.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(123), parsed.UserID)
	assert.Equal(t, "session-1", parsed.Claims.SessionID)
	assert.Equal(t, "stamp-1", parsed.Claims.Stamp)
	assert.True(t, parsed.Claims.Persistent)
	assert.Equal(t, "test-issuer", parsed.Claims.Issuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	claims := models.TokenClaims{Purpose: models.PurposeAccess}

	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
		claims   models.TokenClaims
	}{
		{name: "empty issuer", duration: time.Hour, key: "k", claims: claims},
		{name: "zero duration", issuer: "i", key: "k", claims: claims},
		{name: "empty key", issuer: "i", duration: time.Hour, claims: claims},
		{name: "no purpose", issuer: "i", duration: time.Hour, key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key, tt.claims)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	access, err := GenerateJWTToken("iss", 7, time.Hour, "key", models.TokenClaims{Purpose: models.PurposeAccess})
	require.NoError(t, err)

	t.Run("wrong purpose", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(access.String(), "key", "iss", models.PurposeTwoFactor)
		assert.ErrorIs(t, err, ErrTokenPurpose)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(access.String(), "other", "iss", models.PurposeAccess)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(access.String(), "key", "other", models.PurposeAccess)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		claims := models.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "iss",
				Subject:   "7",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			Purpose: models.PurposeAccess,
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte("key"))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(raw, "key", "iss", models.PurposeAccess)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", models.PurposeAccess)
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = ParseBearerToken("bearer   xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
