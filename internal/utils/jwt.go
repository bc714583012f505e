// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/airline-guard/models"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrTokenPurpose       = errors.New("token issued for a different purpose")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// The registered claims issuer, subject, iat and exp are filled in here; the
// purpose, session id, security stamp and persistence flag are taken from
// claims as given.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("airline-guard", 42, time.Hour, "secret",
//	    models.TokenClaims{Purpose: models.PurposeAccess, SessionID: sid})
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, claims models.TokenClaims) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || claims.Purpose == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString and checks that it was issued for purpose.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "airline-guard", models.PurposeAccess)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, purpose models.TokenPurpose) (models.Token, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Purpose != purpose {
		return models.Token{}, ErrTokenPurpose
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Claims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
