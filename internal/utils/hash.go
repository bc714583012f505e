// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashUserSecret returns the hex SHA-256 of userID and secret joined by a NUL
// byte. Binding the user id means equal secrets of two users never share a
// stored hash.
//
// Example usage:
//
//	stored := utils.HashUserSecret(42, "ABCDE12345")
func HashUserSecret(userID int64, secret string) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatInt(userID, 10)))
	h.Write([]byte{0})
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}
