// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/airline-guard/internal/utils"
)

// recoveryCodeAlphabet leaves out characters that are easy to misread
// (0/O, 1/I).
const recoveryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const recoveryCodeHalf = 5

// newRecoveryCodes returns n display codes formatted as XXXXX-XXXXX and their
// storage hashes for userID.
func newRecoveryCodes(userID int64, n int) (codes []string, hashes []string, err error) {
	codes = make([]string, 0, n)
	hashes = make([]string, 0, n)
	seen := make(map[string]struct{}, n)

	for len(codes) < n {
		raw, err := randomCode(2 * recoveryCodeHalf)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}

		codes = append(codes, raw[:recoveryCodeHalf]+"-"+raw[recoveryCodeHalf:])
		hashes = append(hashes, hashRecoveryCode(userID, raw))
	}

	return codes, hashes, nil
}

func randomCode(length int) (string, error) {
	max := big.NewInt(int64(len(recoveryCodeAlphabet)))

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate recovery code: %w", err)
		}
		b.WriteByte(recoveryCodeAlphabet[idx.Int64()])
	}
	return b.String(), nil
}

// canonicalCode upper-cases code and strips spaces and hyphens. It returns ""
// when the remainder is not a well-formed code.
func canonicalCode(code string) string {
	c := strings.ToUpper(normalizeCode(code))
	if len(c) != 2*recoveryCodeHalf {
		return ""
	}
	for i := 0; i < len(c); i++ {
		if strings.IndexByte(recoveryCodeAlphabet, c[i]) < 0 {
			return ""
		}
	}
	return c
}

// normalizeCode strips the separators users type or paste along with codes.
func normalizeCode(code string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(code))
}

func hashRecoveryCode(userID int64, canonical string) string {
	return utils.HashUserSecret(userID, canonical)
}
