// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecoveryCodes(t *testing.T) {
	codes, hashes, err := newRecoveryCodes(9, 10)
	require.NoError(t, err)
	require.Len(t, codes, 10)
	require.Len(t, hashes, 10)

	for i, code := range codes {
		assert.Regexp(t, recoveryCodePattern, code)
		assert.Equal(t, hashes[i], hashRecoveryCode(9, canonicalCode(code)))
		assert.NotEqual(t, hashes[i], hashRecoveryCode(10, canonicalCode(code)), "hashes are bound to the user")
	}
}

func TestCanonicalCode(t *testing.T) {
	assert.Equal(t, "ABCDE23456", canonicalCode("abcde-23456"))
	assert.Equal(t, "ABCDE23456", canonicalCode(" ABCDE 23456 "))
	assert.Equal(t, "", canonicalCode("ABCDE-2345"))
	assert.Equal(t, "", canonicalCode("ABCDE-23450"), "zero is not in the alphabet")
	assert.Equal(t, "", canonicalCode(strings.Repeat("A", 11)))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "123456", normalizeCode(" 123 456 "))
	assert.Equal(t, "123456", normalizeCode("123-456"))
}
