// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHashUserSecret(t *testing.T) {
	a := HashUserSecret(1, "ABCDE12345")

	assert.Len(t, a, 64)
	assert.Equal(t, a, HashUserSecret(1, "ABCDE12345"))
	assert.NotEqual(t, a, HashUserSecret(2, "ABCDE12345"))
	assert.NotEqual(t, a, HashUserSecret(1, "ABCDE12346"))
	// the separator keeps "1"+"2X" and "12"+"X" apart
	assert.NotEqual(t, HashUserSecret(1, "2X"), HashUserSecret(12, "X"))
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_FallsBackToV4(t *testing.T) {
	g := &UUIDGenerator{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	parsed, err := uuid.Parse(g.Generate())
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
