// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ErrEmptyPassphrase is returned when no passphrase was configured.
var ErrEmptyPassphrase = errors.New("empty passphrase")

// ErrInvalidKeyLength is returned for raw keys that are not 32 bytes long.
var ErrInvalidKeyLength = errors.New("invalid key length")

const keyLength = 32

// kdfSalt domain-separates the configuration key from any other use of the
// same passphrase.
var kdfSalt = []byte("airline-guard/config-encryption/v1")

// PassphraseProvider derives the configuration key from an operator supplied
// passphrase with Argon2id.
type PassphraseProvider struct {
	passphrase string
}

// NewPassphraseProvider returns a provider for the given passphrase.
func NewPassphraseProvider(passphrase string) *PassphraseProvider {
	return &PassphraseProvider{passphrase: passphrase}
}

// ConfigKey implements SecretProvider.
func (p *PassphraseProvider) ConfigKey(_ context.Context) ([]byte, error) {
	if p.passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	return argon2.IDKey(
		[]byte(p.passphrase),
		kdfSalt,
		3,       // iterations
		64*1024, // 64 MB memory
		2,       // parallelism
		keyLength,
	), nil
}

// StaticKeyProvider serves a fixed raw key.
type StaticKeyProvider struct {
	key []byte
}

// NewStaticKeyProvider validates and wraps a raw 32-byte key.
func NewStaticKeyProvider(key []byte) (*StaticKeyProvider, error) {
	if len(key) != keyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), keyLength)
	}
	return &StaticKeyProvider{key: append([]byte(nil), key...)}, nil
}

// ConfigKey implements SecretProvider.
func (p *StaticKeyProvider) ConfigKey(_ context.Context) ([]byte, error) {
	return append([]byte(nil), p.key...), nil
}
