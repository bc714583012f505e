// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side cryptographic primitives: the key
// provider and cipher that protect encrypted configuration values, and the
// password hasher used by the identity store.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecretProvider resolves the key material used for configuration
// encryption. It is called once at startup; implementations may reach out to
// a key management system.
type SecretProvider interface {
	// ConfigKey returns a 32-byte AES-256 key.
	ConfigKey(ctx context.Context) ([]byte, error)
}

// ValueCipher encrypts and decrypts configuration values. Ciphertext is a
// printable string safe to store in a text column.
type ValueCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// PasswordHasher produces and verifies self-describing password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}
