// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/notify"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testPassword = "Str0ngPassw0rd"

var testArgon2Params = crypto.Argon2Params{Memory: 1024, Time: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

type testEnv struct {
	storages *store.Storages
	services *Services
	cipher   crypto.ValueCipher
	hasher   crypto.PasswordHasher
	bus      *notify.LocalBus
	cfg      config.StructuredConfig
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "airline-guard-test",
			TokenDuration: time.Hour,
			TOTPIssuer:    config.DefaultTOTPIssuer,
			PublicURL:     "https://airline.test",
			Version:       "test",
		},
		Security: config.Security{
			RoleHierarchy:         config.DefaultRoleHierarchy,
			MaintenanceBypassRole: config.DefaultMaintenanceBypassRole,
		},
	}
}

// newTestEnv wires every service over a private in-memory database with the
// seeded configuration.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	storages, err := store.NewStorages(ctx, config.DB{
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	provider, err := crypto.NewStaticKeyProvider(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	cipher, err := crypto.NewValueCipher(ctx, provider)
	require.NoError(t, err)

	bus := notify.NewLocalBus()
	t.Cleanup(func() { bus.Close() })

	hasher := crypto.NewPasswordHasher(testArgon2Params)
	cfg := testConfig()

	services, err := NewServices(Dependencies{
		Storages:  storages,
		Cipher:    cipher,
		Hasher:    hasher,
		Publisher: bus,
	}, cfg, logger.Nop())
	require.NoError(t, err)

	return &testEnv{
		storages: storages,
		services: services,
		cipher:   cipher,
		hasher:   hasher,
		bus:      bus,
		cfg:      cfg,
	}
}

// createUser stores a user whose password was changed just now.
func (e *testEnv) createUser(t *testing.T, email string, roles ...string) models.User {
	t.Helper()

	hash, err := e.hasher.Hash(testPassword)
	require.NoError(t, err)

	changed := time.Now().UTC()
	user, err := e.storages.UserRepository.CreateUser(context.Background(), models.User{
		Email:             email,
		DisplayName:       strings.Split(email, "@")[0],
		PasswordHash:      hash,
		SecurityStamp:     uuid.NewString(),
		PasswordChangedAt: &changed,
		LockoutEnabled:    true,
		Roles:             roles,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) user(t *testing.T, userID int64) models.User {
	t.Helper()

	user, err := e.storages.UserRepository.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	return user
}

func (e *testEnv) setConfig(t *testing.T, key, value string) {
	t.Helper()
	require.NoError(t, e.services.ConfigService.Set(context.Background(), key, value, "test"))
}

func totpCode(t *testing.T, secret string) string {
	t.Helper()

	code, err := totp.GenerateCodeCustom(secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)
	return code
}

// wrongCode returns a six digit code that differs from the current one.
func wrongCode(t *testing.T, secret string) string {
	t.Helper()

	code := totpCode(t, secret)
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

// fakeMailer records messages instead of sending them.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (f *fakeMailer) last() (sentMail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return sentMail{}, false
	}
	return f.sent[len(f.sent)-1], true
}
