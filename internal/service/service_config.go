// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/notify"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

// MaskedValue replaces encrypted values in administrative listings. Writing
// it back for an encrypted key leaves the stored value untouched.
const MaskedValue = "********"

// configService reads and writes provisioned settings, encrypting values of
// keys marked IsEncrypted and announcing every change on the notification
// bus.
type configService struct {
	repo      store.ConfigRepository
	cipher    crypto.ValueCipher
	publisher notify.Publisher
	now       func() time.Time

	logger *logger.Logger
}

func NewConfigService(repo store.ConfigRepository, cipher crypto.ValueCipher, publisher notify.Publisher, logger *logger.Logger) ConfigService {
	return &configService{
		repo:      repo,
		cipher:    cipher,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (c *configService) Get(ctx context.Context, key string) (string, bool) {
	log := logger.FromContext(ctx)

	entry, err := c.repo.GetConfig(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn().Err(err).Str("func", "*configService.Get").Str("key", key).Msg("error reading configuration, using default")
		}
		return "", false
	}

	value, err := c.plaintext(entry)
	if err != nil {
		log.Warn().Err(err).Str("func", "*configService.Get").Str("key", key).Msg("error decrypting configuration value, using default")
		return "", false
	}

	return value, true
}

func (c *configService) GetBool(ctx context.Context, key string) (bool, bool) {
	raw, ok := c.Get(ctx, key)
	if !ok {
		return false, false
	}

	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return value, true
}

func (c *configService) GetInt(ctx context.Context, key string) (int, bool) {
	raw, ok := c.Get(ctx, key)
	if !ok {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return value, true
}

func (c *configService) GetCategory(ctx context.Context, category string) map[string]string {
	log := logger.FromContext(ctx)

	entries, err := c.repo.ListConfig(ctx, category)
	if err != nil {
		log.Warn().Err(err).Str("func", "*configService.GetCategory").Str("category", category).Msg("error listing configuration")
		return map[string]string{}
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		value, err := c.plaintext(entry)
		if err != nil {
			log.Warn().Err(err).Str("func", "*configService.GetCategory").Str("key", entry.Key).Msg("error decrypting configuration value")
			value = ""
		}
		values[entry.Key] = value
	}

	return values
}

func (c *configService) Set(ctx context.Context, key, value, modifiedBy string) error {
	entry, err := c.repo.GetConfig(ctx, key)
	if err != nil {
		return fmt.Errorf("configuration key %q: %w", key, mapStoreError(err))
	}

	return c.write(ctx, entry, value, modifiedBy)
}

func (c *configService) SetCategory(ctx context.Context, category string, values map[string]string, modifiedBy string) error {
	if len(values) == 0 {
		return ErrInvalidInput
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	// every key is checked before anything is written
	entries := make([]models.ConfigEntry, 0, len(keys))
	for _, key := range keys {
		entry, err := c.repo.GetConfig(ctx, key)
		if err != nil {
			return fmt.Errorf("configuration key %q: %w", key, mapStoreError(err))
		}
		if entry.Category != category {
			return fmt.Errorf("%w: key %q does not belong to %q", ErrInvalidInput, key, category)
		}
		entries = append(entries, entry)
	}

	for _, entry := range entries {
		value := values[entry.Key]
		if entry.IsEncrypted && value == MaskedValue {
			continue
		}
		if err := c.write(ctx, entry, value, modifiedBy); err != nil {
			return err
		}
	}

	return nil
}

func (c *configService) Entries(ctx context.Context, category string) ([]models.ConfigEntry, error) {
	entries, err := c.repo.ListConfig(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*configService.Entries").Str("category", category).Msg("error listing configuration")
		return nil, mapStoreError(err)
	}

	for i := range entries {
		if entries[i].IsEncrypted && entries[i].Value != "" {
			entries[i].Value = MaskedValue
		}
	}

	return entries, nil
}

func (c *configService) write(ctx context.Context, entry models.ConfigEntry, value, modifiedBy string) error {
	log := logger.FromContext(ctx)

	if entry.IsEncrypted && value != "" {
		encrypted, err := c.cipher.Encrypt(value)
		if err != nil {
			log.Err(err).Str("func", "*configService.write").Str("key", entry.Key).Msg("error encrypting configuration value")
			return fmt.Errorf("encrypt %q: %w", entry.Key, err)
		}
		value = encrypted
	}
	if modifiedBy == "" {
		modifiedBy = models.SystemActor
	}

	entry.Value = value
	entry.LastModified = c.now().UTC()
	entry.LastModifiedBy = modifiedBy

	if err := c.repo.UpdateConfig(ctx, entry); err != nil {
		log.Err(err).Str("func", "*configService.write").Str("key", entry.Key).Msg("error updating configuration")
		return mapStoreError(err)
	}

	change := models.ConfigChange{
		Key:        entry.Key,
		Category:   entry.Category,
		ModifiedBy: modifiedBy,
		ModifiedAt: entry.LastModified,
	}
	if err := c.publisher.Publish(ctx, change); err != nil {
		// listeners re-poll, so a lost notification only delays the update
		log.Warn().Err(err).Str("func", "*configService.write").Str("key", entry.Key).Msg("error publishing configuration change")
	}

	log.Info().Str("key", entry.Key).Str("modified_by", modifiedBy).Msg("configuration updated")
	return nil
}

// plaintext returns the readable value of entry. An empty stored value is
// empty regardless of the encryption flag.
func (c *configService) plaintext(entry models.ConfigEntry) (string, error) {
	if !entry.IsEncrypted || entry.Value == "" {
		return entry.Value, nil
	}

	value, err := c.cipher.Decrypt(entry.Value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return value, nil
}
