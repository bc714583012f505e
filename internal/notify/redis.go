// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

// RedisBus publishes JSON encoded [models.ConfigChange] values on a single
// pub/sub channel.
type RedisBus struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

// NewRedisBus connects to Redis and verifies the connection with PING.
func NewRedisBus(ctx context.Context, cfg config.Redis, log *logger.Logger) (*RedisBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisBus").Str("address", cfg.Address).Msg("error connecting to redis")
		client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return NewRedisBusFromClient(client, cfg.Channel, log), nil
}

// NewRedisBusFromClient wraps an existing client. The bus owns client and
// closes it in Close.
func NewRedisBusFromClient(client *redis.Client, channel string, log *logger.Logger) *RedisBus {
	if channel == "" {
		channel = config.DefaultRedisChannel
	}
	return &RedisBus{
		client:  client,
		channel: channel,
		logger:  log,
	}
}

func (b *RedisBus) Publish(ctx context.Context, change models.ConfigChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("error encoding configuration change: %w", err)
	}

	if err = b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisBus.Publish").Str("key", change.Key).Msg("error publishing configuration change")
		return fmt.Errorf("error publishing configuration change: %w", err)
	}
	return nil
}

// Subscribe waits for the subscription to be confirmed before returning, so
// events published afterwards are not lost.
func (b *RedisBus) Subscribe(ctx context.Context) (<-chan models.ConfigChange, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("error subscribing to %s: %w", b.channel, err)
	}

	out := make(chan models.ConfigChange, subscriberBuffer)
	go b.forward(ctx, pubsub, out)

	return out, nil
}

func (b *RedisBus) forward(ctx context.Context, pubsub *redis.PubSub, out chan<- models.ConfigChange) {
	defer close(out)
	defer pubsub.Close()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var change models.ConfigChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				b.logger.Warn().Err(err).Str("func", "*RedisBus.forward").Msg("ignoring malformed notification")
				continue
			}

			select {
			case out <- change:
			default:
			}
		}
	}
}

func (b *RedisBus) Close() error {
	return b.client.Close()
}
