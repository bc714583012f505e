// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/airline-guard/models"
)

// EntrySink persists application log entries.
type EntrySink interface {
	SaveApplicationLog(ctx context.Context, entry models.ApplicationLog) error
}

// PersistHook forwards events at or above a minimum level to an EntrySink.
// Entries are queued and written by a single goroutine so logging never
// waits on the database; when the queue is full entries are dropped.
type PersistHook struct {
	sink     EntrySink
	minLevel zerolog.Level
	queue    chan models.ApplicationLog
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewPersistHook starts the writer goroutine. Call Close to flush and stop it.
func NewPersistHook(sink EntrySink, minLevel zerolog.Level, queueSize int) *PersistHook {
	if queueSize <= 0 {
		queueSize = 256
	}

	h := &PersistHook{
		sink:     sink,
		minLevel: minLevel,
		queue:    make(chan models.ApplicationLog, queueSize),
		timeout:  5 * time.Second,
		done:     make(chan struct{}),
	}
	go h.run()

	return h
}

// Run implements zerolog.Hook.
func (h *PersistHook) Run(e *zerolog.Event, level zerolog.Level, message string) {
	if level < h.minLevel || level == zerolog.NoLevel || level == zerolog.Disabled {
		return
	}

	entry := models.ApplicationLog{
		Timestamp: time.Now().UTC(),
		Level:     level.String(),
		Message:   message,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}

	select {
	case h.queue <- entry:
	default:
	}
}

// Close drains queued entries and stops the writer goroutine.
func (h *PersistHook) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.queue)
	h.mu.Unlock()

	<-h.done
}

func (h *PersistHook) run() {
	defer close(h.done)

	for entry := range h.queue {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		// the sink must not log through this hook, or failures would loop
		_ = h.sink.SaveApplicationLog(ctx, entry)
		cancel()
	}
}
