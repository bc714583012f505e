// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server: the session
// sweeper, the data retention cleaner and the live policy refresher.
//
// Every worker is a single sequential loop, so a run can never overlap the
// previous one. Workers stop when the context passed to Run is cancelled.
package workers

import "context"

// Worker is implemented by every background job.
//
// Run blocks until ctx is cancelled. Name is used in logs and as the
// "worker" metrics label.
type Worker interface {
	Name() string
	Run(ctx context.Context)
}
