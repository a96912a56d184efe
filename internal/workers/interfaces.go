// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background loops of a binary as one
// unit.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts
// them together and cancels the rest as soon as one fails.
package workers

import "context"

// Worker is a background loop.
//
// Run blocks until ctx is done and returns nil on a clean stop. A non-nil
// error stops every other worker of the same [Workers].
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
