// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type namedWorker struct {
	name string
	Worker
}

type Workers struct {
	workers []namedWorker
}

// New returns an empty set.
func New() *Workers {
	return &Workers{}
}

// Add registers w under name, which prefixes its error. Nil workers are
// skipped so optional components can be added unconditionally.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers = append(w.workers, namedWorker{name: name, Worker: worker})
	}
	return w
}

// Len reports the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them have returned. The
// first error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil {
				return fmt.Errorf("%s: %w", worker.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
