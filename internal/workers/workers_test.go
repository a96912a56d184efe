// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts runs and blocks until its context is done.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := New().Add("one", w1).Add("two", w2).Add("three", w3)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, ws.Run(ctx))
	for i, w := range []*blockingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runs.Load(), "worker %d", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Add_SkipsNil(t *testing.T) {
	ws := New().Add("nil", nil)
	assert.Equal(t, 0, ws.Len())
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	peer := &blockingWorker{}
	ws := New().
		Add("peer", peer).
		Add("failing", WorkerFunc(func(context.Context) error { return boom }))

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failing")
	case <-time.After(time.Second):
		t.Fatal("Run did not return after a worker failed")
	}
}

func TestWorkerFunc(t *testing.T) {
	var called bool
	f := WorkerFunc(func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, f.Run(context.Background()))
	assert.True(t, called)
}
