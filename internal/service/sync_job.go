// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// SyncJob calls [SyncService.SyncAll] on a ticker. It can be run as a
// worker through Run, or started and stopped around a host's lifetime.
type SyncJob struct {
	syncService SyncService
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates an idle job. A non-positive interval defaults to five
// minutes.
func NewSyncJob(syncService SyncService, interval time.Duration, log *logger.Logger) *SyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &SyncJob{syncService: syncService, interval: interval, logger: log}
}

// Run syncs every interval until ctx is done. The first pass runs
// immediately. A failed pass is logged and the next tick retries.
func (j *SyncJob) Run(ctx context.Context) error {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		j.syncOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (j *SyncJob) syncOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := j.syncService.SyncAll(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "*SyncJob.syncOnce").Msg("periodic sync failed")
	}
}

// Start runs the job in the background, stopping a previous run first.
func (j *SyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		_ = j.Run(jobCtx)
	}()
}

// Stop cancels a background run and waits for it to exit. It is a no-op
// when the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
