// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type syncService struct {
	adapter    adapter.SyncAdapter
	reconciler Reconciler
	hosts      *hostResolver
	logger     *logger.Logger
}

// NewSyncService returns a [SyncService]. discoverer may be nil, in which
// case cfg.ServerAddress must be set for a sync to find a server.
func NewSyncService(syncAdapter adapter.SyncAdapter, reconciler Reconciler, discoverer Discoverer, cfg config.Client, log *logger.Logger) SyncService {
	return &syncService{
		adapter:    syncAdapter,
		reconciler: reconciler,
		hosts:      newHostResolver(cfg.ServerAddress, discoverer, log),
		logger:     log,
	}
}

func (s *syncService) SyncAll(ctx context.Context) (models.SyncReport, error) {
	var bundles []models.ChainBundle
	err := s.hosts.withHost(ctx, func(host string) error {
		var err error
		bundles, err = s.adapter.FetchChains(ctx, host)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncService.SyncAll").Msg("error fetching chains")
		return models.SyncReport{}, fmt.Errorf("fetch chains: %w", err)
	}

	report := s.reconciler.ReconcileAll(ctx, bundles)
	s.logReport("*syncService.SyncAll", report)
	return report, nil
}

func (s *syncService) SyncChain(ctx context.Context, chainID string) (models.SyncReport, error) {
	if _, err := uuid.Parse(chainID); err != nil {
		return models.SyncReport{}, invalid("sync chain", validators.ErrInvalidChainID)
	}

	var links []models.ChainLink
	err := s.hosts.withHost(ctx, func(host string) error {
		var err error
		links, err = s.adapter.FetchLinks(ctx, host, chainID)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncService.SyncChain").Str("chain_id", chainID).Msg("error fetching links")
		return models.SyncReport{}, fmt.Errorf("fetch links of chain %s: %w", chainID, err)
	}

	report := s.reconciler.ReconcileLinks(ctx, links)
	s.logReport("*syncService.SyncChain", report)
	return report, nil
}

func (s *syncService) logReport(fn string, report models.SyncReport) {
	ev := s.logger.Info()
	if len(report.Failures) > 0 {
		ev = s.logger.Warn().Err(report.Err())
	}
	ev.Str("func", fn).
		Int("chains_created", report.ChainsCreated).
		Int("links_created", report.LinksCreated).
		Int("links_updated", report.LinksUpdated).
		Int("unchanged", report.Unchanged).
		Int("failures", len(report.Failures)).
		Msg("sync pass finished")
}
