// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type publisher struct {
	storage store.Storage
	adapter adapter.SyncAdapter
	hosts   *hostResolver
	logger  *logger.Logger
}

// NewPublisher returns a [Publisher] reading from storage.
func NewPublisher(storage store.Storage, syncAdapter adapter.SyncAdapter, discoverer Discoverer, cfg config.Client, log *logger.Logger) Publisher {
	return &publisher{
		storage: storage,
		adapter: syncAdapter,
		hosts:   newHostResolver(cfg.ServerAddress, discoverer, log),
		logger:  log,
	}
}

// PublishChain mirrors one local chain onto the server: the chain is
// created there when absent, missing links are created and links with a
// different secret are updated. The stored verifier answers the key
// challenge. Nothing is deleted on the server.
func (p *publisher) PublishChain(ctx context.Context, chainID string) (models.SyncReport, error) {
	chain, err := p.storage.GetChain(ctx, chainID)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("get local chain: %w", err)
	}
	links, err := p.storage.GetLinksByChain(ctx, chainID)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("get local links: %w", err)
	}

	var report models.SyncReport
	err = p.hosts.withHost(ctx, func(host string) error {
		report = models.SyncReport{}
		return p.publish(ctx, host, chain, links, &report)
	})
	if err != nil {
		p.logger.Err(err).Str("func", "*publisher.PublishChain").Str("chain_id", chainID).Msg("error publishing chain")
		return report, err
	}
	return report, nil
}

// publish returns an error only when the chain itself could not be placed
// on the server. Link failures go to report.
func (p *publisher) publish(ctx context.Context, host string, chain models.Chain, links []models.ChainLink, report *models.SyncReport) error {
	_, err := p.adapter.GetChain(ctx, host, chain.ID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		if _, err = p.adapter.CreateChain(ctx, host, chain); err != nil {
			return fmt.Errorf("create remote chain: %w", err)
		}
		report.ChainsCreated++
	case err != nil:
		return fmt.Errorf("get remote chain: %w", err)
	default:
		report.Unchanged++
	}

	for _, link := range links {
		if err = p.publishLink(ctx, host, chain.Key, link, report); err != nil {
			if errors.Is(err, apperrors.ErrSyncNetwork) {
				return err
			}
			report.Failures = append(report.Failures, fmt.Errorf("link %s: %w", link.ID, err))
		}
	}
	return nil
}

func (p *publisher) publishLink(ctx context.Context, host, key string, link models.ChainLink, report *models.SyncReport) error {
	remote, err := p.adapter.GetLink(ctx, host, link.ID, link.ChainID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		if _, err = p.adapter.CreateLink(ctx, host, link, key); err != nil {
			return err
		}
		report.LinksCreated++
	case err != nil:
		return err
	case remote.SameSecret(link):
		report.Unchanged++
	default:
		if _, err = p.adapter.UpdateLink(ctx, host, link, key); err != nil {
			return err
		}
		report.LinksUpdated++
	}
	return nil
}
