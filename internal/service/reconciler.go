// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type reconciler struct {
	storage   store.Storage
	validator validators.Validator
	logger    *logger.Logger
}

// NewReconciler returns a [Reconciler] writing into storage.
func NewReconciler(storage store.Storage, validator validators.Validator, log *logger.Logger) Reconciler {
	return &reconciler{
		storage:   storage,
		validator: validator,
		logger:    log,
	}
}

func (r *reconciler) ReconcileAll(ctx context.Context, bundles []models.ChainBundle) models.SyncReport {
	var report models.SyncReport

	for _, bundle := range bundles {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, err)
			return report
		}

		if err := r.reconcileChain(ctx, bundle.Chain, &report); err != nil {
			r.logger.Warn().Err(err).Str("func", "*reconciler.ReconcileAll").Str("chain_id", bundle.Chain.ID).Msg("chain skipped")
			report.Failures = append(report.Failures, err)
			continue
		}

		links := make([]models.ChainLink, 0, len(bundle.Links))
		for _, link := range bundle.Links {
			if link.ChainID != bundle.Chain.ID {
				report.Failures = append(report.Failures, fmt.Errorf("link %s: %w", link.ID, ErrForeignLink))
				continue
			}
			links = append(links, link)
		}
		report.Merge(r.ReconcileLinks(ctx, links))
	}

	return report
}

// reconcileChain creates chain when absent. A chain has no fields that
// change after creation, so an existing one is never touched.
func (r *reconciler) reconcileChain(ctx context.Context, chain models.Chain, report *models.SyncReport) error {
	if err := r.validator.Validate(ctx, chain); err != nil {
		return fmt.Errorf("chain %s: %w", chain.ID, invalid("remote chain", err))
	}

	_, err := r.storage.GetChain(ctx, chain.ID)
	switch {
	case err == nil:
		report.Unchanged++
		return nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("chain %s: %w", chain.ID, err)
	}

	if err = r.storage.CreateChain(ctx, chain); err != nil {
		return fmt.Errorf("create chain %s: %w", chain.ID, err)
	}
	report.ChainsCreated++
	return nil
}

func (r *reconciler) ReconcileLinks(ctx context.Context, remote []models.ChainLink) models.SyncReport {
	var report models.SyncReport

	for _, link := range remote {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, err)
			return report
		}

		if err := r.reconcileLink(ctx, link, &report); err != nil {
			r.logger.Warn().Err(err).Str("func", "*reconciler.ReconcileLinks").Str("link_id", link.ID).Msg("link skipped")
			report.Failures = append(report.Failures, err)
		}
	}

	return report
}

func (r *reconciler) reconcileLink(ctx context.Context, remote models.ChainLink, report *models.SyncReport) error {
	if err := r.validator.Validate(ctx, remote); err != nil {
		return fmt.Errorf("link %s: %w", remote.ID, invalid("remote link", err))
	}

	local, err := r.storage.GetLink(ctx, remote.ID)
	if errors.Is(err, apperrors.ErrNotFound) {
		if err = r.storage.CreateLink(ctx, remote); err != nil {
			return fmt.Errorf("create link %s: %w", remote.ID, err)
		}
		report.LinksCreated++
		return nil
	}
	if err != nil {
		return fmt.Errorf("link %s: %w", remote.ID, err)
	}

	if local.SameSecret(remote) {
		report.Unchanged++
		return nil
	}

	// password and iv always travel together
	local.Password = remote.Password
	local.IV = remote.IV
	local.Description = remote.Description
	if err = r.storage.UpdateLink(ctx, local); err != nil {
		return fmt.Errorf("update link %s: %w", remote.ID, err)
	}
	report.LinksUpdated++
	return nil
}
