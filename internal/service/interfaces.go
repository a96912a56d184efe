// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side sync engine and the host-facing
// chain operations.
//
// Synchronization is a one-directional pull: the client fetches chains and
// links from a sync server and merges them into local storage. Merging is
// additive, so a sync pass never removes anything local, and every entity
// is applied independently so that one failure does not stop the rest.
package service

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Discoverer locates a sync server. An empty address with a nil error means
// no server answered.
type Discoverer interface {
	Scan(ctx context.Context) (string, error)
}

// Reconciler merges remote entities into local storage.
type Reconciler interface {
	// ReconcileAll creates every remote chain missing locally and then
	// reconciles its links.
	ReconcileAll(ctx context.Context, bundles []models.ChainBundle) models.SyncReport

	// ReconcileLinks creates absent links and updates links whose password
	// or description differ. Everything else is left untouched.
	ReconcileLinks(ctx context.Context, remote []models.ChainLink) models.SyncReport
}

// SyncService pulls from the sync server.
type SyncService interface {
	// SyncAll pulls every chain with its links.
	SyncAll(ctx context.Context) (models.SyncReport, error)

	// SyncChain pulls the links of one chain.
	SyncChain(ctx context.Context, chainID string) (models.SyncReport, error)
}
