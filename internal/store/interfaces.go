// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists chains and links.
//
// Three implementations satisfy [Storage]: SQLite (client default),
// PostgreSQL (server option) and an in-memory store that can snapshot to a
// JSON file. Every operation is atomic. A missing entity is reported as an
// apperrors Storage/not_found error; any other failure is a different
// Storage code.
package store

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChainRepository persists chains.
type ChainRepository interface {
	CreateChain(ctx context.Context, chain models.Chain) error
	GetAllChains(ctx context.Context) ([]models.Chain, error)
	GetChain(ctx context.Context, id string) (models.Chain, error)
	// DeleteChain removes the chain and every link it owns.
	DeleteChain(ctx context.Context, id string) error
}

// LinkRepository persists links.
type LinkRepository interface {
	// CreateLink fails with not_found when the owning chain is absent.
	CreateLink(ctx context.Context, link models.ChainLink) error
	GetLinksByChain(ctx context.Context, chainID string) ([]models.ChainLink, error)
	GetLink(ctx context.Context, id string) (models.ChainLink, error)
	// UpdateLink replaces name, description, password and iv.
	UpdateLink(ctx context.Context, link models.ChainLink) error
	DeleteLink(ctx context.Context, id string) error
}

// Storage is the full contract consumed by the sync engine.
type Storage interface {
	ChainRepository
	LinkRepository
}
