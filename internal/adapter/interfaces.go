// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a remote sync server.
//
// [SyncAdapter] is the typed view of the TCP sync protocol: every call
// dials a fresh connection, writes one request frame, reads one reply frame
// and closes. An Error reply is turned back into an apperrors error with the
// same kind and code, so callers can use [errors.Is] regardless of which
// side produced the failure.
//
// [StatusClient] reads the server's HTTP diagnostics endpoint.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_adapter_mock.go -package=mock

// SyncAdapter is the client side of the sync protocol. host is a
// "host:port" address.
type SyncAdapter interface {
	// FetchChains returns every chain on the server with its links.
	FetchChains(ctx context.Context, host string) ([]models.ChainBundle, error)
	// FetchLinks returns the links of one chain.
	FetchLinks(ctx context.Context, host, chainID string) ([]models.ChainLink, error)

	CreateChain(ctx context.Context, host string, chain models.Chain) (models.Chain, error)
	GetChain(ctx context.Context, host, id string) (models.Chain, error)
	// DeleteChain removes a chain and its links. key is the chain verifier.
	DeleteChain(ctx context.Context, host, id, key string) error

	CreateLink(ctx context.Context, host string, link models.ChainLink, key string) (models.ChainLink, error)
	GetLink(ctx context.Context, host, id, chainID string) (models.ChainLink, error)
	UpdateLink(ctx context.Context, host string, link models.ChainLink, key string) (models.ChainLink, error)
	DeleteLink(ctx context.Context, host, id, chainID, key string) error
}

// StatusClient queries the diagnostics endpoint of a sync server.
type StatusClient interface {
	Version(ctx context.Context) (string, error)
	Status(ctx context.Context) (models.Status, error)
}
