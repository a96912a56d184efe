// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

// ChainService is the write path used by the host application. Every value
// is validated before it reaches storage.
type ChainService interface {
	// CreateChain generates the id and salt, derives the verifier from
	// passphrase and stores the chain.
	CreateChain(ctx context.Context, name, passphrase string) (models.Chain, error)

	// Unlock checks passphrase against the stored verifier and returns the
	// chain together with its keys. A wrong passphrase is Crypto/auth_failed.
	Unlock(ctx context.Context, chainID, passphrase string) (UnlockedChain, error)

	// DeleteChain removes an unlocked chain and its links.
	DeleteChain(ctx context.Context, chain UnlockedChain) error

	ListChains(ctx context.Context) ([]models.Chain, error)

	// CreateLink encrypts password under the chain secret key with a fresh
	// iv and stores the link.
	CreateLink(ctx context.Context, chain UnlockedChain, name, description, password string) (models.ChainLink, error)

	// RevealPassword decrypts the password of a link.
	RevealPassword(ctx context.Context, chain UnlockedChain, linkID string) (string, error)

	// UpdateLink replaces name and description. A non-empty password is
	// re-encrypted with a new iv; an empty one keeps the stored ciphertext.
	UpdateLink(ctx context.Context, chain UnlockedChain, link models.ChainLink, password string) (models.ChainLink, error)

	DeleteLink(ctx context.Context, chain UnlockedChain, linkID string) error

	ListLinks(ctx context.Context, chainID string) ([]models.ChainLink, error)
}

// Publisher pushes local chains to the sync server using the key challenge
// routes. It is the explicit counterpart of [SyncService], never run
// implicitly by a sync pass.
type Publisher interface {
	PublishChain(ctx context.Context, chainID string) (models.SyncReport, error)
}

// AppInfoService reports the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// StatusService reports the state of a running sync server.
type StatusService interface {
	Status(ctx context.Context) (models.Status, error)
}
