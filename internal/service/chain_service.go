// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// UnlockedChain is a chain whose passphrase has been verified. It holds the
// secret key in memory and must not be persisted or logged.
type UnlockedChain struct {
	models.Chain
	keys crypto.ChainKeys
}

func (c UnlockedChain) unlocked() bool {
	return c.ID != "" && c.keys.Secret != ""
}

type chainService struct {
	storage   store.Storage
	keyChain  crypto.KeyChain
	validator validators.Validator
	logger    *logger.Logger
}

// NewChainService returns the [ChainService] over storage.
func NewChainService(storage store.Storage, keyChain crypto.KeyChain, validator validators.Validator, log *logger.Logger) ChainService {
	return &chainService{
		storage:   storage,
		keyChain:  keyChain,
		validator: validator,
		logger:    log,
	}
}

func (s *chainService) CreateChain(ctx context.Context, name, passphrase string) (models.Chain, error) {
	if err := s.validator.Validate(ctx, validators.Passphrase(passphrase)); err != nil {
		return models.Chain{}, invalid("create chain", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Chain{}, fmt.Errorf("generate chain id: %w", err)
	}
	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return models.Chain{}, fmt.Errorf("generate salt: %w", err)
	}
	keys, err := crypto.DeriveChainKeys(s.keyChain, passphrase, salt)
	if err != nil {
		return models.Chain{}, err
	}

	chain := models.Chain{ID: id.String(), Name: name, Key: keys.Private, Salt: salt}
	if err = s.validator.Validate(ctx, chain); err != nil {
		return models.Chain{}, invalid("create chain", err)
	}

	if err = s.storage.CreateChain(ctx, chain); err != nil {
		s.logger.Err(err).Str("func", "*chainService.CreateChain").Msg("error saving chain")
		return models.Chain{}, fmt.Errorf("save chain: %w", err)
	}
	return chain, nil
}

func (s *chainService) Unlock(ctx context.Context, chainID, passphrase string) (UnlockedChain, error) {
	if err := s.validator.Validate(ctx, validators.Passphrase(passphrase)); err != nil {
		return UnlockedChain{}, invalid("unlock chain", err)
	}

	chain, err := s.storage.GetChain(ctx, chainID)
	if err != nil {
		return UnlockedChain{}, fmt.Errorf("get chain: %w", err)
	}

	keys, err := crypto.Unlock(s.keyChain, passphrase, chain.Salt, chain.Key)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*chainService.Unlock").Str("chain_id", chainID).Msg("unlock rejected")
		return UnlockedChain{}, err
	}
	return UnlockedChain{Chain: chain, keys: keys}, nil
}

func (s *chainService) DeleteChain(ctx context.Context, chain UnlockedChain) error {
	if !chain.unlocked() {
		return lockedErr()
	}
	if err := s.storage.DeleteChain(ctx, chain.ID); err != nil {
		return fmt.Errorf("delete chain: %w", err)
	}
	return nil
}

func (s *chainService) ListChains(ctx context.Context) ([]models.Chain, error) {
	chains, err := s.storage.GetAllChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chains: %w", err)
	}
	return chains, nil
}

func (s *chainService) CreateLink(ctx context.Context, chain UnlockedChain, name, description, password string) (models.ChainLink, error) {
	if !chain.unlocked() {
		return models.ChainLink{}, lockedErr()
	}
	if err := s.validator.Validate(ctx, validators.PlainPassword(password)); err != nil {
		return models.ChainLink{}, invalid("create link", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.ChainLink{}, fmt.Errorf("generate link id: %w", err)
	}
	ciphertext, iv, err := crypto.SealPassword(s.keyChain, password, chain.keys.Secret)
	if err != nil {
		return models.ChainLink{}, err
	}

	link := models.ChainLink{
		ID:          id.String(),
		Name:        name,
		Description: description,
		Password:    ciphertext,
		IV:          iv,
		ChainID:     chain.ID,
	}
	if err = s.validator.Validate(ctx, link); err != nil {
		return models.ChainLink{}, invalid("create link", err)
	}

	if err = s.storage.CreateLink(ctx, link); err != nil {
		s.logger.Err(err).Str("func", "*chainService.CreateLink").Msg("error saving link")
		return models.ChainLink{}, fmt.Errorf("save link: %w", err)
	}
	return link, nil
}

func (s *chainService) RevealPassword(ctx context.Context, chain UnlockedChain, linkID string) (string, error) {
	link, err := s.ownedLink(ctx, chain, linkID)
	if err != nil {
		return "", err
	}
	return crypto.OpenPassword(s.keyChain, link.Password, chain.keys.Secret, link.IV)
}

func (s *chainService) UpdateLink(ctx context.Context, chain UnlockedChain, link models.ChainLink, password string) (models.ChainLink, error) {
	stored, err := s.ownedLink(ctx, chain, link.ID)
	if err != nil {
		return models.ChainLink{}, err
	}

	stored.Name = link.Name
	stored.Description = link.Description
	if password != "" {
		if err = s.validator.Validate(ctx, validators.PlainPassword(password)); err != nil {
			return models.ChainLink{}, invalid("update link", err)
		}
		stored.Password, stored.IV, err = crypto.SealPassword(s.keyChain, password, chain.keys.Secret)
		if err != nil {
			return models.ChainLink{}, err
		}
	}

	if err = s.validator.Validate(ctx, stored); err != nil {
		return models.ChainLink{}, invalid("update link", err)
	}
	if err = s.storage.UpdateLink(ctx, stored); err != nil {
		return models.ChainLink{}, fmt.Errorf("update link: %w", err)
	}
	return stored, nil
}

func (s *chainService) DeleteLink(ctx context.Context, chain UnlockedChain, linkID string) error {
	if _, err := s.ownedLink(ctx, chain, linkID); err != nil {
		return err
	}
	if err := s.storage.DeleteLink(ctx, linkID); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

func (s *chainService) ListLinks(ctx context.Context, chainID string) ([]models.ChainLink, error) {
	links, err := s.storage.GetLinksByChain(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

// ownedLink loads linkID and checks that it belongs to chain. A link of
// another chain is reported as not found.
func (s *chainService) ownedLink(ctx context.Context, chain UnlockedChain, linkID string) (models.ChainLink, error) {
	if !chain.unlocked() {
		return models.ChainLink{}, lockedErr()
	}

	link, err := s.storage.GetLink(ctx, linkID)
	if err != nil {
		return models.ChainLink{}, fmt.Errorf("get link: %w", err)
	}
	if link.ChainID != chain.ID {
		return models.ChainLink{}, apperrors.Storage(apperrors.CodeNotFound, "link "+linkID, ErrLinkNotInChain)
	}
	return link, nil
}

func lockedErr() error {
	return apperrors.Crypto(apperrors.CodeAuthFailed, "chain operation", ErrChainLocked)
}
