// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

func newTestChainService(t *testing.T) (ChainService, store.Storage) {
	t.Helper()
	s := newMemoryStorage(t)
	return NewChainService(s, crypto.NewKeyChain(), validators.NewChainValidator(), logger.Nop()), s
}

func TestChainService_CreateAndUnlock(t *testing.T) {
	svc, s := newTestChainService(t)
	ctx := context.Background()

	chain, err := svc.CreateChain(ctx, "email", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, chain.ID)
	assert.NotEmpty(t, chain.Salt)
	assert.NotEqual(t, "secret1", chain.Key)

	stored, err := s.GetChain(ctx, chain.ID)
	require.NoError(t, err)
	assert.Equal(t, chain, stored)

	unlocked, err := svc.Unlock(ctx, chain.ID, "secret1")
	require.NoError(t, err)
	assert.Equal(t, chain, unlocked.Chain)

	_, err = svc.Unlock(ctx, chain.ID, "secret2")
	assert.ErrorIs(t, err, apperrors.ErrAuthFailed)
}

func TestChainService_CreateChain_Invalid(t *testing.T) {
	svc, s := newTestChainService(t)
	ctx := context.Background()

	_, err := svc.CreateChain(ctx, "email", "")
	assert.ErrorIs(t, err, validators.ErrInvalidPassphrase)

	_, err = svc.CreateChain(ctx, "two words", "secret1")
	assert.ErrorIs(t, err, validators.ErrInvalidName)
	assert.Equal(t, apperrors.CodeBadRequest, apperrors.CodeOf(err))

	chains, err := s.GetAllChains(ctx)
	require.NoError(t, err)
	assert.Empty(t, chains)
}

func TestChainService_CreateChain_KeyChainFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")

	tests := []struct {
		name  string
		setup func(kc *mock.MockKeyChain)
	}{
		{
			name: "salt",
			setup: func(kc *mock.MockKeyChain) {
				kc.EXPECT().GenerateSalt().Return("", boom)
			},
		},
		{
			name: "hash",
			setup: func(kc *mock.MockKeyChain) {
				kc.EXPECT().GenerateSalt().Return("c2FsdA==", nil)
				kc.EXPECT().Hash(gomock.Any(), "c2FsdA==").Return("", boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockStorage(ctrl)
			keyChain := mock.NewMockKeyChain(ctrl)
			validator := mock.NewMockValidator(ctrl)
			tt.setup(keyChain)
			validator.EXPECT().Validate(gomock.Any(), validators.Passphrase("secret1")).Return(nil)

			svc := NewChainService(storage, keyChain, validator, logger.Nop())
			_, err := svc.CreateChain(context.Background(), "email", "secret1")
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestChainService_LinkLifecycle(t *testing.T) {
	svc, s := newTestChainService(t)
	ctx := context.Background()

	chain, err := svc.CreateChain(ctx, "email", "secret1")
	require.NoError(t, err)
	unlocked, err := svc.Unlock(ctx, chain.ID, "secret1")
	require.NoError(t, err)

	link, err := svc.CreateLink(ctx, unlocked, "gmail", "work", "p@ss1")
	require.NoError(t, err)
	assert.NotEqual(t, crypto.EncodeBase64String("p@ss1"), link.Password)

	plain, err := svc.RevealPassword(ctx, unlocked, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "p@ss1", plain)

	edit := link
	edit.Description = "personal"
	updated, err := svc.UpdateLink(ctx, unlocked, edit, "p@ss2")
	require.NoError(t, err)
	assert.NotEqual(t, link.IV, updated.IV, "re-encryption must use a fresh iv")
	assert.Equal(t, "personal", updated.Description)

	plain, err = svc.RevealPassword(ctx, unlocked, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "p@ss2", plain)

	edit = updated
	edit.Name = "gmail.old"
	renamed, err := svc.UpdateLink(ctx, unlocked, edit, "")
	require.NoError(t, err)
	assert.Equal(t, updated.Password, renamed.Password)
	assert.Equal(t, updated.IV, renamed.IV)

	links, err := svc.ListLinks(ctx, chain.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.ChainLink{renamed}, links)

	require.NoError(t, svc.DeleteLink(ctx, unlocked, link.ID))
	_, err = s.GetLink(ctx, link.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChainService_DeleteChainRemovesLinks(t *testing.T) {
	svc, s := newTestChainService(t)
	ctx := context.Background()

	chain, err := svc.CreateChain(ctx, "email", "secret1")
	require.NoError(t, err)
	unlocked, err := svc.Unlock(ctx, chain.ID, "secret1")
	require.NoError(t, err)
	link, err := svc.CreateLink(ctx, unlocked, "gmail", "", "p@ss1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChain(ctx, unlocked))

	chains, err := svc.ListChains(ctx)
	require.NoError(t, err)
	assert.Empty(t, chains)
	_, err = s.GetLink(ctx, link.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChainService_LockedChain(t *testing.T) {
	svc, _ := newTestChainService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, UnlockedChain{}, "gmail", "", "p@ss1")
	assert.ErrorIs(t, err, ErrChainLocked)
	assert.ErrorIs(t, svc.DeleteChain(ctx, UnlockedChain{Chain: testChain(chainA, "email")}), ErrChainLocked)
}

func TestChainService_LinkOfOtherChain(t *testing.T) {
	svc, _ := newTestChainService(t)
	ctx := context.Background()

	first, err := svc.CreateChain(ctx, "first", "secret1")
	require.NoError(t, err)
	second, err := svc.CreateChain(ctx, "second", "secret2")
	require.NoError(t, err)

	u1, err := svc.Unlock(ctx, first.ID, "secret1")
	require.NoError(t, err)
	u2, err := svc.Unlock(ctx, second.ID, "secret2")
	require.NoError(t, err)

	link, err := svc.CreateLink(ctx, u1, "gmail", "", "p@ss1")
	require.NoError(t, err)

	_, err = svc.RevealPassword(ctx, u2, link.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, err, ErrLinkNotInChain)
	assert.Error(t, svc.DeleteLink(ctx, u2, link.ID))
}

func TestChainService_CreateLink_InvalidPassword(t *testing.T) {
	svc, _ := newTestChainService(t)
	ctx := context.Background()

	chain, err := svc.CreateChain(ctx, "email", "secret1")
	require.NoError(t, err)
	unlocked, err := svc.Unlock(ctx, chain.ID, "secret1")
	require.NoError(t, err)

	_, err = svc.CreateLink(ctx, unlocked, "gmail", "", "")
	assert.ErrorIs(t, err, validators.ErrInvalidPassword)

	_, err = svc.CreateLink(ctx, unlocked, "gmail", "this description is far too long", "p@ss1")
	assert.ErrorIs(t, err, validators.ErrInvalidDescription)
}
