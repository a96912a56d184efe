// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	chainA = "0190a8f2-0000-7000-8000-00000000000a"
	chainB = "0190a8f2-0000-7000-8000-00000000000b"
	link1  = "0190a8f2-0000-7000-8000-000000000101"
	link2  = "0190a8f2-0000-7000-8000-000000000102"
	link3  = "0190a8f2-0000-7000-8000-000000000103"
)

func testChain(id, name string) models.Chain {
	return models.Chain{
		ID:   id,
		Name: name,
		Key:  crypto.EncodeBase64(bytes.Repeat([]byte{0x01}, crypto.KeySize)),
		Salt: crypto.EncodeBase64(bytes.Repeat([]byte{0x02}, crypto.SaltSize)),
	}
}

func testLink(id, chainID, secret string) models.ChainLink {
	return models.ChainLink{
		ID:          id,
		Name:        "mail",
		Description: "work",
		Password:    crypto.EncodeBase64([]byte(secret)),
		IV:          crypto.EncodeBase64(bytes.Repeat([]byte{0x03}, crypto.IVSize)),
		ChainID:     chainID,
	}
}

func newMemoryStorage(t *testing.T) store.Storage {
	t.Helper()
	s, err := store.NewMemoryStorage("")
	require.NoError(t, err)
	return s
}

func newTestReconciler(s store.Storage) Reconciler {
	return NewReconciler(s, validators.NewChainValidator(), logger.Nop())
}
