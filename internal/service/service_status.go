// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type statusService struct {
	chains        store.ChainRepository
	syncAddress   func() string
	discoveryPort int
	logger        *logger.Logger
}

// NewStatusService reports the current sync address as returned by
// syncAddress, which may be nil while no listener exists.
func NewStatusService(chains store.ChainRepository, syncAddress func() string, discoveryPort int, log *logger.Logger) StatusService {
	return &statusService{
		chains:        chains,
		syncAddress:   syncAddress,
		discoveryPort: discoveryPort,
		logger:        log,
	}
}

func (s *statusService) Status(ctx context.Context) (models.Status, error) {
	chains, err := s.chains.GetAllChains(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statusService.Status").Msg("error counting chains")
		return models.Status{}, fmt.Errorf("count chains: %w", err)
	}

	status := models.Status{DiscoveryPort: s.discoveryPort, Chains: len(chains)}
	if s.syncAddress != nil {
		status.SyncAddress = s.syncAddress()
	}
	return status, nil
}
