// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// Services is the service set of the sync server.
type Services struct {
	AppInfoService AppInfoService
	StatusService  StatusService
}

// NewServices wires the server services. syncAddress reports the address
// the sync listener is currently bound to.
func NewServices(storages *store.Storages, cfg config.ServerConfig, build models.BuildInfo, syncAddress func() string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		StatusService:  NewStatusService(storages, syncAddress, cfg.Discovery.Port, logger),
	}, nil
}

// ClientServices is the service set of a sync client.
type ClientServices struct {
	ChainService ChainService
	Reconciler   Reconciler
	SyncService  SyncService
	Publisher    Publisher
	SyncJob      *SyncJob
}

// NewClientServices wires the client services. discoverer may be nil when
// discovery is disabled.
func NewClientServices(storages *store.Storages, syncAdapter adapter.SyncAdapter, discoverer Discoverer, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	validator := validators.NewChainValidator()
	reconciler := NewReconciler(storages, validator, logger)
	syncSvc := NewSyncService(syncAdapter, reconciler, discoverer, cfg.Client, logger)

	return &ClientServices{
		ChainService: NewChainService(storages, crypto.NewKeyChain(), validator, logger),
		Reconciler:   reconciler,
		SyncService:  syncSvc,
		Publisher:    NewPublisher(storages, syncAdapter, discoverer, cfg.Client, logger),
		SyncJob:      NewSyncJob(syncSvc, cfg.Workers.SyncInterval, logger),
	}
}
