// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the sync server.
package handler

import (
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/handler/http"
	"github.com/MKhiriev/go-chain-keeper/internal/handler/sync"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
)

// HTTPDisabled as Server.HTTPAddress turns the diagnostics endpoint off.
const HTTPDisabled = "-"

type Handlers struct {
	Sync *sync.Handler
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storage store.Storage, cfg config.Server, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		Sync: sync.NewHandler(storage, validators.NewChainValidator(), logger),
	}

	if cfg.HTTPAddress != "" && cfg.HTTPAddress != HTTPDisabled {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	return handlers
}
