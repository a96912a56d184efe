// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/internal/workers"
)

var ErrNoServices = errors.New("client services are not configured")

type App struct {
	services *service.ClientServices
	status   adapter.StatusClient
	cfg      config.ClientConfig
	logger   *logger.Logger
}

// NewApp builds the client runtime. status may be nil when no diagnostics
// address is configured.
func NewApp(services *service.ClientServices, status adapter.StatusClient, cfg config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil {
		return nil, ErrNoServices
	}
	return &App{services: services, status: status, cfg: cfg, logger: log}, nil
}

// Run reports the server, pushes the configured chains and pulls. With a
// positive Workers.SyncInterval it keeps pulling until ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.reportServer(ctx)

	var pushErr error
	for _, chainID := range a.cfg.Client.Publish {
		if _, err := a.services.Publisher.PublishChain(ctx, chainID); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Str("chain_id", chainID).Msg("error publishing chain")
			pushErr = errors.Join(pushErr, fmt.Errorf("publish %s: %w", chainID, err))
		}
	}

	if a.cfg.Workers.SyncInterval > 0 {
		err := workers.New().
			Add("sync job", a.services.SyncJob).
			Run(ctx)
		return errors.Join(pushErr, err)
	}

	report, err := a.services.SyncService.SyncAll(ctx)
	if err != nil {
		return errors.Join(pushErr, err)
	}
	if report.Err() != nil {
		a.logger.Warn().Err(report.Err()).Str("func", "*App.Run").Msg("some entities were not applied")
	}
	return pushErr
}

// reportServer logs the server version and status. Failures are logged and
// never stop the sync.
func (a *App) reportServer(ctx context.Context) {
	if a.status == nil {
		return
	}

	version, err := a.status.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.reportServer").Msg("error getting server version")
		return
	}
	status, err := a.status.Status(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.reportServer").Msg("error getting server status")
		return
	}

	a.logger.Info().
		Str("version", version).
		Str("sync_address", status.SyncAddress).
		Int("chains", status.Chains).
		Msg("sync server")
}
