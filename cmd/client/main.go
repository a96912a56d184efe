// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/client"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/discovery"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewClientLogger("chain-keeper-client", cfg.Client.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	var discoverer service.Discoverer
	if !cfg.Discovery.Disabled {
		discoverer = discovery.NewScanner(cfg.Discovery, discovery.NewPinger(cfg.Discovery.PingTimeout, log), log)
	}

	var status adapter.StatusClient
	if cfg.Client.StatusAddress != "" {
		if status, err = adapter.NewHTTPStatusClient(cfg.Client.StatusAddress, cfg.Client.RequestTimeout, log); err != nil {
			log.Fatal().Err(err).Msg("create status client")
		}
	}

	services := service.NewClientServices(storages, adapter.NewTCPSyncAdapter(cfg.Client, log), discoverer, *cfg, log)

	app, err := client.NewApp(services, status, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
