// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
)

// validate checks fields that are wrong regardless of role. Role-specific
// requirements are checked by the server and client views.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if !validPortOrZero(cfg.Server.SyncPort) {
		return fmt.Errorf("%w: sync port %d", ErrInvalidServerConfigs, cfg.Server.SyncPort)
	}
	if !validPortOrZero(cfg.Discovery.Port) {
		return fmt.Errorf("%w: port %d", ErrInvalidDiscoveryConfigs, cfg.Discovery.Port)
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Storage) validate() error {
	if s.DB.Driver != DriverMemory && s.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}
	return nil
}

func (d Discovery) validate() error {
	if d.Disabled {
		return nil
	}
	if d.Port == 0 || d.Magic == "" || d.ProbeTimeout <= 0 || d.Concurrency < 1 {
		return ErrInvalidDiscoveryConfigs
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if cfg.Server.SyncPort == 0 || cfg.Server.ConnTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.Host == "" && cfg.Server.AdvertiseInterval <= 0 {
		return fmt.Errorf("%w: advertise interval required without a pinned host", ErrInvalidServerConfigs)
	}
	return cfg.Discovery.validate()
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if cfg.Client.DialTimeout <= 0 || cfg.Client.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}
	if cfg.Client.ServerAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Client.ServerAddress); err != nil {
			return fmt.Errorf("%w: server address: %w", ErrInvalidClientConfigs, err)
		}
	} else if cfg.Discovery.Disabled {
		return fmt.Errorf("%w: no server address and discovery disabled", ErrInvalidClientConfigs)
	}
	if cfg.Client.StatusAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Client.StatusAddress); err != nil {
			return fmt.Errorf("%w: status address: %w", ErrInvalidClientConfigs, err)
		}
	}
	if err := cfg.Discovery.validate(); err != nil {
		return err
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func validPortOrZero(p int) bool {
	return p >= 0 && p <= 65535
}
