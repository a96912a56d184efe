// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields left empty by every other source.
const (
	DefaultSyncPort      = 8080
	DefaultDiscoveryPort = 8888
	DefaultMagic         = "DISCOVERY"
)

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "chainkeeper.db",
			},
		},
		Server: Server{
			SyncPort:          DefaultSyncPort,
			HTTPAddress:       "127.0.0.1:8081",
			AdvertiseInterval: 3 * time.Second,
			ConnTimeout:       5 * time.Second,
		},
		Discovery: Discovery{
			Port:         DefaultDiscoveryPort,
			Magic:        DefaultMagic,
			ProbeTimeout: 250 * time.Millisecond,
			PingTimeout:  200 * time.Millisecond,
			Concurrency:  32,
		},
		Client: Client{
			DialTimeout:    2 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
	}
}
