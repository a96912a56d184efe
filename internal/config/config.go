// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Server    Server    `envPrefix:"SERVER_"`
	Discovery Discovery `envPrefix:"DISCOVERY_"`
	Client    Client    `envPrefix:"CLIENT_"`
	Workers   Workers   `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML file.
	// Env: CONFIG, flags: -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by the diagnostics endpoint when the binary was
	// built without version ldflags.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// Supported values of DB.Driver.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverMemory   = "memory"
)

// DB holds connection settings for the chain store.
type DB struct {
	// Driver selects the backend: "sqlite3", "pgx" or "memory".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is a file path for sqlite3 or a connection URI for pgx.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the sync server role.
type Server struct {
	// Host pins the advertised host. When empty the local address is
	// resolved periodically and the listener follows it.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// SyncPort is the TCP port of the sync protocol.
	// Env: SERVER_SYNC_PORT
	SyncPort int `env:"SYNC_PORT"`

	// HTTPAddress is the diagnostics endpoint address. "-" disables it.
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// AdvertiseInterval is how often the local address is re-resolved.
	// Env: SERVER_ADVERTISE_INTERVAL
	AdvertiseInterval time.Duration `env:"ADVERTISE_INTERVAL"`

	// ConnTimeout bounds the whole exchange on one accepted connection.
	// Env: SERVER_CONN_TIMEOUT
	ConnTimeout time.Duration `env:"CONN_TIMEOUT"`
}

// Discovery holds UDP discovery settings shared by both roles.
type Discovery struct {
	// Env: DISCOVERY_PORT
	Port int `env:"PORT"`
	// Env: DISCOVERY_MAGIC
	Magic string `env:"MAGIC"`
	// ProbeTimeout bounds the wait for a reply from one candidate.
	// Env: DISCOVERY_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
	// PingTimeout bounds the reachability check of one candidate.
	// Env: DISCOVERY_PING_TIMEOUT
	PingTimeout time.Duration `env:"PING_TIMEOUT"`
	// Concurrency is the number of candidates probed at once.
	// Env: DISCOVERY_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
	// Disabled turns off the responder on the server and scanning on the
	// client.
	// Env: DISCOVERY_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Client holds settings of the sync client role.
type Client struct {
	// ServerAddress is a fixed host:port of the sync server. When empty the
	// server is located by discovery.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Env: CLIENT_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// StatusAddress is the diagnostics endpoint of the sync server. When set
	// the client reports the server version and status before syncing.
	// Env: CLIENT_STATUS_ADDRESS
	StatusAddress string `env:"STATUS_ADDRESS"`
	// Publish lists chain ids pushed to the server before each pull.
	// Env: CLIENT_PUBLISH (comma separated)
	Publish []string `env:"PUBLISH" envSeparator:","`
	// LogFile is the rotating log file of the client. Empty logs to stdout.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval enables periodic client sync when non-zero.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration from the process environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(nil)
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
