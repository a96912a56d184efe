// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllGroups(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"STORAGE_DB_DRIVER": "memory",
		"STORAGE_DB_DSN":    "ignored",

		"SERVER_HOST":               "10.0.0.9",
		"SERVER_SYNC_PORT":          "9090",
		"SERVER_HTTP_ADDRESS":       "127.0.0.1:9091",
		"SERVER_ADVERTISE_INTERVAL": "4s",
		"SERVER_CONN_TIMEOUT":       "1s",

		"DISCOVERY_PORT":          "9999",
		"DISCOVERY_MAGIC":         "HELLO",
		"DISCOVERY_PROBE_TIMEOUT": "300ms",
		"DISCOVERY_PING_TIMEOUT":  "100ms",
		"DISCOVERY_CONCURRENCY":   "4",
		"DISCOVERY_DISABLED":      "true",

		"CLIENT_SERVER_ADDRESS":  "10.0.0.9:9090",
		"CLIENT_DIAL_TIMEOUT":    "2s",
		"CLIENT_REQUEST_TIMEOUT": "5s",
		"CLIENT_LOG_FILE":        "client.log",
		"CLIENT_PUBLISH":         "a,b",

		"WORKERS_SYNC_INTERVAL": "30s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
	assert.Equal(t, "10.0.0.9", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.SyncPort)
	assert.Equal(t, 4*time.Second, cfg.Server.AdvertiseInterval)
	assert.Equal(t, "HELLO", cfg.Discovery.Magic)
	assert.Equal(t, 300*time.Millisecond, cfg.Discovery.ProbeTimeout)
	assert.True(t, cfg.Discovery.Disabled)
	assert.Equal(t, "10.0.0.9:9090", cfg.Client.ServerAddress)
	assert.Equal(t, "client.log", cfg.Client.LogFile)
	assert.Equal(t, []string{"a", "b"}, cfg.Client.Publish)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_CONN_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
