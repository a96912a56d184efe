// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"only port", NetAddress{Port: 8080}, ":8080"},
		{"ipv6", NetAddress{Host: "::1", Port: 9090}, "[::1]:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{"ip and port", "192.168.1.5:8080", false, NetAddress{Host: "192.168.1.5", Port: 8080}},
		{"localhost", "localhost:1", false, NetAddress{Host: "localhost", Port: 1}},
		{"all interfaces", ":8081", false, NetAddress{Port: 8081}},
		{"no port", "localhost", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
		{"zero port", "127.0.0.1:0", true, NetAddress{}},
		{"port too large", "127.0.0.1:70000", true, NetAddress{}},
		{"non numeric port", "127.0.0.1:http", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllGroups(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-config", "/etc/ck.yaml",
		"-driver", "pgx",
		"-d", "postgres://localhost/ck",
		"-host", "10.0.0.2",
		"-p", "9000",
		"-http", "127.0.0.1:9001",
		"-advertise", "5s",
		"-conn-timeout", "2s",
		"-discovery-port", "9888",
		"-probe-timeout", "100ms",
		"-ping-timeout", "50ms",
		"-concurrency", "8",
		"-no-discovery",
		"-a", "10.0.0.3:9000",
		"-dial-timeout", "1s",
		"-request-timeout", "3s",
		"-log-file", "/tmp/ck.log",
		"-sync-interval", "1m",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/ck.yaml", cfg.ConfigFilePath)
	assert.Equal(t, DB{Driver: "pgx", DSN: "postgres://localhost/ck"}, cfg.Storage.DB)
	assert.Equal(t, Server{
		Host:              "10.0.0.2",
		SyncPort:          9000,
		HTTPAddress:       "127.0.0.1:9001",
		AdvertiseInterval: 5 * time.Second,
		ConnTimeout:       2 * time.Second,
	}, cfg.Server)
	assert.Equal(t, Discovery{
		Port:         9888,
		ProbeTimeout: 100 * time.Millisecond,
		PingTimeout:  50 * time.Millisecond,
		Concurrency:  8,
		Disabled:     true,
	}, cfg.Discovery)
	assert.Equal(t, Client{
		ServerAddress:  "10.0.0.3:9000",
		DialTimeout:    time.Second,
		RequestTimeout: 3 * time.Second,
		LogFile:        "/tmp/ck.log",
	}, cfg.Client)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestParseFlags_Publish(t *testing.T) {
	cfg, err := parseFlags([]string{"-publish", "a, b,", "-publish", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Client.Publish)
}
