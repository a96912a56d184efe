// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the view of [StructuredConfig] used by cmd/server.
type ServerConfig struct {
	App       App
	Storage   Storage
	Server    Server
	Discovery Discovery
}

// ClientConfig is the view of [StructuredConfig] used by cmd/client.
type ClientConfig struct {
	App       App
	Storage   Storage
	Client    Client
	Discovery Discovery
	Workers   Workers
}

// GetServerConfig loads the merged configuration and returns the validated
// server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ServerView()
}

// GetClientConfig loads the merged configuration and returns the validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ClientView()
}

// ServerView projects and validates the server settings.
func (cfg *StructuredConfig) ServerView() (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Server:    cfg.Server,
		Discovery: cfg.Discovery,
	}
	return serverCfg, serverCfg.validate()
}

// ClientView projects and validates the client settings.
func (cfg *StructuredConfig) ClientView() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Client:    cfg.Client,
		Discovery: cfg.Discovery,
		Workers:   cfg.Workers,
	}
	return clientCfg, clientCfg.validate()
}
