// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files, with
// durations written as strings ("3s", "250ms").
type fileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		Host              string   `json:"host" yaml:"host"`
		SyncPort          int      `json:"sync_port" yaml:"sync_port"`
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		AdvertiseInterval Duration `json:"advertise_interval" yaml:"advertise_interval"`
		ConnTimeout       Duration `json:"conn_timeout" yaml:"conn_timeout"`
	} `json:"server" yaml:"server"`

	Discovery struct {
		Port         int      `json:"port" yaml:"port"`
		Magic        string   `json:"magic" yaml:"magic"`
		ProbeTimeout Duration `json:"probe_timeout" yaml:"probe_timeout"`
		PingTimeout  Duration `json:"ping_timeout" yaml:"ping_timeout"`
		Concurrency  int      `json:"concurrency" yaml:"concurrency"`
		Disabled     bool     `json:"disabled" yaml:"disabled"`
	} `json:"discovery" yaml:"discovery"`

	Client struct {
		ServerAddress  string   `json:"server_address" yaml:"server_address"`
		DialTimeout    Duration `json:"dial_timeout" yaml:"dial_timeout"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		LogFile        string   `json:"log_file" yaml:"log_file"`
		StatusAddress  string   `json:"status_address" yaml:"status_address"`
		Publish        []string `json:"publish" yaml:"publish"`
	} `json:"client" yaml:"client"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: fc.App.Version},
		Storage: Storage{
			DB: DB{
				Driver: fc.Storage.DB.Driver,
				DSN:    fc.Storage.DB.DSN,
			},
		},
		Server: Server{
			Host:              fc.Server.Host,
			SyncPort:          fc.Server.SyncPort,
			HTTPAddress:       fc.Server.HTTPAddress,
			AdvertiseInterval: time.Duration(fc.Server.AdvertiseInterval),
			ConnTimeout:       time.Duration(fc.Server.ConnTimeout),
		},
		Discovery: Discovery{
			Port:         fc.Discovery.Port,
			Magic:        fc.Discovery.Magic,
			ProbeTimeout: time.Duration(fc.Discovery.ProbeTimeout),
			PingTimeout:  time.Duration(fc.Discovery.PingTimeout),
			Concurrency:  fc.Discovery.Concurrency,
			Disabled:     fc.Discovery.Disabled,
		},
		Client: Client{
			ServerAddress:  fc.Client.ServerAddress,
			DialTimeout:    time.Duration(fc.Client.DialTimeout),
			RequestTimeout: time.Duration(fc.Client.RequestTimeout),
			LogFile:        fc.Client.LogFile,
			StatusAddress:  fc.Client.StatusAddress,
			Publish:        fc.Client.Publish,
		},
		Workers: Workers{
			SyncInterval: time.Duration(fc.Workers.SyncInterval),
		},
	}
}

// Duration is a time.Duration that decodes from "1h" / "30s" strings or
// from integer nanoseconds, in both JSON and YAML.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var i int64
	if err := node.Decode(&i); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(i)
	return nil
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
}

// MarshalJSON renders the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
