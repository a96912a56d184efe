// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags into a config.
//
// Flags:
//
//	-c/-config        config file path (JSON or YAML)
//	-driver           storage driver: sqlite3, pgx or memory
//	-d                storage DSN
//	-host             pinned advertised host of the sync server
//	-p                sync TCP port
//	-http             diagnostics address host:port
//	-advertise        address re-resolve interval (e.g. "3s")
//	-conn-timeout     per-connection timeout on the server
//	-discovery-port   UDP discovery port
//	-probe-timeout    discovery reply timeout per host
//	-ping-timeout     reachability timeout per host
//	-concurrency      concurrent discovery probes
//	-no-discovery     disable the responder and scanning
//	-a                sync server address host:port used by the client
//	-dial-timeout     client connect timeout
//	-request-timeout  client request timeout
//	-log-file         client log file
//	-status           server diagnostics address
//	-publish          chain ids to push before syncing
//	-sync-interval    periodic client sync interval, 0 disables
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("chain-keeper", flag.ContinueOnError)

	var (
		httpAddress, serverAddress, statusAddress NetAddress
		cfg                                       StructuredConfig
	)

	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Storage driver: sqlite3, pgx or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Storage DSN")

	fs.StringVar(&cfg.Server.Host, "host", "", "Pinned advertised host")
	fs.IntVar(&cfg.Server.SyncPort, "p", 0, "Sync TCP port")
	fs.Var(&httpAddress, "http", "Diagnostics address host:port")
	fs.DurationVar(&cfg.Server.AdvertiseInterval, "advertise", 0, "Address re-resolve interval (e.g., 3s)")
	fs.DurationVar(&cfg.Server.ConnTimeout, "conn-timeout", 0, "Per-connection timeout")

	fs.IntVar(&cfg.Discovery.Port, "discovery-port", 0, "UDP discovery port")
	fs.DurationVar(&cfg.Discovery.ProbeTimeout, "probe-timeout", 0, "Discovery reply timeout per host")
	fs.DurationVar(&cfg.Discovery.PingTimeout, "ping-timeout", 0, "Reachability timeout per host")
	fs.IntVar(&cfg.Discovery.Concurrency, "concurrency", 0, "Concurrent discovery probes")
	fs.BoolVar(&cfg.Discovery.Disabled, "no-discovery", false, "Disable discovery")

	fs.Var(&serverAddress, "a", "Sync server address host:port")
	fs.DurationVar(&cfg.Client.DialTimeout, "dial-timeout", 0, "Client connect timeout")
	fs.DurationVar(&cfg.Client.RequestTimeout, "request-timeout", 0, "Client request timeout")
	fs.StringVar(&cfg.Client.LogFile, "log-file", "", "Client log file")
	fs.Var(&statusAddress, "status", "Server diagnostics address host:port")
	fs.Func("publish", "Comma separated chain ids to push before syncing", func(v string) error {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.Client.Publish = append(cfg.Client.Publish, id)
			}
		}
		return nil
	})

	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", time.Duration(0), "Periodic sync interval, 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Client.ServerAddress = serverAddress.String()
	cfg.Client.StatusAddress = statusAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be an IP address, "localhost" or
// empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
