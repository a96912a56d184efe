// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN
	// for a persistent driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an invalid sync port, interval or
	// connection timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDiscoveryConfigs indicates an invalid discovery port, magic
	// string, timeout or concurrency.
	ErrInvalidDiscoveryConfigs = errors.New("invalid discovery configuration")
	// ErrInvalidClientConfigs indicates invalid client timeouts, or no
	// server address while discovery is disabled.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidWorkerConfigs indicates a negative sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
