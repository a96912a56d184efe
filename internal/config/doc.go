// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the chain-keeper binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (a value from an earlier source is never overwritten):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file, JSON or YAML chosen by extension
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig]; both return
// a validated, role-specific view of [StructuredConfig].
package config
