// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It optionally reports the server diagnostics, pushes the configured chains,
// then pulls once or keeps pulling on the configured interval.
package client
