// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the read-only diagnostics endpoint of the sync
// server: the running version and the currently advertised sync address.
// Requests carry a trace id and are access-logged.
package http
