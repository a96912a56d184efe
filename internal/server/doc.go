// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the sync server transports.
//
// [Listener] owns one TCP socket bound to host:port and answers exactly one
// request frame per connection. [Rebinder] follows the advertised host and
// moves the listener whenever the local address changes. The diagnostics
// HTTP server and the discovery responder run next to them; [Server] starts
// everything and shuts it down on a termination signal.
package server
