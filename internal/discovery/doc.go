// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery locates a sync server on the local /24 network.
//
// The server side runs a [Responder] that answers the magic probe string
// with its advertised "host:port", and an [Advertiser] that tracks the
// local address. The client side runs a [Scanner] that pings every
// candidate host, probes the reachable ones over UDP and returns the first
// answer. Finding nothing is not an error: Scan returns "".
package discovery
