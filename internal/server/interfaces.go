// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
)

// RequestHandler answers one decoded request frame. It never fails: errors
// are carried by an Error envelope.
type RequestHandler interface {
	Handle(ctx context.Context, req protocol.Envelope) protocol.Envelope
}

// AddressFeed publishes the sync address to bind and advertise.
type AddressFeed interface {
	Subscribe() <-chan string
	Current() string
	Run(ctx context.Context) error
}

// Server defines the lifecycle of the sync server.
type Server interface {
	// RunServer runs until SIGINT, SIGTERM or SIGQUIT, or until Shutdown.
	RunServer()

	// Shutdown stops a running server and waits for it to finish.
	Shutdown()
}
