// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

const httpShutdownTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	bound chan string
}

func newHTTPServer(handler http.Handler, addr string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		bound:  make(chan string, 1),
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (h *httpServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Run").Str("addr", h.server.Addr).Msg("error binding diagnostics endpoint")
		return err
	}
	h.bound <- ln.Addr().String()
	h.logger.Info().Str("func", "*httpServer.Run").Str("addr", ln.Addr().String()).Msg("diagnostics endpoint started")

	errCh := make(chan error, 1)
	go func() { errCh <- h.server.Serve(ln) }()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), httpShutdownTimeout)
	defer cancel()
	if err = h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpServer.Run").Msg("HTTP server shutdown")
	}
	<-errCh
	return nil
}
