// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/discovery"
	"github.com/MKhiriev/go-chain-keeper/internal/handler"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/workers"
)

type server struct {
	feed       AddressFeed
	rebinder   *Rebinder
	httpServer *httpServer
	cfg        config.ServerConfig
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewServer wires the advertiser feed, the rebinding sync listener, the
// discovery responder and, when configured, the diagnostics endpoint.
func NewServer(handlers *handler.Handlers, feed AddressFeed, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.Sync == nil {
		return nil, errNoHandler
	}
	if feed == nil {
		return nil, errNoAdvertiser
	}

	s := &server{
		feed:     feed,
		rebinder: NewRebinder(feed.Subscribe(), handlers.Sync, cfg.Server.ConnTimeout, logger),
		cfg:      cfg,
		logger:   logger,
	}
	if handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server.HTTPAddress, logger)
	}

	return s, nil
}

// Address reports where the sync listener is bound.
func (s *server) Address() string {
	return s.rebinder.Address()
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server shutdown gracefully")
}

// Run blocks until ctx is done or a component fails.
func (s *server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	defer close(done)
	defer cancel()

	ws := workers.New().
		Add("advertiser", s.feed).
		Add("sync listener", s.rebinder)
	if s.httpServer != nil {
		ws.Add("diagnostics", s.httpServer)
	}
	if !s.cfg.Discovery.Disabled {
		ws.Add("discovery responder", workers.WorkerFunc(s.runResponder))
	}

	return ws.Run(ctx)
}

func (s *server) runResponder(ctx context.Context) error {
	addr := ":" + strconv.Itoa(s.cfg.Discovery.Port)
	responder, err := discovery.StartResponder(ctx, addr, s.cfg.Discovery.Magic, s.rebinder.Address, s.logger)
	if err != nil {
		return err
	}
	<-ctx.Done()
	return responder.Close()
}

func (s *server) Shutdown() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
