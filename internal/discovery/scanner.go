// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// CandidatesFunc lists the hosts a [Scanner] probes.
type CandidatesFunc func() ([]string, error)

// Scanner searches the local network for a sync server.
type Scanner struct {
	pinger       Pinger
	candidates   CandidatesFunc
	port         int
	magic        string
	probeTimeout time.Duration
	pingTimeout  time.Duration
	concurrency  int
	logger       *logger.Logger
}

// NewScanner builds a [Scanner] over the local /24.
func NewScanner(cfg config.Discovery, pinger Pinger, log *logger.Logger) *Scanner {
	return NewScannerWithCandidates(cfg, pinger, LocalCandidates, log)
}

// NewScannerWithCandidates builds a [Scanner] probing the hosts returned by
// candidates.
func NewScannerWithCandidates(cfg config.Discovery, pinger Pinger, candidates CandidatesFunc, log *logger.Logger) *Scanner {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Scanner{
		pinger:       pinger,
		candidates:   candidates,
		port:         cfg.Port,
		magic:        cfg.Magic,
		probeTimeout: cfg.ProbeTimeout,
		pingTimeout:  cfg.PingTimeout,
		concurrency:  concurrency,
		logger:       log,
	}
}

// Scan returns the "host:port" advertised by the first responder, or ""
// when nobody answers. It returns early as soon as one host answers, and
// returns ctx's error only when ctx ends before the scan completes.
func (s *Scanner) Scan(ctx context.Context) (string, error) {
	hosts, err := s.candidates()
	if err != nil {
		s.logger.Err(err).Str("func", "*Scanner.Scan").Msg("error listing candidates")
		return "", err
	}

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once  sync.Once
		found string
	)

	g, gctx := errgroup.WithContext(scanCtx)
	g.SetLimit(s.concurrency)

	for _, host := range hosts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			addr := s.probeHost(gctx, host)
			if addr != "" {
				once.Do(func() {
					found = addr
					cancel()
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	if found != "" {
		s.logger.Info().Str("func", "*Scanner.Scan").Str("address", found).Msg("sync server discovered")
		return found, nil
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	s.logger.Debug().Str("func", "*Scanner.Scan").Int("candidates", len(hosts)).Msg("no sync server found")
	return "", nil
}

func (s *Scanner) probeHost(ctx context.Context, host string) string {
	if s.pingTimeout > 0 {
		pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
		reachable := s.pinger.Ping(pingCtx, host)
		cancel()
		if !reachable {
			return ""
		}
	} else if !s.pinger.Ping(ctx, host) {
		return ""
	}

	return Probe(ctx, net.JoinHostPort(host, strconv.Itoa(s.port)), s.magic, s.probeTimeout)
}

// Probe sends magic to the UDP address and waits up to timeout for a
// "host:port" reply. Any failure, including a malformed reply, yields "".
func Probe(ctx context.Context, address, magic string, timeout time.Duration) string {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", address)
	if err != nil {
		return ""
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	deadline := time.Now().Add(timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err = conn.SetDeadline(deadline); err != nil {
		return ""
	}

	if _, err = conn.Write([]byte(magic)); err != nil {
		return ""
	}

	buf := make([]byte, 256)
	n, err := conn.Read(buf)
	if err != nil {
		return ""
	}

	reply := string(bytes.TrimSpace(buf[:n]))
	if _, port, err := net.SplitHostPort(reply); err != nil || port == "" {
		return ""
	}
	return reply
}
