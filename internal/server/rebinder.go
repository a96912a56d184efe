// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

const rebindRetry = time.Second

// Rebinder keeps one [Listener] bound to the latest advertised address. A
// new address stops the old listener before the new one starts; a repeated
// address is ignored. A failed bind is retried until it succeeds or the
// address changes.
type Rebinder struct {
	addrs       <-chan string
	handler     RequestHandler
	connTimeout time.Duration
	logger      *logger.Logger

	mu      sync.RWMutex
	current *Listener
	addr    string
}

// NewRebinder consumes "host:port" values, typically from
// [discovery.Advertiser.Subscribe].
func NewRebinder(addrs <-chan string, handler RequestHandler, connTimeout time.Duration, log *logger.Logger) *Rebinder {
	return &Rebinder{
		addrs:       addrs,
		handler:     handler,
		connTimeout: connTimeout,
		logger:      log,
	}
}

// Address returns the address of the running listener, or "" when none is
// bound.
func (r *Rebinder) Address() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return ""
	}
	return r.current.Addr()
}

// Run follows the feed until ctx is done or the feed is closed. The listener
// is stopped before Run returns.
func (r *Rebinder) Run(ctx context.Context) error {
	if r.addrs == nil {
		return errNoAdvertiser
	}
	defer r.stop()

	retry := time.NewTimer(rebindRetry)
	retry.Stop()
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case addr, ok := <-r.addrs:
			if !ok {
				return nil
			}
			if r.bound(addr) {
				continue
			}
			if !r.rebind(ctx, addr) {
				retry.Reset(rebindRetry)
			}

		case <-retry.C:
			r.mu.RLock()
			addr, bound := r.addr, r.current != nil
			r.mu.RUnlock()
			if !bound && addr != "" && !r.rebind(ctx, addr) {
				retry.Reset(rebindRetry)
			}
		}
	}
}

func (r *Rebinder) bound(addr string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current != nil && r.addr == addr
}

// rebind moves the listener to addr. It reports whether a listener is
// running afterwards.
func (r *Rebinder) rebind(ctx context.Context, addr string) bool {
	r.stop()

	r.mu.Lock()
	r.addr = addr
	r.mu.Unlock()

	l, err := Listen(ctx, addr, r.handler, r.connTimeout, r.logger)
	if err != nil {
		r.logger.Err(err).Str("func", "*Rebinder.rebind").Str("addr", addr).Msg("error binding sync listener")
		return false
	}

	r.mu.Lock()
	r.current = l
	r.mu.Unlock()

	r.logger.Info().Str("func", "*Rebinder.rebind").Str("addr", l.Addr()).Msg("sync listener bound")
	return true
}

func (r *Rebinder) stop() {
	r.mu.Lock()
	l := r.current
	r.current = nil
	r.mu.Unlock()

	if l != nil {
		l.Stop()
	}
}
