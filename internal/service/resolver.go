// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// hostResolver picks the sync server address. A configured address always
// wins. Otherwise the last discovered address is reused until a network
// failure against it, after which discovery runs again.
type hostResolver struct {
	configured string
	discoverer Discoverer
	logger     *logger.Logger

	mu     sync.Mutex
	cached string
}

func newHostResolver(configured string, discoverer Discoverer, log *logger.Logger) *hostResolver {
	return &hostResolver{configured: configured, discoverer: discoverer, logger: log}
}

// resolve returns the address and whether it came from the cache.
func (r *hostResolver) resolve(ctx context.Context) (string, bool, error) {
	if r.configured != "" {
		return r.configured, false, nil
	}

	r.mu.Lock()
	cached := r.cached
	r.mu.Unlock()
	if cached != "" {
		return cached, true, nil
	}

	host, err := r.discover(ctx)
	return host, false, err
}

func (r *hostResolver) discover(ctx context.Context) (string, error) {
	if r.discoverer == nil {
		return "", serverNotFound(nil)
	}

	host, err := r.discoverer.Scan(ctx)
	if err != nil {
		return "", serverNotFound(err)
	}
	if host == "" {
		return "", serverNotFound(nil)
	}

	r.logger.Info().Str("func", "*hostResolver.discover").Str("host", host).Msg("sync server discovered")

	r.mu.Lock()
	r.cached = host
	r.mu.Unlock()
	return host, nil
}

// forget drops host from the cache if it is still the cached value.
func (r *hostResolver) forget(host string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached == host {
		r.cached = ""
	}
}

// withHost runs call against the resolved host. When a cached host fails
// with a network error it is dropped and call runs once more against a
// freshly discovered one.
func (r *hostResolver) withHost(ctx context.Context, call func(host string) error) error {
	host, fromCache, err := r.resolve(ctx)
	if err != nil {
		return err
	}

	err = call(host)
	if err == nil || !fromCache || !errors.Is(err, apperrors.ErrSyncNetwork) {
		return err
	}

	r.logger.Warn().Err(err).Str("func", "*hostResolver.withHost").Str("host", host).Msg("cached sync server unreachable, rediscovering")
	r.forget(host)

	host, err = r.discover(ctx)
	if err != nil {
		return err
	}
	return call(host)
}
