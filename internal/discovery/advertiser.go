// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

const defaultAdvertiseInterval = 3 * time.Second

// HostResolver returns the current host to advertise.
type HostResolver func() (string, error)

// LocalHostResolver returns a resolver pinned to host, or one that follows
// the local interface address when host is empty.
func LocalHostResolver(host string) HostResolver {
	if host != "" {
		return func() (string, error) { return host, nil }
	}
	return func() (string, error) {
		ip, err := LocalIP()
		if err != nil {
			return "", err
		}
		return ip.String(), nil
	}
}

// Advertiser periodically resolves the local host and publishes
// "host:port" to its subscribers whenever it changes.
type Advertiser struct {
	resolve  HostResolver
	port     int
	interval time.Duration
	logger   *logger.Logger

	mu      sync.RWMutex
	current string
	subs    []chan string
}

// NewAdvertiser constructs an [Advertiser].
// A non-positive interval defaults to three seconds.
func NewAdvertiser(resolve HostResolver, port int, interval time.Duration, log *logger.Logger) *Advertiser {
	if interval <= 0 {
		interval = defaultAdvertiseInterval
	}
	return &Advertiser{
		resolve:  resolve,
		port:     port,
		interval: interval,
		logger:   log,
	}
}

// Subscribe returns a channel that receives every new address. Only the
// latest unread value is kept. The channel is closed when Run returns.
func (a *Advertiser) Subscribe() <-chan string {
	ch := make(chan string, 1)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != "" {
		ch <- a.current
	}
	a.subs = append(a.subs, ch)
	return ch
}

// Current returns the last published address, or "" before the first one.
func (a *Advertiser) Current() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// Run resolves immediately and then once per interval until ctx ends.
func (a *Advertiser) Run(ctx context.Context) error {
	defer a.closeSubscribers()

	a.tick()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *Advertiser) tick() {
	host, err := a.resolve()
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*Advertiser.tick").Msg("error resolving local address")
		return
	}
	a.publish(JoinHostPort(host, a.port))
}

func (a *Advertiser) publish(addr string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if addr == a.current {
		return
	}
	a.current = addr
	a.logger.Info().Str("func", "*Advertiser.publish").Str("address", addr).Msg("advertised address changed")

	for _, ch := range a.subs {
		select {
		case <-ch:
		default:
		}
		ch <- addr
	}
}

func (a *Advertiser) closeSubscribers() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ch := range a.subs {
		close(ch)
	}
	a.subs = nil
}
