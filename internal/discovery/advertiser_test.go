// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

type scriptedResolver struct {
	mu    sync.Mutex
	hosts []string
	i     int
}

func (r *scriptedResolver) resolve() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.i >= len(r.hosts) {
		return r.hosts[len(r.hosts)-1], nil
	}
	h := r.hosts[r.i]
	r.i++
	if h == "" {
		return "", errors.New("offline")
	}
	return h, nil
}

func TestAdvertiser_PublishesOnlyChanges(t *testing.T) {
	res := &scriptedResolver{hosts: []string{"10.0.0.2", "10.0.0.2", "", "10.0.0.3", "10.0.0.3"}}
	a := NewAdvertiser(res.resolve, 8080, 5*time.Millisecond, logger.Nop())
	sub := a.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = a.Run(ctx)
		close(done)
	}()

	var got []string
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case addr := <-sub:
			got = append(got, addr)
		case <-timeout:
			t.Fatalf("timed out, got %v", got)
		}
	}
	cancel()
	<-done

	assert.Equal(t, []string{"10.0.0.2:8080", "10.0.0.3:8080"}, got)
	assert.Equal(t, "10.0.0.3:8080", a.Current())

	_, open := <-sub
	assert.False(t, open, "subscriber channel must be closed after Run returns")
}

func TestAdvertiser_LateSubscriberGetsCurrent(t *testing.T) {
	a := NewAdvertiser(LocalHostResolver("192.168.0.10"), 8080, time.Hour, logger.Nop())
	a.tick()

	select {
	case addr := <-a.Subscribe():
		assert.Equal(t, "192.168.0.10:8080", addr)
	default:
		t.Fatal("expected current address to be delivered immediately")
	}
}

func TestLocalHostResolver_Pinned(t *testing.T) {
	host, err := LocalHostResolver("127.0.0.1")()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
}
