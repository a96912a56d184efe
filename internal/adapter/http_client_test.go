// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

func newStatusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/version", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("v1.2.3\n"))
	})
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"sync_address":"10.0.0.5:7000","discovery_port":7001,"chains":3}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPStatusClient_Version(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK)

	cli, err := NewHTTPStatusClient(strings.TrimPrefix(srv.URL, "http://"), time.Second, logger.Nop())
	require.NoError(t, err)

	v, err := cli.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

func TestHTTPStatusClient_Status(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK)

	cli, err := NewHTTPStatusClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	st, err := cli.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Status{SyncAddress: "10.0.0.5:7000", DiscoveryPort: 7001, Chains: 3}, st)
}

func TestHTTPStatusClient_ErrorStatus(t *testing.T) {
	srv := newStatusServer(t, http.StatusServiceUnavailable)

	cli, err := NewHTTPStatusClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = cli.Status(context.Background())
	assert.ErrorIs(t, err, ErrStatusEndpoint)

	_, err = cli.Version(context.Background())
	assert.ErrorIs(t, err, ErrStatusEndpoint)
}

func TestNewHTTPStatusClient_EmptyAddress(t *testing.T) {
	_, err := NewHTTPStatusClient("  ", time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
