// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type fakeAppInfo struct {
	version string
}

func (f *fakeAppInfo) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfo) GetBuildInfo(context.Context) models.BuildInfo {
	return models.BuildInfo{Version: f.version, Date: "2026-01-01", Commit: "abc123"}
}

type fakeStatus struct {
	status models.Status
	err    error
}

func (f *fakeStatus) Status(context.Context) (models.Status, error) { return f.status, f.err }

func newTestServer(t *testing.T, status *fakeStatus) *httptest.Server {
	t.Helper()
	h := NewHandler(&service.Services{
		AppInfoService: &fakeAppInfo{version: "1.2.3"},
		StatusService:  status,
	}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, header http.Header) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestVersion(t *testing.T) {
	srv := newTestServer(t, &fakeStatus{})

	resp, body := do(t, http.MethodGet, srv.URL+"/api/version", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "1.2.3", body)
}

func TestBuildInfo(t *testing.T) {
	srv := newTestServer(t, &fakeStatus{})

	resp, body := do(t, http.MethodGet, srv.URL+"/api/build", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-01-01","commit":"abc123"}`, body)
}

func TestStatus(t *testing.T) {
	want := models.Status{SyncAddress: "192.168.1.5:8080", DiscoveryPort: 8888, Chains: 2}
	srv := newTestServer(t, &fakeStatus{status: want})

	resp, body := do(t, http.MethodGet, srv.URL+"/api/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got models.Status
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, want, got)
}

func TestStatus_ServiceError(t *testing.T) {
	srv := newTestServer(t, &fakeStatus{err: errors.New("db down")})

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/status", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestWrongMethodIsNotFound(t *testing.T) {
	srv := newTestServer(t, &fakeStatus{})

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/status", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownPath(t *testing.T) {
	srv := newTestServer(t, &fakeStatus{})

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/user/login", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTraceID(t *testing.T) {
	srv := newTestServer(t, &fakeStatus{})

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/version", http.Header{"X-Trace-Id": {"my-trace"}})
	assert.Equal(t, "my-trace", resp.Header.Get(traceIDHeader))

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/version", nil)
	_, err := uuid.Parse(resp.Header.Get(traceIDHeader))
	assert.NoError(t, err, "a trace id is generated when none is sent")
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var got *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logger.FromRequest(r)
	})

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotNil(t, got)
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 11, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _ = w.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, w.status)
}
