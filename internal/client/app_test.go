// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type fakePublisher struct {
	mu        sync.Mutex
	published []string
	err       error
}

func (p *fakePublisher) PublishChain(_ context.Context, chainID string) (models.SyncReport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, chainID)
	return models.SyncReport{}, p.err
}

func newServices(syncSvc service.SyncService, pub service.Publisher, interval time.Duration) *service.ClientServices {
	return &service.ClientServices{
		SyncService: syncSvc,
		Publisher:   pub,
		SyncJob:     service.NewSyncJob(syncSvc, interval, logger.Nop()),
	}
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(nil, nil, config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestApp_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)
	status := mock.NewMockStatusClient(ctrl)
	pub := &fakePublisher{}

	gomock.InOrder(
		status.EXPECT().Version(gomock.Any()).Return("1.0.0", nil),
		status.EXPECT().Status(gomock.Any()).Return(models.Status{SyncAddress: "10.0.0.2:8080", Chains: 2}, nil),
		syncSvc.EXPECT().SyncAll(gomock.Any()).Return(models.SyncReport{LinksCreated: 1}, nil),
	)

	cfg := config.ClientConfig{Client: config.Client{Publish: []string{"a", "b"}}}
	app, err := NewApp(newServices(syncSvc, pub, 0), status, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"a", "b"}, pub.published)
}

func TestApp_RunOnce_StatusFailureDoesNotStopSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)
	status := mock.NewMockStatusClient(ctrl)

	status.EXPECT().Version(gomock.Any()).Return("", errors.New("unreachable"))
	syncSvc.EXPECT().SyncAll(gomock.Any()).Return(models.SyncReport{}, nil)

	app, err := NewApp(newServices(syncSvc, &fakePublisher{}, 0), status, config.ClientConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_RunOnce_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)
	syncErr := errors.New("no server")
	pubErr := errors.New("push failed")

	syncSvc.EXPECT().SyncAll(gomock.Any()).Return(models.SyncReport{}, syncErr)

	cfg := config.ClientConfig{Client: config.Client{Publish: []string{"a"}}}
	app, err := NewApp(newServices(syncSvc, &fakePublisher{err: pubErr}, 0), nil, cfg, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, syncErr)
	assert.ErrorIs(t, err, pubErr)
}

func TestApp_RunPeriodic(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int
	syncSvc.EXPECT().SyncAll(gomock.Any()).DoAndReturn(func(context.Context) (models.SyncReport, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return models.SyncReport{}, nil
	}).MinTimes(2)

	cfg := config.ClientConfig{Workers: config.Workers{SyncInterval: 10 * time.Millisecond}}
	app, err := NewApp(newServices(syncSvc, &fakePublisher{}, cfg.Workers.SyncInterval), nil, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("periodic run did not stop")
	}
}
