// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type tcpSyncAdapter struct {
	dialer Dialer
	logger *logger.Logger
}

// NewTCPSyncAdapter constructs the TCP implementation of [SyncAdapter].
func NewTCPSyncAdapter(cfg config.Client, log *logger.Logger) SyncAdapter {
	return &tcpSyncAdapter{
		dialer: Dialer{DialTimeout: cfg.DialTimeout, RequestTimeout: cfg.RequestTimeout},
		logger: log,
	}
}

// call performs one request on a fresh connection and decodes a successful
// reply into out, which may be nil.
func (a *tcpSyncAdapter) call(ctx context.Context, host string, route protocol.Route, payload, out any) error {
	log := logger.FromContext(ctx)

	req, err := protocol.NewEnvelope(route, payload)
	if err != nil {
		return err
	}

	conn, err := a.dialer.Connect(ctx, host)
	if err != nil {
		log.Err(err).Str("func", "*tcpSyncAdapter.call").Str("host", host).Str("route", route.String()).Msg("error connecting")
		return err
	}
	defer conn.Close()

	reply, err := conn.RoundTrip(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*tcpSyncAdapter.call").Str("host", host).Str("route", route.String()).Msg("round trip failed")
		return err
	}

	if err = mapReply(route, reply); err != nil {
		log.Debug().Err(err).Str("func", "*tcpSyncAdapter.call").Str("route", route.String()).Msg("server returned error")
		return err
	}

	if out == nil {
		return nil
	}
	return reply.Bind(out)
}

func (a *tcpSyncAdapter) FetchChains(ctx context.Context, host string) ([]models.ChainBundle, error) {
	var resp protocol.ChainSyncResponse
	if err := a.call(ctx, host, protocol.RouteChainSync, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Chains, nil
}

func (a *tcpSyncAdapter) FetchLinks(ctx context.Context, host, chainID string) ([]models.ChainLink, error) {
	var resp protocol.LinkSyncResponse
	if err := a.call(ctx, host, protocol.RouteChainLinkSync, protocol.LinkSyncRequest{ChainID: chainID}, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}

func (a *tcpSyncAdapter) CreateChain(ctx context.Context, host string, chain models.Chain) (models.Chain, error) {
	var created models.Chain
	if err := a.call(ctx, host, protocol.RouteChainCreate, chain, &created); err != nil {
		return models.Chain{}, err
	}
	return created, nil
}

func (a *tcpSyncAdapter) GetChain(ctx context.Context, host, id string) (models.Chain, error) {
	var chain models.Chain
	if err := a.call(ctx, host, protocol.RouteChainRead, protocol.ChainRequest{ID: id}, &chain); err != nil {
		return models.Chain{}, err
	}
	return chain, nil
}

func (a *tcpSyncAdapter) DeleteChain(ctx context.Context, host, id, key string) error {
	return a.call(ctx, host, protocol.RouteChainDelete, protocol.ChainRequest{ID: id, Key: key}, nil)
}

func (a *tcpSyncAdapter) CreateLink(ctx context.Context, host string, link models.ChainLink, key string) (models.ChainLink, error) {
	var created models.ChainLink
	if err := a.call(ctx, host, protocol.RouteLinkCreate, protocol.LinkMutation{Link: link, Key: key}, &created); err != nil {
		return models.ChainLink{}, err
	}
	return created, nil
}

func (a *tcpSyncAdapter) GetLink(ctx context.Context, host, id, chainID string) (models.ChainLink, error) {
	var link models.ChainLink
	if err := a.call(ctx, host, protocol.RouteLinkRead, protocol.LinkRequest{ID: id, ChainID: chainID}, &link); err != nil {
		return models.ChainLink{}, err
	}
	return link, nil
}

func (a *tcpSyncAdapter) UpdateLink(ctx context.Context, host string, link models.ChainLink, key string) (models.ChainLink, error) {
	var updated models.ChainLink
	if err := a.call(ctx, host, protocol.RouteLinkUpdate, protocol.LinkMutation{Link: link, Key: key}, &updated); err != nil {
		return models.ChainLink{}, err
	}
	return updated, nil
}

func (a *tcpSyncAdapter) DeleteLink(ctx context.Context, host, id, chainID, key string) error {
	return a.call(ctx, host, protocol.RouteLinkDelete, protocol.LinkRequest{ID: id, ChainID: chainID, Key: key}, nil)
}
