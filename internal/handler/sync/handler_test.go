// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	chainID = "0190a8f2-0000-7000-8000-000000000001"
	linkID  = "0190a8f2-0000-7000-8000-0000000000aa"
)

var (
	verifier = crypto.EncodeBase64(bytes.Repeat([]byte{0x01}, crypto.KeySize))
	chain    = models.Chain{
		ID:   chainID,
		Name: "work",
		Key:  verifier,
		Salt: crypto.EncodeBase64(bytes.Repeat([]byte{0x02}, crypto.SaltSize)),
	}
	link = models.ChainLink{
		ID:          linkID,
		Name:        "mail",
		Description: "inbox",
		Password:    crypto.EncodeBase64([]byte("ciphertext-bytes")),
		IV:          crypto.EncodeBase64(bytes.Repeat([]byte{0x03}, crypto.IVSize)),
		ChainID:     chainID,
	}
)

func newTestHandler(t *testing.T) (*Handler, store.Storage) {
	t.Helper()
	s, err := store.NewMemoryStorage("")
	require.NoError(t, err)
	return NewHandler(s, validators.NewChainValidator(), logger.Nop()), s
}

func request(t *testing.T, route protocol.Route, payload any) protocol.Envelope {
	t.Helper()
	env, err := protocol.NewEnvelope(route, payload)
	require.NoError(t, err)
	return env
}

func requireOK(t *testing.T, reply protocol.Envelope, route protocol.Route, out any) {
	t.Helper()
	require.NoError(t, reply.AsError())
	require.Equal(t, route, reply.Route)
	if out != nil {
		require.NoError(t, json.Unmarshal(reply.Data, out))
	}
}

func seed(t *testing.T, s store.Storage) {
	t.Helper()
	require.NoError(t, s.CreateChain(context.Background(), chain))
	require.NoError(t, s.CreateLink(context.Background(), link))
}

func TestHandle_ChainSync(t *testing.T) {
	h, s := newTestHandler(t)
	seed(t, s)

	var resp protocol.ChainSyncResponse
	requireOK(t, h.Handle(context.Background(), protocol.Envelope{Route: protocol.RouteChainSync}), protocol.RouteChainSync, &resp)

	require.Len(t, resp.Chains, 1)
	assert.Equal(t, chain, resp.Chains[0].Chain)
	assert.Equal(t, []models.ChainLink{link}, resp.Chains[0].Links)
}

func TestHandle_ChainSync_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	reply := h.Handle(context.Background(), protocol.Envelope{Route: protocol.RouteChainSync})
	require.NoError(t, reply.AsError())
	assert.JSONEq(t, `{"chains":[]}`, string(reply.Data))
}

func TestHandle_ChainSyncVerifierPassesKeyChallenge(t *testing.T) {
	h, s := newTestHandler(t)
	seed(t, s)
	ctx := context.Background()

	var resp protocol.ChainSyncResponse
	requireOK(t, h.Handle(ctx, protocol.Envelope{Route: protocol.RouteChainSync}), protocol.RouteChainSync, &resp)
	require.Len(t, resp.Chains, 1)
	pulled := resp.Chains[0].Chain.Key
	assert.Equal(t, verifier, pulled)

	reply := h.Handle(ctx, request(t, protocol.RouteLinkDelete, protocol.LinkRequest{ID: linkID, ChainID: chainID, Key: pulled}))
	requireOK(t, reply, protocol.RouteLinkDelete, nil)
}

func TestHandle_ChainLinkSync(t *testing.T) {
	h, s := newTestHandler(t)
	seed(t, s)

	var resp protocol.LinkSyncResponse
	reply := h.Handle(context.Background(), request(t, protocol.RouteChainLinkSync, protocol.LinkSyncRequest{ChainID: chainID}))
	requireOK(t, reply, protocol.RouteChainLinkSync, &resp)
	assert.Equal(t, []models.ChainLink{link}, resp.Links)
}

func TestHandle_ChainLinkSync_UnknownChain(t *testing.T) {
	h, _ := newTestHandler(t)

	reply := h.Handle(context.Background(), request(t, protocol.RouteChainLinkSync, protocol.LinkSyncRequest{ChainID: chainID}))
	assert.Equal(t, protocol.RouteError, reply.Route)
	assert.ErrorIs(t, reply.AsError(), apperrors.ErrNotFound)
}

func TestHandle_MissingData(t *testing.T) {
	h, _ := newTestHandler(t)

	reply := h.Handle(context.Background(), protocol.Envelope{Route: protocol.RouteChainRead})
	err := reply.AsError()
	assert.Equal(t, apperrors.KindProtocol, apperrors.KindOf(err))
	assert.Equal(t, apperrors.CodeBadRequest, apperrors.CodeOf(err))
}

func TestHandle_ErrorRouteIsRejected(t *testing.T) {
	h, _ := newTestHandler(t)

	reply := h.Handle(context.Background(), protocol.Envelope{Route: protocol.RouteError})
	assert.Equal(t, apperrors.CodeBadRequest, apperrors.CodeOf(reply.AsError()))
}

func TestHandle_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	reply := h.Handle(context.Background(), protocol.Envelope{Route: "ChainTeleport"})
	assert.Equal(t, apperrors.CodeUnknownRoute, apperrors.CodeOf(reply.AsError()))
}

func TestHandle_ChainCreateReadDelete(t *testing.T) {
	h, s := newTestHandler(t)
	ctx := context.Background()

	var created models.Chain
	requireOK(t, h.Handle(ctx, request(t, protocol.RouteChainCreate, chain)), protocol.RouteChainCreate, &created)
	assert.Equal(t, chain, created)

	dup := h.Handle(ctx, request(t, protocol.RouteChainCreate, chain))
	assert.ErrorIs(t, dup.AsError(), apperrors.ErrExists)

	var read models.Chain
	requireOK(t, h.Handle(ctx, request(t, protocol.RouteChainRead, protocol.ChainRequest{ID: chainID})), protocol.RouteChainRead, &read)
	assert.Equal(t, chain, read)

	denied := h.Handle(ctx, request(t, protocol.RouteChainDelete, protocol.ChainRequest{ID: chainID, Key: "wrong"}))
	assert.ErrorIs(t, denied.AsError(), apperrors.ErrAuthFailed)
	_, err := s.GetChain(ctx, chainID)
	require.NoError(t, err, "a failed challenge must not delete")

	var ack protocol.Ack
	requireOK(t, h.Handle(ctx, request(t, protocol.RouteChainDelete, protocol.ChainRequest{ID: chainID, Key: verifier})), protocol.RouteChainDelete, &ack)
	assert.Equal(t, chainID, ack.ID)

	_, err = s.GetChain(ctx, chainID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHandle_ChainCreate_Invalid(t *testing.T) {
	h, s := newTestHandler(t)

	bad := chain
	bad.Name = "no spaces allowed"
	reply := h.Handle(context.Background(), request(t, protocol.RouteChainCreate, bad))

	err := reply.AsError()
	assert.Equal(t, apperrors.CodeBadRequest, apperrors.CodeOf(err))
	chains, _ := s.GetAllChains(context.Background())
	assert.Empty(t, chains)
}

func TestHandle_LinkLifecycle(t *testing.T) {
	h, s := newTestHandler(t)
	ctx := context.Background()
	require.NoError(t, s.CreateChain(ctx, chain))

	denied := h.Handle(ctx, request(t, protocol.RouteLinkCreate, protocol.LinkMutation{Link: link, Key: "nope"}))
	assert.ErrorIs(t, denied.AsError(), apperrors.ErrAuthFailed)

	requireOK(t, h.Handle(ctx, request(t, protocol.RouteLinkCreate, protocol.LinkMutation{Link: link, Key: verifier})), protocol.RouteLinkCreate, nil)

	var read models.ChainLink
	requireOK(t, h.Handle(ctx, request(t, protocol.RouteLinkRead, protocol.LinkRequest{ID: linkID, ChainID: chainID})), protocol.RouteLinkRead, &read)
	assert.Equal(t, link, read)

	upd := link
	upd.Description = "changed"
	requireOK(t, h.Handle(ctx, request(t, protocol.RouteLinkUpdate, protocol.LinkMutation{Link: upd, Key: verifier})), protocol.RouteLinkUpdate, nil)
	got, err := s.GetLink(ctx, linkID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Description)

	requireOK(t, h.Handle(ctx, request(t, protocol.RouteLinkDelete, protocol.LinkRequest{ID: linkID, ChainID: chainID, Key: verifier})), protocol.RouteLinkDelete, nil)
	_, err = s.GetLink(ctx, linkID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHandle_LinkRead_WrongChain(t *testing.T) {
	h, s := newTestHandler(t)
	seed(t, s)

	other := "0190a8f2-0000-7000-8000-0000000000ff"
	reply := h.Handle(context.Background(), request(t, protocol.RouteLinkRead, protocol.LinkRequest{ID: linkID, ChainID: other}))
	assert.ErrorIs(t, reply.AsError(), apperrors.ErrNotFound)
}

func TestHandle_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	h := NewHandler(storage, validators.NewChainValidator(), logger.Nop())

	storage.EXPECT().GetAllChains(gomock.Any()).
		Return(nil, apperrors.Storage(apperrors.CodeQuery, "select chains", errors.New("disk full")))

	reply := h.Handle(context.Background(), protocol.Envelope{Route: protocol.RouteChainSync})
	err := reply.AsError()
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
	assert.Equal(t, apperrors.CodeQuery, apperrors.CodeOf(err))
}
