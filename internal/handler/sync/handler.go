// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// Handler serves sync requests against a [store.Storage].
type Handler struct {
	storage   store.Storage
	validator validators.Validator
	logger    *logger.Logger
}

// NewHandler constructs a [Handler].
func NewHandler(storage store.Storage, validator validators.Validator, log *logger.Logger) *Handler {
	log.Info().Msg("sync handler created")
	return &Handler{
		storage:   storage,
		validator: validator,
		logger:    log,
	}
}

// Handle answers one request. The reply carries the request route on
// success and RouteError otherwise.
func (h *Handler) Handle(ctx context.Context, req protocol.Envelope) protocol.Envelope {
	log := logger.FromContext(ctx)

	payload, err := h.dispatch(ctx, req)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*Handler.Handle").
			Str("route", req.Route.String()).
			Str("kind", apperrors.KindOf(err).String()).
			Msg("request failed")
		return protocol.ErrorEnvelope(err)
	}

	reply, err := protocol.NewEnvelope(req.Route, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Handle").Str("route", req.Route.String()).Msg("error encoding reply")
		return protocol.ErrorEnvelope(err)
	}

	log.Debug().Str("func", "*Handler.Handle").Str("route", req.Route.String()).Msg("request served")
	return reply
}

func (h *Handler) dispatch(ctx context.Context, req protocol.Envelope) (any, error) {
	switch req.Route {
	case protocol.RouteChainSync:
		return h.chainSync(ctx)
	case protocol.RouteChainLinkSync:
		return h.chainLinkSync(ctx, req)
	case protocol.RouteChainCreate:
		return h.chainCreate(ctx, req)
	case protocol.RouteChainRead:
		return h.chainRead(ctx, req)
	case protocol.RouteChainDelete:
		return h.chainDelete(ctx, req)
	case protocol.RouteLinkCreate:
		return h.linkCreate(ctx, req)
	case protocol.RouteLinkRead:
		return h.linkRead(ctx, req)
	case protocol.RouteLinkUpdate:
		return h.linkUpdate(ctx, req)
	case protocol.RouteLinkDelete:
		return h.linkDelete(ctx, req)
	case protocol.RouteError:
		return nil, apperrors.Protocol(apperrors.CodeBadRequest, "Error is a reply-only route", nil)
	default:
		return nil, apperrors.Protocol(apperrors.CodeUnknownRoute, fmt.Sprintf("route %q", req.Route), nil)
	}
}

// chainSync returns every chain with its links. Bundles carry the stored
// verifier, which a pulling peer needs to create the chain locally, so any
// peer able to pull a chain can also pass its key challenge.
func (h *Handler) chainSync(ctx context.Context) (protocol.ChainSyncResponse, error) {
	chains, err := h.storage.GetAllChains(ctx)
	if err != nil {
		return protocol.ChainSyncResponse{}, err
	}

	bundles := make([]models.ChainBundle, 0, len(chains))
	for _, chain := range chains {
		links, err := h.storage.GetLinksByChain(ctx, chain.ID)
		if err != nil {
			return protocol.ChainSyncResponse{}, err
		}
		bundles = append(bundles, models.ChainBundle{Chain: chain, Links: links})
	}

	return protocol.ChainSyncResponse{Chains: bundles}, nil
}

func (h *Handler) chainLinkSync(ctx context.Context, req protocol.Envelope) (protocol.LinkSyncResponse, error) {
	var in protocol.LinkSyncRequest
	if err := req.Bind(&in); err != nil {
		return protocol.LinkSyncResponse{}, err
	}
	if err := h.validate(ctx, models.ChainLink{ChainID: in.ChainID}, validators.FieldChainID); err != nil {
		return protocol.LinkSyncResponse{}, err
	}

	if _, err := h.storage.GetChain(ctx, in.ChainID); err != nil {
		return protocol.LinkSyncResponse{}, err
	}
	links, err := h.storage.GetLinksByChain(ctx, in.ChainID)
	if err != nil {
		return protocol.LinkSyncResponse{}, err
	}

	return protocol.LinkSyncResponse{Links: links}, nil
}

func (h *Handler) chainCreate(ctx context.Context, req protocol.Envelope) (models.Chain, error) {
	var chain models.Chain
	if err := req.Bind(&chain); err != nil {
		return models.Chain{}, err
	}
	if err := h.validate(ctx, chain); err != nil {
		return models.Chain{}, err
	}

	if err := h.storage.CreateChain(ctx, chain); err != nil {
		return models.Chain{}, err
	}
	return chain, nil
}

func (h *Handler) chainRead(ctx context.Context, req protocol.Envelope) (models.Chain, error) {
	var in protocol.ChainRequest
	if err := req.Bind(&in); err != nil {
		return models.Chain{}, err
	}
	if err := h.validate(ctx, models.Chain{ID: in.ID}, validators.FieldID); err != nil {
		return models.Chain{}, err
	}

	return h.storage.GetChain(ctx, in.ID)
}

func (h *Handler) chainDelete(ctx context.Context, req protocol.Envelope) (protocol.Ack, error) {
	var in protocol.ChainRequest
	if err := req.Bind(&in); err != nil {
		return protocol.Ack{}, err
	}
	if err := h.validate(ctx, models.Chain{ID: in.ID}, validators.FieldID); err != nil {
		return protocol.Ack{}, err
	}

	if _, err := h.authorize(ctx, in.ID, in.Key); err != nil {
		return protocol.Ack{}, err
	}
	if err := h.storage.DeleteChain(ctx, in.ID); err != nil {
		return protocol.Ack{}, err
	}
	return protocol.Ack{ID: in.ID}, nil
}

func (h *Handler) linkCreate(ctx context.Context, req protocol.Envelope) (models.ChainLink, error) {
	var in protocol.LinkMutation
	if err := req.Bind(&in); err != nil {
		return models.ChainLink{}, err
	}
	if err := h.validate(ctx, in.Link); err != nil {
		return models.ChainLink{}, err
	}

	if _, err := h.authorize(ctx, in.Link.ChainID, in.Key); err != nil {
		return models.ChainLink{}, err
	}
	if err := h.storage.CreateLink(ctx, in.Link); err != nil {
		return models.ChainLink{}, err
	}
	return in.Link, nil
}

func (h *Handler) linkRead(ctx context.Context, req protocol.Envelope) (models.ChainLink, error) {
	var in protocol.LinkRequest
	if err := req.Bind(&in); err != nil {
		return models.ChainLink{}, err
	}
	if err := h.validate(ctx, models.ChainLink{ID: in.ID}, validators.FieldID); err != nil {
		return models.ChainLink{}, err
	}

	return h.ownedLink(ctx, in.ID, in.ChainID)
}

func (h *Handler) linkUpdate(ctx context.Context, req protocol.Envelope) (models.ChainLink, error) {
	var in protocol.LinkMutation
	if err := req.Bind(&in); err != nil {
		return models.ChainLink{}, err
	}
	if err := h.validate(ctx, in.Link); err != nil {
		return models.ChainLink{}, err
	}

	if _, err := h.ownedLink(ctx, in.Link.ID, in.Link.ChainID); err != nil {
		return models.ChainLink{}, err
	}
	if _, err := h.authorize(ctx, in.Link.ChainID, in.Key); err != nil {
		return models.ChainLink{}, err
	}
	if err := h.storage.UpdateLink(ctx, in.Link); err != nil {
		return models.ChainLink{}, err
	}
	return in.Link, nil
}

func (h *Handler) linkDelete(ctx context.Context, req protocol.Envelope) (protocol.Ack, error) {
	var in protocol.LinkRequest
	if err := req.Bind(&in); err != nil {
		return protocol.Ack{}, err
	}
	if err := h.validate(ctx, models.ChainLink{ID: in.ID}, validators.FieldID); err != nil {
		return protocol.Ack{}, err
	}

	link, err := h.ownedLink(ctx, in.ID, in.ChainID)
	if err != nil {
		return protocol.Ack{}, err
	}
	if _, err = h.authorize(ctx, link.ChainID, in.Key); err != nil {
		return protocol.Ack{}, err
	}
	if err = h.storage.DeleteLink(ctx, in.ID); err != nil {
		return protocol.Ack{}, err
	}
	return protocol.Ack{ID: in.ID}, nil
}

// authorize loads the chain and checks key against its stored verifier.
func (h *Handler) authorize(ctx context.Context, chainID, key string) (models.Chain, error) {
	chain, err := h.storage.GetChain(ctx, chainID)
	if err != nil {
		return models.Chain{}, err
	}
	if !crypto.VerifyPrivateKey(chain.Key, key) {
		return models.Chain{}, apperrors.Crypto(apperrors.CodeAuthFailed, fmt.Sprintf("key challenge failed for chain %s", chainID), nil)
	}
	return chain, nil
}

// ownedLink loads a link and, when chainID is set, checks that it belongs
// to that chain. A link of another chain is reported as not found.
func (h *Handler) ownedLink(ctx context.Context, id, chainID string) (models.ChainLink, error) {
	link, err := h.storage.GetLink(ctx, id)
	if err != nil {
		return models.ChainLink{}, err
	}
	if chainID != "" && link.ChainID != chainID {
		return models.ChainLink{}, apperrors.Storage(apperrors.CodeNotFound, fmt.Sprintf("link %s in chain %s", id, chainID), nil)
	}
	return link, nil
}

func (h *Handler) validate(ctx context.Context, obj any, fields ...string) error {
	if err := h.validator.Validate(ctx, obj, fields...); err != nil {
		return apperrors.Protocol(apperrors.CodeBadRequest, "validation failed", err)
	}
	return nil
}
