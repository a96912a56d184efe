// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// ChainSync: request carries no data.

// ChainSyncResponse answers ChainSync with every chain and its links.
type ChainSyncResponse struct {
	Chains []models.ChainBundle `json:"chains"`
}

// LinkSyncRequest asks for the links of one chain (ChainLinkSync).
type LinkSyncRequest struct {
	ChainID string `json:"chainId"`
}

// LinkSyncResponse answers ChainLinkSync.
type LinkSyncResponse struct {
	Links []models.ChainLink `json:"links"`
}

// ChainRequest addresses a chain by id (ChainRead, ChainDelete). Key is
// the verifier challenge and is required for ChainDelete only.
type ChainRequest struct {
	ID  string `json:"id"`
	Key string `json:"key,omitempty"`
}

// LinkRequest addresses a link (LinkRead, LinkDelete). Key is required
// for LinkDelete only.
type LinkRequest struct {
	ID      string `json:"id"`
	ChainID string `json:"chainId"`
	Key     string `json:"key,omitempty"`
}

// LinkMutation carries a full link and the owning chain's verifier
// (LinkCreate, LinkUpdate).
type LinkMutation struct {
	Link models.ChainLink `json:"link"`
	Key  string           `json:"key"`
}

// Ack confirms a deletion.
type Ack struct {
	ID string `json:"id"`
}

// ErrorPayload is the data of an Error reply.
type ErrorPayload struct {
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorPayload flattens err into its wire form. Errors outside the
// taxonomy are reported with kind "unknown".
func NewErrorPayload(err error) ErrorPayload {
	return ErrorPayload{
		Kind:    apperrors.KindOf(err).String(),
		Code:    string(apperrors.CodeOf(err)),
		Message: err.Error(),
	}
}

// Err rebuilds an *apperrors.Error of the same kind and code.
func (p ErrorPayload) Err() *apperrors.Error {
	return apperrors.New(apperrors.ParseKind(p.Kind), apperrors.Code(p.Code), p.Message)
}
