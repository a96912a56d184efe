// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// Envelope is one decoded frame.
type Envelope struct {
	Route Route           `json:"route"`
	Data  json.RawMessage `json:"data"`
}

var nullData = []byte("null")

// NewEnvelope marshals payload into an envelope for route. A nil payload
// produces "data": null.
func NewEnvelope(route Route, payload any) (Envelope, error) {
	if !route.Valid() {
		return Envelope{}, apperrors.Protocol(apperrors.CodeUnknownRoute, fmt.Sprintf("route %q", route), nil)
	}

	if payload == nil {
		return Envelope{Route: route}, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, apperrors.Protocol(apperrors.CodeMalformedFrame, "marshal payload", err)
	}
	return Envelope{Route: route, Data: data}, nil
}

// ErrorEnvelope builds an Error reply describing err.
func ErrorEnvelope(err error) Envelope {
	// ErrorPayload only holds strings, Marshal cannot fail.
	data, _ := json.Marshal(NewErrorPayload(err))
	return Envelope{Route: RouteError, Data: data}
}

// HasData reports whether the envelope carries a non-null payload.
func (e Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, nullData)
}

// Bind decodes the payload into v. A missing payload or one that does
// not fit v yields Protocol/bad_request.
func (e Envelope) Bind(v any) error {
	if !e.HasData() {
		return apperrors.Protocol(apperrors.CodeBadRequest, fmt.Sprintf("%s: missing data", e.Route), nil)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return apperrors.Protocol(apperrors.CodeBadRequest, fmt.Sprintf("%s: decode data", e.Route), err)
	}
	return nil
}

// AsError returns the error carried by an Error envelope, or nil for any
// other route.
func (e Envelope) AsError() error {
	if e.Route != RouteError {
		return nil
	}
	var p ErrorPayload
	if err := json.Unmarshal(e.Data, &p); err != nil {
		return apperrors.Protocol(apperrors.CodeMalformedFrame, "decode error payload", err)
	}
	return p.Err()
}

// Encode renders route and payload as a complete frame including the
// trailing newline.
func Encode(route Route, payload any) ([]byte, error) {
	env, err := NewEnvelope(route, payload)
	if err != nil {
		return nil, err
	}
	return env.encode()
}

func (e Envelope) encode() ([]byte, error) {
	if !e.Route.Valid() {
		return nil, apperrors.Protocol(apperrors.CodeUnknownRoute, fmt.Sprintf("route %q", e.Route), nil)
	}

	data := e.Data
	if len(data) == 0 {
		data = nullData
	}

	b, err := json.Marshal(Envelope{Route: e.Route, Data: data})
	if err != nil {
		return nil, apperrors.Protocol(apperrors.CodeMalformedFrame, "marshal envelope", err)
	}
	return append(b, '\n'), nil
}

// Decode parses a single frame. The trailing newline is optional.
func Decode(frame []byte) (Envelope, error) {
	frame = bytes.TrimRight(frame, "\r\n")

	var raw struct {
		Route *string         `json:"route"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(frame, &raw); err != nil {
		return Envelope{}, apperrors.Protocol(apperrors.CodeMalformedFrame, "invalid json", err)
	}
	if raw.Route == nil {
		return Envelope{}, apperrors.Protocol(apperrors.CodeMalformedFrame, "missing route", nil)
	}

	route := Route(*raw.Route)
	if !route.Valid() {
		return Envelope{}, apperrors.Protocol(apperrors.CodeUnknownRoute, fmt.Sprintf("route %q", route), nil)
	}

	return Envelope{Route: route, Data: raw.Data}, nil
}
