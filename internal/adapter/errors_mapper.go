// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
)

// mapReply checks the reply route against the request route. An Error
// reply is converted to the error it carries.
func mapReply(req protocol.Route, reply protocol.Envelope) error {
	switch reply.Route {
	case req:
		return nil
	case protocol.RouteError:
		return reply.AsError()
	default:
		return apperrors.Protocol(apperrors.CodeMalformedFrame,
			fmt.Sprintf("reply to %s", req), fmt.Errorf("%w: %s", ErrUnexpectedRoute, reply.Route))
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(resp.String())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrStatusEndpoint, resp.StatusCode(), body)
}
