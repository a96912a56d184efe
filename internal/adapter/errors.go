// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrEmptyAddress is returned when no server address was supplied.
	ErrEmptyAddress = errors.New("empty server address")

	// ErrUnexpectedRoute is returned when the reply route matches neither
	// the request nor Error.
	ErrUnexpectedRoute = errors.New("unexpected reply route")

	// ErrStatusEndpoint is returned for a non-2xx diagnostics response.
	ErrStatusEndpoint = errors.New("diagnostics endpoint error")
)
