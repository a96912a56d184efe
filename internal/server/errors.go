// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler      = errors.New("no request handler")
	errNoAdvertiser   = errors.New("no address feed")
	errListenerPanics = errors.New("connection handler panicked")
)
