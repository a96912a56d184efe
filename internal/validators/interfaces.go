// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the entity rules of chains and links before
// anything reaches storage or the network.
//
// A Validator accepts a value and an optional list of field names. When no
// fields are given every rule of the value's type is checked; otherwise only
// the named fields are.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
