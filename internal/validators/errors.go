// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid id: must be a UUID")
	ErrInvalidName        = errors.New("invalid name: 1-16 word characters, segments joined by single dots")
	ErrInvalidKey         = errors.New("invalid key: must be a base64 encoded 32-byte verifier")
	ErrInvalidSalt        = errors.New("invalid salt: must be base64 encoded 16 bytes")
	ErrInvalidDescription = errors.New("invalid description: at most 24 characters")
	ErrInvalidCiphertext  = errors.New("invalid password: must be non-empty base64 ciphertext")
	ErrInvalidIV          = errors.New("invalid iv: must be base64 encoded 12 bytes")
	ErrInvalidChainID     = errors.New("invalid chain id: must be a UUID")
	ErrInvalidPassphrase  = errors.New("invalid passphrase: 1-32 characters")
	ErrInvalidPassword    = errors.New("invalid password: 1-32 characters")
	ErrLinkChainMismatch  = errors.New("link does not belong to the bundled chain")
)
