// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// EncodeBase64 returns the standard base64 encoding of b.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// EncodeBase64String returns the standard base64 encoding of s.
func EncodeBase64String(s string) string {
	return EncodeBase64([]byte(s))
}

// DecodeBase64 decodes a standard base64 string. Malformed input yields a
// Crypto/malformed_input error.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, apperrors.Crypto(apperrors.CodeMalformedInput, "invalid base64", err)
	}
	return b, nil
}
