// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChainLink is a single credential stored inside a [Chain].
type ChainLink struct {
	// ID is a UUIDv7 generated on the creating client.
	ID string `json:"id"`

	// Name follows the same rule as Chain.Name.
	Name string `json:"name"`

	// Description is an optional note of at most 24 characters.
	Description string `json:"description"`

	// Password is the base64 AES-GCM ciphertext of the plaintext password,
	// sealed under the chain secret key.
	Password string `json:"password"`

	// IV is the base64 12-byte nonce used for Password. A new one is
	// generated before every encryption.
	IV string `json:"iv"`

	// ChainID references the owning chain.
	ChainID string `json:"chainId"`
}

// TableName returns the name of the database table
// associated with the ChainLink model.
func (l ChainLink) TableName() string {
	return "links"
}

// SameSecret reports whether l and other carry the same encrypted
// password and description. The iv is not compared: it always travels
// together with the password.
func (l ChainLink) SameSecret(other ChainLink) bool {
	return l.Password == other.Password && l.Description == other.Description
}
