// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Chain is a named, passphrase-protected collection of links.
type Chain struct {
	// ID is a UUIDv7 generated on the client that created the chain.
	// It never changes and is identical on every peer.
	ID string `json:"id"`

	// Name is a short human-readable label: word segments joined by
	// single dots, at most 16 characters.
	Name string `json:"name"`

	// Key is the chain verifier (the private key derived from the
	// passphrase and the secret key). The passphrase itself is never
	// stored or transmitted.
	Key string `json:"key"`

	// Salt is the base64 encoded 16-byte salt fixed at creation.
	Salt string `json:"salt"`
}

// TableName returns the name of the database table
// associated with the Chain model.
func (c Chain) TableName() string {
	return "chains"
}

// ChainBundle is the unit of a whole-database sync: a chain together
// with every link it owns.
type ChainBundle struct {
	Chain Chain       `json:"chain"`
	Links []ChainLink `json:"links"`
}
