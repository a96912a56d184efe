// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain is the single cryptographic capability used by the sync
// subsystem. It knows nothing about the network, storage or chains.
//
// Key scheme for a chain:
//
//	salt       = GenerateSalt()
//	secretKey  = Hash(base64(passphrase), salt)       (encrypts link passwords)
//	privateKey = Hash(base64(passphrase), secretKey)  (stored and compared remotely)
//
// All string values crossing this interface are standard base64.
type KeyChain interface {
	// Hash derives a 256-bit digest from password and salt with Argon2id.
	// The parameters are fixed for the whole system so that two peers
	// always derive the same value. Returns a Crypto/malformed_input error
	// when salt is empty.
	Hash(password []byte, salt string) (string, error)

	// Encrypt seals the base64 plaintext with AES-256-GCM under key and iv
	// and returns base64(ciphertext ‖ tag). Callers must pass a fresh iv
	// on every call.
	Encrypt(plaintextB64, key, iv string) (string, error)

	// Decrypt opens a value produced by Encrypt and returns the base64
	// plaintext. A failed tag check yields Crypto/auth_failed; malformed
	// base64 yields Crypto/malformed_input; wrong key or iv sizes yield
	// Crypto/unsupported_parameters.
	Decrypt(ciphertextB64, key, iv string) (string, error)

	// GenerateSalt returns 16 random bytes, base64 encoded.
	GenerateSalt() (string, error)

	// GenerateIV returns 12 random bytes, base64 encoded.
	GenerateIV() (string, error)
}
