// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

const (
	// SaltSize is the length of a chain salt in bytes (128 bits).
	SaltSize = 16
	// IVSize is the length of a GCM nonce in bytes (96 bits).
	IVSize = 12
	// KeySize is the length of a derived key in bytes (256 bits).
	KeySize = 32
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// The parameters are not configurable: peers must agree on them.
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  KeySize,
		random:       rand.Reader,
	}
}

// Hash implements [KeyChain].
func (k *keyChain) Hash(password []byte, salt string) (string, error) {
	if salt == "" {
		return "", apperrors.Crypto(apperrors.CodeMalformedInput, "empty salt", nil)
	}

	digest := argon2.IDKey(
		password,
		[]byte(salt),
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)

	return EncodeBase64(digest), nil
}

// Encrypt implements [KeyChain].
func (k *keyChain) Encrypt(plaintextB64, key, iv string) (string, error) {
	plaintext, err := DecodeBase64(plaintextB64)
	if err != nil {
		return "", fmt.Errorf("decode plaintext: %w", err)
	}

	gcm, nonce, err := k.prepare(key, iv)
	if err != nil {
		return "", err
	}

	return EncodeBase64(gcm.Seal(nil, nonce, plaintext, nil)), nil
}

// Decrypt implements [KeyChain].
func (k *keyChain) Decrypt(ciphertextB64, key, iv string) (string, error) {
	ciphertext, err := DecodeBase64(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	gcm, nonce, err := k.prepare(key, iv)
	if err != nil {
		return "", err
	}

	if len(ciphertext) < gcm.Overhead() {
		return "", apperrors.Crypto(apperrors.CodeMalformedInput, "ciphertext too short", nil)
	}

	// An error here almost always means a wrong key or a tampered value.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", apperrors.Crypto(apperrors.CodeAuthFailed, "decryption failed", err)
	}

	return EncodeBase64(plaintext), nil
}

// GenerateSalt implements [KeyChain].
func (k *keyChain) GenerateSalt() (string, error) {
	return k.randomB64(SaltSize)
}

// GenerateIV implements [KeyChain].
func (k *keyChain) GenerateIV() (string, error) {
	return k.randomB64(IVSize)
}

func (k *keyChain) randomB64(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(k.random, buf); err != nil {
		return "", apperrors.Crypto(apperrors.CodeUnsupportedParameters, "read random bytes", err)
	}
	return EncodeBase64(buf), nil
}

// prepare decodes key and iv and builds the AES-GCM AEAD.
func (k *keyChain) prepare(key, iv string) (cipher.AEAD, []byte, error) {
	rawKey, err := DecodeBase64(key)
	if err != nil {
		return nil, nil, fmt.Errorf("decode key: %w", err)
	}
	if len(rawKey) != KeySize {
		return nil, nil, apperrors.Crypto(apperrors.CodeUnsupportedParameters,
			fmt.Sprintf("key must be %d bytes, got %d", KeySize, len(rawKey)), nil)
	}

	nonce, err := DecodeBase64(iv)
	if err != nil {
		return nil, nil, fmt.Errorf("decode iv: %w", err)
	}
	if len(nonce) != IVSize {
		return nil, nil, apperrors.Crypto(apperrors.CodeUnsupportedParameters,
			fmt.Sprintf("iv must be %d bytes, got %d", IVSize, len(nonce)), nil)
	}

	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, nil, apperrors.Crypto(apperrors.CodeUnsupportedParameters, "create cipher", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, apperrors.Crypto(apperrors.CodeUnsupportedParameters, "create gcm", err)
	}

	return gcm, nonce, nil
}
