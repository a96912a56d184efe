// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// ChainKeys holds the two derivations of a chain passphrase.
type ChainKeys struct {
	// Secret encrypts link passwords. It never leaves the process.
	Secret string
	// Private is the verifier stored with the chain and sent as the key
	// challenge of mutating requests.
	Private string
}

// DeriveSecretKey derives the key that encrypts link passwords.
func DeriveSecretKey(kc KeyChain, passphrase, salt string) (string, error) {
	secret, err := kc.Hash([]byte(EncodeBase64String(passphrase)), salt)
	if err != nil {
		return "", fmt.Errorf("derive secret key: %w", err)
	}
	return secret, nil
}

// DerivePrivateKey derives the chain verifier from the secret key.
func DerivePrivateKey(kc KeyChain, passphrase, secretKey string) (string, error) {
	private, err := kc.Hash([]byte(EncodeBase64String(passphrase)), secretKey)
	if err != nil {
		return "", fmt.Errorf("derive private key: %w", err)
	}
	return private, nil
}

// DeriveChainKeys derives both chain keys from passphrase and salt.
func DeriveChainKeys(kc KeyChain, passphrase, salt string) (ChainKeys, error) {
	secret, err := DeriveSecretKey(kc, passphrase, salt)
	if err != nil {
		return ChainKeys{}, err
	}

	private, err := DerivePrivateKey(kc, passphrase, secret)
	if err != nil {
		return ChainKeys{}, err
	}

	return ChainKeys{Secret: secret, Private: private}, nil
}

// VerifyPrivateKey compares a claimed verifier against the stored one in
// constant time.
func VerifyPrivateKey(stored, claimed string) bool {
	if stored == "" || claimed == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(claimed)) == 1
}

// Unlock derives the chain keys from passphrase and checks them against the
// stored verifier. A mismatch yields Crypto/auth_failed.
func Unlock(kc KeyChain, passphrase, salt, storedPrivate string) (ChainKeys, error) {
	keys, err := DeriveChainKeys(kc, passphrase, salt)
	if err != nil {
		return ChainKeys{}, err
	}
	if !VerifyPrivateKey(storedPrivate, keys.Private) {
		return ChainKeys{}, apperrors.Crypto(apperrors.CodeAuthFailed, "wrong chain key", nil)
	}
	return keys, nil
}

// SealPassword encrypts a plaintext link password under secretKey with a
// freshly generated iv. Both values are returned base64 encoded.
func SealPassword(kc KeyChain, plaintext, secretKey string) (ciphertext, iv string, err error) {
	iv, err = kc.GenerateIV()
	if err != nil {
		return "", "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err = kc.Encrypt(EncodeBase64String(plaintext), secretKey, iv)
	if err != nil {
		return "", "", fmt.Errorf("encrypt password: %w", err)
	}

	return ciphertext, iv, nil
}

// OpenPassword reverses [SealPassword].
func OpenPassword(kc KeyChain, ciphertext, secretKey, iv string) (string, error) {
	plainB64, err := kc.Decrypt(ciphertext, secretKey, iv)
	if err != nil {
		return "", fmt.Errorf("decrypt password: %w", err)
	}

	plain, err := DecodeBase64(plainB64)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
