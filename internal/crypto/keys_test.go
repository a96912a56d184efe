// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

func TestDeriveChainKeys_Deterministic(t *testing.T) {
	kc := NewKeyChain()
	salt, _ := kc.GenerateSalt()

	k1, err := DeriveChainKeys(kc, "passphrase", salt)
	if err != nil {
		t.Fatalf("DeriveChainKeys error: %v", err)
	}
	k2, err := DeriveChainKeys(kc, "passphrase", salt)
	if err != nil {
		t.Fatalf("DeriveChainKeys error: %v", err)
	}

	if k1 != k2 {
		t.Fatalf("expected identical keys for identical inputs")
	}
	if k1.Secret == k1.Private {
		t.Fatalf("secret and private keys must differ")
	}
}

func TestUnlock(t *testing.T) {
	kc := NewKeyChain()
	salt, _ := kc.GenerateSalt()
	keys, err := DeriveChainKeys(kc, "right", salt)
	if err != nil {
		t.Fatalf("DeriveChainKeys error: %v", err)
	}

	got, err := Unlock(kc, "right", salt, keys.Private)
	if err != nil {
		t.Fatalf("Unlock error: %v", err)
	}
	if got.Secret != keys.Secret {
		t.Fatalf("Unlock returned a different secret key")
	}

	if _, err = Unlock(kc, "wrong", salt, keys.Private); !errors.Is(err, apperrors.ErrAuthFailed) {
		t.Fatalf("expected auth failure, got %v", err)
	}
}

func TestVerifyPrivateKey(t *testing.T) {
	if !VerifyPrivateKey("abc", "abc") {
		t.Fatalf("equal values must verify")
	}
	if VerifyPrivateKey("abc", "abd") {
		t.Fatalf("different values must not verify")
	}
	if VerifyPrivateKey("", "") {
		t.Fatalf("empty values must not verify")
	}
}

func TestSealOpenPassword(t *testing.T) {
	kc := NewKeyChain()
	salt, _ := kc.GenerateSalt()
	secret, err := DeriveSecretKey(kc, "passphrase", salt)
	if err != nil {
		t.Fatalf("DeriveSecretKey error: %v", err)
	}

	ct1, iv1, err := SealPassword(kc, "hunter2", secret)
	if err != nil {
		t.Fatalf("SealPassword error: %v", err)
	}
	ct2, iv2, err := SealPassword(kc, "hunter2", secret)
	if err != nil {
		t.Fatalf("SealPassword error: %v", err)
	}
	if iv1 == iv2 || ct1 == ct2 {
		t.Fatalf("each seal must use a fresh iv")
	}

	plain, err := OpenPassword(kc, ct1, secret, iv1)
	if err != nil {
		t.Fatalf("OpenPassword error: %v", err)
	}
	if plain != "hunter2" {
		t.Fatalf("OpenPassword = %q, want %q", plain, "hunter2")
	}

	if _, err = OpenPassword(kc, ct1, secret, iv2); !errors.Is(err, apperrors.ErrAuthFailed) {
		t.Fatalf("expected auth failure with mismatched iv, got %v", err)
	}
}
