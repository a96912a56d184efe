// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldKey         = "key"
	FieldSalt        = "salt"
	FieldDescription = "description"
	FieldPassword    = "password"
	FieldIV          = "iv"
	FieldChainID     = "chain_id"
	FieldLinks       = "links"
)

const (
	maxNameLen        = 16
	maxDescriptionLen = 24
	maxSecretLen      = 32
)

var namePattern = regexp.MustCompile(`^\w+(\.\w+)*$`)

// Passphrase is a plaintext chain passphrase supplied by the user.
type Passphrase string

// PlainPassword is a plaintext link password before encryption.
type PlainPassword string

// ChainValidator implements [Validator] for chains, links, bundles and the
// plaintext secrets entered by the user.
type ChainValidator struct{}

// NewChainValidator returns the chain entity validator.
func NewChainValidator() Validator {
	return &ChainValidator{}
}

// Validate dispatches on the dynamic type of obj.
func (v *ChainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Chain:
		return v.validateChain(value, fields...)
	case *models.Chain:
		return v.validateChain(*value, fields...)

	case models.ChainLink:
		return v.validateLink(value, fields...)
	case *models.ChainLink:
		return v.validateLink(*value, fields...)

	case models.ChainBundle:
		return v.validateBundle(value, fields...)
	case *models.ChainBundle:
		return v.validateBundle(*value, fields...)

	case Passphrase:
		if !validSecret(string(value)) {
			return ErrInvalidPassphrase
		}
		return nil
	case PlainPassword:
		if !validSecret(string(value)) {
			return ErrInvalidPassword
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *ChainValidator) validateChain(chain models.Chain, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldKey, FieldSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validUUID(chain.ID) {
				return ErrInvalidID
			}
		case FieldName:
			if !ValidName(chain.Name) {
				return ErrInvalidName
			}
		case FieldKey:
			if !validB64Len(chain.Key, crypto.KeySize) {
				return ErrInvalidKey
			}
		case FieldSalt:
			if !validB64Len(chain.Salt, crypto.SaltSize) {
				return ErrInvalidSalt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChainValidator) validateLink(link models.ChainLink, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldDescription, FieldPassword, FieldIV, FieldChainID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validUUID(link.ID) {
				return ErrInvalidID
			}
		case FieldName:
			if !ValidName(link.Name) {
				return ErrInvalidName
			}
		case FieldDescription:
			if utf8.RuneCountInString(link.Description) > maxDescriptionLen {
				return ErrInvalidDescription
			}
		case FieldPassword:
			if link.Password == "" {
				return ErrInvalidCiphertext
			}
			if _, err := crypto.DecodeBase64(link.Password); err != nil {
				return ErrInvalidCiphertext
			}
		case FieldIV:
			if !validB64Len(link.IV, crypto.IVSize) {
				return ErrInvalidIV
			}
		case FieldChainID:
			if !validUUID(link.ChainID) {
				return ErrInvalidChainID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChainValidator) validateBundle(bundle models.ChainBundle, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLinks}
	}

	if err := v.validateChain(bundle.Chain); err != nil {
		return fmt.Errorf("chain %s: %w", bundle.Chain.ID, err)
	}

	for _, f := range fields {
		switch f {
		case FieldLinks:
			for i, link := range bundle.Links {
				if link.ChainID != bundle.Chain.ID {
					return fmt.Errorf("link at index %d: %w", i, ErrLinkChainMismatch)
				}
				if err := v.validateLink(link); err != nil {
					return fmt.Errorf("link at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidName reports whether s is a valid chain or link name.
func ValidName(s string) bool {
	return utf8.RuneCountInString(s) <= maxNameLen && namePattern.MatchString(s)
}

func validSecret(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= maxSecretLen
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func validB64Len(s string, n int) bool {
	b, err := crypto.DecodeBase64(s)
	return err == nil && len(b) == n
}
