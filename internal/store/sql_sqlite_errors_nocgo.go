// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

import (
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// SQLiteErrorClassifier falls back to message matching when the sqlite3
// driver is built without cgo and its error type is unavailable.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) apperrors.Code {
	if err == nil {
		return apperrors.CodeQuery
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return apperrors.CodeAlreadyExists
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return apperrors.CodeNotFound
	default:
		return apperrors.CodeQuery
	}
}
