// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify maps constraint violations: primary key and unique → already_exists,
// foreign key → not_found.
func (c *SQLiteErrorClassifier) Classify(err error) apperrors.Code {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return apperrors.CodeQuery
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return apperrors.CodeAlreadyExists
	case sqlite3.ErrConstraintForeignKey:
		return apperrors.CodeNotFound
	default:
		return apperrors.CodeQuery
	}
}
