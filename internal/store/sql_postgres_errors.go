// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// ErrorClassificator maps a driver error to a Storage error code.
type ErrorClassificator interface {
	Classify(err error) apperrors.Code
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify inspects the SQLSTATE of a *pgconn.PgError:
//   - 23505 unique_violation      → already_exists
//   - 23503 foreign_key_violation → not_found (the referenced chain is gone)
//   - P0002 no_data_found         → not_found
//
// Everything else, including non-Postgres errors, is a generic query error.
func (c *PostgresErrorClassifier) Classify(err error) apperrors.Code {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.CodeQuery
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return apperrors.CodeAlreadyExists
	case pgerrcode.ForeignKeyViolation, pgerrcode.NoDataFound:
		return apperrors.CodeNotFound
	default:
		return apperrors.CodeQuery
	}
}
