// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// Low-level database operation errors. They are wrapped inside the
// apperrors Storage error returned to callers.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a commit fails. The
	// transaction is rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

func chainNotFound(id string) error {
	return apperrors.Storage(apperrors.CodeNotFound, fmt.Sprintf("chain %s", id), nil)
}

func linkNotFound(id string) error {
	return apperrors.Storage(apperrors.CodeNotFound, fmt.Sprintf("link %s", id), nil)
}

func chainExists(id string) error {
	return apperrors.Storage(apperrors.CodeAlreadyExists, fmt.Sprintf("chain %s", id), nil)
}

func linkExists(id string) error {
	return apperrors.Storage(apperrors.CodeAlreadyExists, fmt.Sprintf("link %s", id), nil)
}

func storageQueryError(msg string, err error) error {
	return apperrors.Storage(apperrors.CodeQuery, msg, err)
}
