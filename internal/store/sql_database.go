// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/migrations"
)

// DB wraps a *sql.DB with the dialect-specific pieces the repositories need.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver, db.logger)
}

// storageError converts a driver error into an apperrors Storage error,
// keeping both the sentinel and the driver error in the chain.
func (db *DB) storageError(sentinel error, msg string, err error) error {
	code := apperrors.CodeQuery
	if db.errorClassificator != nil {
		code = db.errorClassificator.Classify(err)
	}
	return apperrors.Storage(code, msg, fmt.Errorf("%w: %w", sentinel, err))
}

// inTx runs fn inside a transaction, rolling back on error.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.storageError(ErrBeginningTransaction, "begin transaction", err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return db.storageError(ErrCommittingTransaction, "commit transaction", err)
	}
	return nil
}
