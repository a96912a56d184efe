// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, "pgx", sq.Question, NewPostgresErrorClassifier(), logger.Nop()), mock
}

var testChain = models.Chain{
	ID:   "0190a8f2-0000-7000-8000-000000000001",
	Name: "work",
	Key:  "a2V5",
	Salt: "c2FsdA==",
}

func TestChainRepository_CreateChain(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chains (id,name,chain_key,salt) VALUES (?,?,?,?)")).
		WithArgs(testChain.ID, testChain.Name, testChain.Key, testChain.Salt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateChain(context.Background(), testChain))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainRepository_CreateChain_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chains")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.CreateChain(context.Background(), testChain)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExists)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestChainRepository_GetAllChains(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	rows := sqlmock.NewRows(chainColumns).
		AddRow("a", "one", "k1", "s1").
		AddRow("b", "two", "k2", "s2")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, chain_key, salt FROM chains ORDER BY id")).
		WillReturnRows(rows)

	chains, err := repo.GetAllChains(context.Background())
	require.NoError(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, models.Chain{ID: "a", Name: "one", Key: "k1", Salt: "s1"}, chains[0])
	assert.Equal(t, "b", chains[1].ID)
}

func TestChainRepository_GetAllChains_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(chainColumns))

	chains, err := repo.GetAllChains(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, chains)
	assert.Empty(t, chains)
}

func TestChainRepository_GetChain(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, chain_key, salt FROM chains WHERE id = ?")).
		WithArgs(testChain.ID).
		WillReturnRows(sqlmock.NewRows(chainColumns).AddRow(testChain.ID, testChain.Name, testChain.Key, testChain.Salt))

	got, err := repo.GetChain(context.Background(), testChain.ID)
	require.NoError(t, err)
	assert.Equal(t, testChain, got)
}

func TestChainRepository_GetChain_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetChain(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChainRepository_DeleteChain(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM links WHERE chain_id = ?")).
		WithArgs(testChain.ID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chains WHERE id = ?")).
		WithArgs(testChain.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteChain(context.Background(), testChain.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainRepository_DeleteChain_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM links").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM chains").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteChain(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainRepository_DeleteChain_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("conn reset"))

	err := repo.DeleteChain(context.Background(), testChain.ID)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}
