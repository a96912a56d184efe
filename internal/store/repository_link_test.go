// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var testLink = models.ChainLink{
	ID:          "0190a8f2-0000-7000-8000-0000000000aa",
	Name:        "mail",
	Description: "inbox",
	Password:    "Y2lwaGVy",
	IV:          "aXY=",
	ChainID:     testChain.ID,
}

func TestLinkRepository_CreateLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO links (id,name,description,password,iv,chain_id) VALUES (?,?,?,?,?,?)")).
		WithArgs(testLink.ID, testLink.Name, testLink.Description, testLink.Password, testLink.IV, testLink.ChainID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateLink(context.Background(), testLink))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepository_CreateLink_MissingChain(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO links").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := repo.CreateLink(context.Background(), testLink)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLinkRepository_GetLinksByChain(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, password, iv, chain_id FROM links WHERE chain_id = ? ORDER BY id")).
		WithArgs(testChain.ID).
		WillReturnRows(sqlmock.NewRows(linkColumns).
			AddRow(testLink.ID, testLink.Name, testLink.Description, testLink.Password, testLink.IV, testLink.ChainID))

	links, err := repo.GetLinksByChain(context.Background(), testChain.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.ChainLink{testLink}, links)
}

func TestLinkRepository_GetLink_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLink(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLinkRepository_UpdateLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE links SET name = ?, description = ?, password = ?, iv = ? WHERE id = ?")).
		WithArgs(testLink.Name, testLink.Description, testLink.Password, testLink.IV, testLink.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLink(context.Background(), testLink))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepository_UpdateLink_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE links").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLink(context.Background(), testLink)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLinkRepository_DeleteLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLinkRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM links WHERE id = ?")).
		WithArgs(testLink.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteLink(context.Background(), testLink.ID))

	mock.ExpectExec("DELETE FROM links").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteLink(context.Background(), testLink.ID), apperrors.ErrNotFound)
}
