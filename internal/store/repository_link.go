// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// linkRepository is the SQL implementation of [LinkRepository].
type linkRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLinkRepository constructs a [LinkRepository] over db.
func NewLinkRepository(db *DB, log *logger.Logger) LinkRepository {
	log.Debug().Msg("creating link repository")
	return &linkRepository{db: db, logger: log}
}

func (r *linkRepository) CreateLink(ctx context.Context, link models.ChainLink) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertLinkQuery(link)
	if err != nil {
		return apperrors.Storage(apperrors.CodeQuery, "build insert link", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*linkRepository.CreateLink").Str("id", link.ID).Msg("error inserting link")
		return r.db.storageError(ErrExecutingStatement, fmt.Sprintf("insert link %s", link.ID), err)
	}

	return nil
}

func (r *linkRepository) GetLinksByChain(ctx context.Context, chainID string) ([]models.ChainLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectLinksByChainQuery(chainID)
	if err != nil {
		return nil, apperrors.Storage(apperrors.CodeQuery, "build select links", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.GetLinksByChain").Str("chain_id", chainID).Msg("error selecting links")
		return nil, r.db.storageError(ErrExecutingQuery, fmt.Sprintf("select links of chain %s", chainID), err)
	}
	defer rows.Close()

	links := make([]models.ChainLink, 0)
	for rows.Next() {
		var l models.ChainLink
		if err = rows.Scan(&l.ID, &l.Name, &l.Description, &l.Password, &l.IV, &l.ChainID); err != nil {
			return nil, apperrors.Storage(apperrors.CodeQuery, "scan link", fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
		links = append(links, l)
	}
	if err = rows.Err(); err != nil {
		return nil, apperrors.Storage(apperrors.CodeQuery, "iterate links", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return links, nil
}

func (r *linkRepository) GetLink(ctx context.Context, id string) (models.ChainLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectLinkQuery(id)
	if err != nil {
		return models.ChainLink{}, apperrors.Storage(apperrors.CodeQuery, "build select link", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var l models.ChainLink
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.Name, &l.Description, &l.Password, &l.IV, &l.ChainID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChainLink{}, linkNotFound(id)
	}
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.GetLink").Str("id", id).Msg("error selecting link")
		return models.ChainLink{}, r.db.storageError(ErrScanningRow, fmt.Sprintf("select link %s", id), err)
	}

	return l, nil
}

func (r *linkRepository) UpdateLink(ctx context.Context, link models.ChainLink) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateLinkQuery(link)
	if err != nil {
		return apperrors.Storage(apperrors.CodeQuery, "build update link", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.UpdateLink").Str("id", link.ID).Msg("error updating link")
		return r.db.storageError(ErrExecutingStatement, fmt.Sprintf("update link %s", link.ID), err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return linkNotFound(link.ID)
	}

	return nil
}

func (r *linkRepository) DeleteLink(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteLinkQuery(id)
	if err != nil {
		return apperrors.Storage(apperrors.CodeQuery, "build delete link", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.DeleteLink").Str("id", id).Msg("error deleting link")
		return r.db.storageError(ErrExecutingStatement, fmt.Sprintf("delete link %s", id), err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return linkNotFound(id)
	}

	return nil
}
