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

// chainRepository is the SQL implementation of [ChainRepository].
type chainRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewChainRepository constructs a [ChainRepository] over db.
func NewChainRepository(db *DB, log *logger.Logger) ChainRepository {
	log.Debug().Msg("creating chain repository")
	return &chainRepository{db: db, logger: log}
}

func (r *chainRepository) CreateChain(ctx context.Context, chain models.Chain) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertChainQuery(chain)
	if err != nil {
		log.Err(err).Str("func", "*chainRepository.CreateChain").Msg("error building query")
		return apperrors.Storage(apperrors.CodeQuery, "build insert chain", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*chainRepository.CreateChain").Str("id", chain.ID).Msg("error inserting chain")
		return r.db.storageError(ErrExecutingStatement, fmt.Sprintf("insert chain %s", chain.ID), err)
	}

	return nil
}

func (r *chainRepository) GetAllChains(ctx context.Context) ([]models.Chain, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectChainsQuery()
	if err != nil {
		return nil, apperrors.Storage(apperrors.CodeQuery, "build select chains", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*chainRepository.GetAllChains").Msg("error selecting chains")
		return nil, r.db.storageError(ErrExecutingQuery, "select chains", err)
	}
	defer rows.Close()

	chains := make([]models.Chain, 0)
	for rows.Next() {
		var c models.Chain
		if err = rows.Scan(&c.ID, &c.Name, &c.Key, &c.Salt); err != nil {
			log.Err(err).Str("func", "*chainRepository.GetAllChains").Msg("error scanning chain")
			return nil, apperrors.Storage(apperrors.CodeQuery, "scan chain", fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
		chains = append(chains, c)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*chainRepository.GetAllChains").Msg("error iterating chains")
		return nil, apperrors.Storage(apperrors.CodeQuery, "iterate chains", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return chains, nil
}

func (r *chainRepository) GetChain(ctx context.Context, id string) (models.Chain, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectChainQuery(id)
	if err != nil {
		return models.Chain{}, apperrors.Storage(apperrors.CodeQuery, "build select chain", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var c models.Chain
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Key, &c.Salt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Chain{}, chainNotFound(id)
	}
	if err != nil {
		log.Err(err).Str("func", "*chainRepository.GetChain").Str("id", id).Msg("error selecting chain")
		return models.Chain{}, r.db.storageError(ErrScanningRow, fmt.Sprintf("select chain %s", id), err)
	}

	return c, nil
}

// DeleteChain removes the links explicitly before the chain so the result
// does not depend on the backend enforcing ON DELETE CASCADE.
func (r *chainRepository) DeleteChain(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	linksQuery, linksArgs, err := r.db.deleteChainLinksQuery(id)
	if err != nil {
		return apperrors.Storage(apperrors.CodeQuery, "build delete links", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}
	chainQuery, chainArgs, err := r.db.deleteChainQuery(id)
	if err != nil {
		return apperrors.Storage(apperrors.CodeQuery, "build delete chain", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, linksQuery, linksArgs...); err != nil {
			return r.db.storageError(ErrExecutingStatement, fmt.Sprintf("delete links of chain %s", id), err)
		}

		res, err := tx.ExecContext(ctx, chainQuery, chainArgs...)
		if err != nil {
			return r.db.storageError(ErrExecutingStatement, fmt.Sprintf("delete chain %s", id), err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return chainNotFound(id)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*chainRepository.DeleteChain").Str("id", id).Msg("error deleting chain")
		return err
	}

	return nil
}
