// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// Storages bundles the repositories of one backend together with the
// resource that has to be released on shutdown.
type Storages struct {
	ChainRepository
	LinkRepository

	closeFn func() error
}

// NewStorages opens the backend selected by cfg.Driver and applies the
// schema for SQL drivers.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverSQLite {
			db, err = NewConnectSQLite(ctx, cfg, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(ctx); err != nil {
			_ = db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, err
		}

		return &Storages{
			ChainRepository: NewChainRepository(db, log),
			LinkRepository:  NewLinkRepository(db, log),
			closeFn:         db.Close,
		}, nil

	case config.DriverMemory:
		mem, err := NewMemoryStorage(cfg.DSN)
		if err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error loading memory storage")
			return nil, err
		}
		return &Storages{ChainRepository: mem, LinkRepository: mem}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewStoragesFrom wraps an existing [Storage]. Used by tests and by callers
// that own the backend themselves.
func NewStoragesFrom(s Storage) *Storages {
	return &Storages{ChainRepository: s, LinkRepository: s}
}

// Close releases the underlying connection pool, if any.
func (s *Storages) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
