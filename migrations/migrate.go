// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the chain store schema and applies it with goose.
// The same SQL files serve SQLite and PostgreSQL.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration. dialect is a goose dialect name
// or database/sql driver name ("sqlite3", "pgx", "postgres").
func Migrate(ctx context.Context, db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	if g.log == nil {
		return
	}
	g.log.Debug().Str("func", "migrations.Migrate").Msgf(format, v...)
}

// Fatalf must not exit the process; it only logs at error level.
func (g gooseLogger) Fatalf(format string, v ...any) {
	if g.log == nil {
		return
	}
	g.log.Error().Str("func", "migrations.Migrate").Msgf(format, v...)
}
