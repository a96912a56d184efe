// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	tableChains = "chains"
	tableLinks  = "links"
)

var (
	chainColumns = []string{"id", "name", "chain_key", "salt"}
	linkColumns  = []string{"id", "name", "description", "password", "iv", "chain_id"}
)

func (db *DB) insertChainQuery(c models.Chain) (string, []any, error) {
	return db.builder.
		Insert(tableChains).
		Columns(chainColumns...).
		Values(c.ID, c.Name, c.Key, c.Salt).
		ToSql()
}

func (db *DB) selectChainsQuery() (string, []any, error) {
	return db.builder.
		Select(chainColumns...).
		From(tableChains).
		OrderBy("id").
		ToSql()
}

func (db *DB) selectChainQuery(id string) (string, []any, error) {
	return db.builder.
		Select(chainColumns...).
		From(tableChains).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) deleteChainQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(tableChains).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) deleteChainLinksQuery(chainID string) (string, []any, error) {
	return db.builder.
		Delete(tableLinks).
		Where(sq.Eq{"chain_id": chainID}).
		ToSql()
}

func (db *DB) insertLinkQuery(l models.ChainLink) (string, []any, error) {
	return db.builder.
		Insert(tableLinks).
		Columns(linkColumns...).
		Values(l.ID, l.Name, l.Description, l.Password, l.IV, l.ChainID).
		ToSql()
}

func (db *DB) selectLinksByChainQuery(chainID string) (string, []any, error) {
	return db.builder.
		Select(linkColumns...).
		From(tableLinks).
		Where(sq.Eq{"chain_id": chainID}).
		OrderBy("id").
		ToSql()
}

func (db *DB) selectLinkQuery(id string) (string, []any, error) {
	return db.builder.
		Select(linkColumns...).
		From(tableLinks).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) updateLinkQuery(l models.ChainLink) (string, []any, error) {
	return db.builder.
		Update(tableLinks).
		Set("name", l.Name).
		Set("description", l.Description).
		Set("password", l.Password).
		Set("iv", l.IV).
		Where(sq.Eq{"id": l.ID}).
		ToSql()
}

func (db *DB) deleteLinkQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(tableLinks).
		Where(sq.Eq{"id": id}).
		ToSql()
}
