// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

// Package migrations embeds the SQL schema migrations and applies them with
// goose at server startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schemaMigrations embed.FS

// Migrate brings the connected database up to the latest schema version.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schemaMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying schema migrations: %w", err)
	}

	return nil
}
