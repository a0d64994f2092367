// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB directly; the mock rejects its queries

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "applying schema migrations") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
