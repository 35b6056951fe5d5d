// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

// ExportSQLite replaces the contents of the database at path with the
// rendered rows. Documents are keyed by PDF file name; each non-empty cell
// becomes one fields row.
func ExportSQLite(ctx context.Context, path string, header []string, rows []Row) error {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM fields`, `DELETE FROM documents`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing previous export: %w", err)
		}
	}

	docStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO documents (pdf_file, url, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing document insert: %w", err)
	}
	defer docStmt.Close()

	fieldStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO fields (pdf_file, key, value, column_index) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing field insert: %w", err)
	}
	defer fieldStmt.Close()

	urlCol := indexOf(header, types.FieldURL)
	for pos, row := range rows {
		url := ""
		if urlCol >= 0 {
			url = row.Cells[urlCol]
		}
		if _, err := docStmt.ExecContext(ctx, row.File, url, pos); err != nil {
			return fmt.Errorf("inserting document %s: %w", row.File, err)
		}
		for i, cell := range row.Cells {
			if cell == "" {
				continue
			}
			if _, err := fieldStmt.ExecContext(ctx, row.File, header[i], cell, i); err != nil {
				return fmt.Errorf("inserting field %s/%s: %w", row.File, header[i], err)
			}
		}
	}

	return tx.Commit()
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			pdf_file TEXT PRIMARY KEY,
			url TEXT,
			position INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS fields (
			pdf_file TEXT NOT NULL REFERENCES documents(pdf_file),
			key TEXT NOT NULL,
			value TEXT,
			column_index INTEGER,
			PRIMARY KEY (pdf_file, key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fields_key ON fields(key)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
