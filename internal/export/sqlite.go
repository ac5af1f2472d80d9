// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const articlesSchema = `CREATE TABLE articles (
	row INTEGER PRIMARY KEY,
	run_id TEXT NOT NULL,
	title TEXT NOT NULL,
	authors TEXT NOT NULL,
	publication_date TEXT NOT NULL,
	doi TEXT NOT NULL,
	citation TEXT NOT NULL
)`

// WriteSQLite writes the table into a fresh SQLite database at path, one
// articles row per table row in order. Like WriteCSV, the database is built
// under a temporary name and renamed over path only on success.
func WriteSQLite(ctx context.Context, path string, t Table, runID string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", ErrWrite, dir, err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := fillSQLite(ctx, tmpName, t, runID); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

func fillSQLite(ctx context.Context, dbPath string, t Table, runID string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, articlesSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (row, run_id, title, authors, publication_date, doi, citation)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		if len(row) != len(Columns) {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), len(Columns))
		}
		if _, err := stmt.ExecContext(ctx, i+1, runID, row[0], row[1], row[2], row[3], row[4]); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return db.Close()
}

// ReadSQLite loads the articles table written by WriteSQLite.
func ReadSQLite(ctx context.Context, path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		return Table{}, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return Table{}, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT title, authors, publication_date, doi, citation FROM articles ORDER BY row`)
	if err != nil {
		return Table{}, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	t := Table{Columns: append([]string(nil), Columns...), Rows: [][]string{}}
	for rows.Next() {
		r := make([]string, len(Columns))
		if err := rows.Scan(&r[0], &r[1], &r[2], &r[3], &r[4]); err != nil {
			return Table{}, fmt.Errorf("scanning row: %w", err)
		}
		t.Rows = append(t.Rows, r)
	}
	return t, rows.Err()
}
