package store

import (
	"database/sql"

	apperrors "layoffscli/internal/errors"
)

// migrate applies the schema, versioned through PRAGMA user_version.
func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return apperrors.NewStorageError("failed to begin migration", err)
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return apperrors.NewStorageError("failed to read schema version", err)
	}
	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS raw_layoffs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  industry TEXT,
  total_laid_off INTEGER,
  percentage_laid_off REAL,
  raw_date TEXT NOT NULL DEFAULT '',
  stage TEXT NOT NULL,
  country TEXT NOT NULL,
  funds_raised_millions INTEGER
);`,
		`CREATE TABLE IF NOT EXISTS cleaned_layoffs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  industry TEXT,
  total_laid_off INTEGER,
  percentage_laid_off REAL,
  date TEXT,
  stage TEXT NOT NULL,
  country TEXT NOT NULL,
  funds_raised_millions INTEGER
);`,
		`CREATE TABLE IF NOT EXISTS runs (
  run_id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  duration_ms INTEGER NOT NULL,
  raw_records INTEGER NOT NULL,
  cleaned_records INTEGER NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_cleaned_layoffs_run ON cleaned_layoffs(run_id);`,
		`CREATE INDEX IF NOT EXISTS idx_cleaned_layoffs_company ON cleaned_layoffs(company);`,
		`PRAGMA user_version = 1;`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return apperrors.NewStorageError("failed to apply schema", err)
		}
	}

	return tx.Commit()
}
