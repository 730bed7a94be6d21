package store

import (
	"context"
	"database/sql"
	"time"

	apperrors "layoffscli/internal/errors"
	"layoffscli/internal/pipeline"
	"layoffscli/pkg/contracts/domain"
)

const storedDateLayout = "2006-01-02"

// ReplaceRaw replaces the staged raw feed with the given records.
func (d *DB) ReplaceRaw(ctx context.Context, records []domain.LayoffRecord) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM raw_layoffs;`); err != nil {
		return apperrors.NewStorageError("failed to clear raw staging table", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO raw_layoffs (company, location, industry, total_laid_off, percentage_laid_off, raw_date, stage, country, funds_raised_millions)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return apperrors.NewStorageError("failed to prepare insert", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Company, r.Location, r.Industry, r.TotalLaidOff, r.PercentageLaidOff,
			r.RawDate, r.Stage, r.Country, r.FundsRaisedMillions); err != nil {
			return apperrors.NewStorageError("failed to stage raw record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("failed to commit raw staging", err)
	}
	return nil
}

// LoadRaw returns the staged raw feed in insertion order.
func (d *DB) LoadRaw(ctx context.Context) ([]domain.LayoffRecord, error) {
	rows, err := d.Pool.QueryContext(ctx, `
SELECT company, location, industry, total_laid_off, percentage_laid_off, raw_date, stage, country, funds_raised_millions
FROM raw_layoffs ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query raw staging table", err)
	}
	defer rows.Close()

	var out []domain.LayoffRecord
	for rows.Next() {
		var r domain.LayoffRecord
		if err := rows.Scan(&r.Company, &r.Location, &r.Industry, &r.TotalLaidOff,
			&r.PercentageLaidOff, &r.RawDate, &r.Stage, &r.Country, &r.FundsRaisedMillions); err != nil {
			return nil, apperrors.NewStorageError("failed to scan raw record", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("failed to read raw staging table", err)
	}
	return out, nil
}

// SaveCleaned stores a run's cleaned output and its run metadata in one
// transaction.
func (d *DB) SaveCleaned(ctx context.Context, result *pipeline.RunResult, rawCount int) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO cleaned_layoffs (run_id, company, location, industry, total_laid_off, percentage_laid_off, date, stage, country, funds_raised_millions)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return apperrors.NewStorageError("failed to prepare insert", err)
	}
	defer stmt.Close()

	for _, r := range result.Records {
		var date *string
		if r.Date != nil {
			s := r.Date.Format(storedDateLayout)
			date = &s
		}
		if _, err := stmt.ExecContext(ctx,
			result.RunID, r.Company, r.Location, r.Industry, r.TotalLaidOff,
			r.PercentageLaidOff, date, r.Stage, r.Country, r.FundsRaisedMillions); err != nil {
			return apperrors.NewStorageError("failed to store cleaned record", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO runs (run_id, started_at, duration_ms, raw_records, cleaned_records)
VALUES (?, ?, ?, ?, ?);`,
		result.RunID, result.StartedAt.UTC().Format(time.RFC3339),
		result.Duration.Milliseconds(), rawCount, len(result.Records)); err != nil {
		return apperrors.NewStorageError("failed to record run", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("failed to commit cleaned output", err)
	}
	return nil
}

// LoadCleaned returns one run's cleaned records in insertion order.
func (d *DB) LoadCleaned(ctx context.Context, runID string) ([]domain.LayoffRecord, error) {
	rows, err := d.Pool.QueryContext(ctx, `
SELECT company, location, industry, total_laid_off, percentage_laid_off, date, stage, country, funds_raised_millions
FROM cleaned_layoffs WHERE run_id = ? ORDER BY id;`, runID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query cleaned records", err)
	}
	defer rows.Close()

	var out []domain.LayoffRecord
	for rows.Next() {
		var (
			r    domain.LayoffRecord
			date sql.NullString
		)
		if err := rows.Scan(&r.Company, &r.Location, &r.Industry, &r.TotalLaidOff,
			&r.PercentageLaidOff, &date, &r.Stage, &r.Country, &r.FundsRaisedMillions); err != nil {
			return nil, apperrors.NewStorageError("failed to scan cleaned record", err)
		}
		if date.Valid {
			t, err := time.Parse(storedDateLayout, date.String)
			if err != nil {
				return nil, apperrors.NewStorageError("corrupt date in cleaned record", err)
			}
			r.Date = &t
			r.RawDate = date.String
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("failed to read cleaned records", err)
	}
	return out, nil
}

// RunSummary is stored metadata about one pipeline run.
type RunSummary struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration"`
	RawRecords     int           `json:"raw_records"`
	CleanedRecords int           `json:"cleaned_records"`
}

// LatestRun returns the most recent run's metadata, or ErrTypeNotFound when
// no run has completed yet.
func (d *DB) LatestRun(ctx context.Context) (*RunSummary, error) {
	var (
		summary    RunSummary
		startedAt  string
		durationMS int64
	)
	err := d.Pool.QueryRowContext(ctx, `
SELECT run_id, started_at, duration_ms, raw_records, cleaned_records
FROM runs ORDER BY started_at DESC LIMIT 1;`).Scan(
		&summary.RunID, &startedAt, &durationMS, &summary.RawRecords, &summary.CleanedRecords)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("pipeline run")
	}
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query runs", err)
	}

	t, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, apperrors.NewStorageError("corrupt started_at in runs table", err)
	}
	summary.StartedAt = t
	summary.Duration = time.Duration(durationMS) * time.Millisecond
	return &summary, nil
}
