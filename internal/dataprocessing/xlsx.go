package dataprocessing

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"layoffscli/internal/errors"
	"layoffscli/pkg/contracts/domain"
)

// LoadXLSX reads a raw layoff feed from a spreadsheet export. The feed sheet
// is located by its header row; workbooks often carry extra sheets with
// notes or pivot tables, and those are skipped.
func LoadXLSX(path string) ([]domain.LayoffRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open XLSX feed", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if !looksLikeLayoffHeader(rows[0]) {
			continue
		}

		slog.Info("found layoff feed sheet", slog.String("sheet_name", name), slog.Int("total_rows", len(rows)))
		return recordsFromRows(rows)
	}

	return nil, errors.NewValidationError("could not find a layoffs sheet in the workbook")
}

// looksLikeLayoffHeader reports whether a row carries the feed's column
// contract. Column order is not significant.
func looksLikeLayoffHeader(row []string) bool {
	seen := make(map[string]bool, len(row))
	for _, cell := range row {
		seen[strings.ToLower(strings.TrimSpace(cell))] = true
	}
	for _, col := range domain.Columns {
		if !seen[col] {
			return false
		}
	}
	return true
}
