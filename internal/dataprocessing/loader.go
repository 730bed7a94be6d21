package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"layoffscli/internal/errors"
	"layoffscli/pkg/contracts/domain"
)

// nullTokens are textual values the feed uses to mean "no value".
var nullTokens = map[string]bool{
	"":     true,
	"null": true,
	"none": true,
	"n/a":  true,
	"na":   true,
}

// LoadFile reads a raw layoff feed from disk, dispatching on the file
// extension. CSV and XLSX feeds are supported.
func LoadFile(path string) ([]domain.LayoffRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.NewStorageError("failed to open raw feed", err)
		}
		defer file.Close()
		return LoadCSV(file)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported feed format: %s", filepath.Ext(path)))
	}
}

// LoadCSV reads a raw layoff feed from r. The header row must carry exactly
// the nine business columns; anything else is a structural error and the
// pipeline refuses to run.
func LoadCSV(r io.Reader) ([]domain.LayoffRecord, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewParsingError("failed to read raw feed", err)
	}

	// Remove UTF-8 BOM if present
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to parse raw feed CSV", err)
	}

	return recordsFromRows(rows)
}

// recordsFromRows converts header+data rows into layoff records. Shared by
// the CSV and XLSX loaders.
func recordsFromRows(rows [][]string) ([]domain.LayoffRecord, error) {
	if len(rows) == 0 {
		return nil, errors.NewValidationError("raw feed is empty")
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.LayoffRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		if len(row) < len(domain.Columns) {
			// Pad short rows so trailing blank cells read as nulls.
			padded := make([]string, len(domain.Columns))
			copy(padded, row)
			row = padded
		}

		record := domain.LayoffRecord{
			Company:             row[columns["company"]],
			Location:            row[columns["location"]],
			Industry:            industryValue(row[columns["industry"]]),
			TotalLaidOff:        parseNullableInt(row[columns["total_laid_off"]]),
			PercentageLaidOff:   parseNullablePercent(row[columns["percentage_laid_off"]]),
			RawDate:             strings.TrimSpace(row[columns["date"]]),
			Stage:               row[columns["stage"]],
			Country:             row[columns["country"]],
			FundsRaisedMillions: parseNullableInt(row[columns["funds_raised_millions"]]),
		}
		records = append(records, record)

		if i < 3 {
			slog.Debug("sample raw record",
				slog.Int("row", i+1),
				slog.String("company", record.Company),
				slog.String("date", record.RawDate))
		}
	}

	slog.Info("raw feed loaded", slog.Int("record_count", len(records)))
	return records, nil
}

// mapColumns validates the header against the required column contract and
// returns the index of each business column. Extra, missing, or duplicate
// columns are all structural errors.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(domain.Columns))
	var extra []string

	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF")))
		if _, dup := columns[name]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate column in raw feed: %s", name))
		}
		if isBusinessColumn(name) {
			columns[name] = i
		} else {
			extra = append(extra, name)
		}
	}

	var missing []string
	for _, want := range domain.Columns {
		if _, ok := columns[want]; !ok {
			missing = append(missing, want)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return nil, errors.NewValidationError("raw feed column set does not match the layoffs contract").
			WithContext("missing", missing).
			WithContext("unexpected", extra)
	}

	return columns, nil
}

func isBusinessColumn(name string) bool {
	for _, col := range domain.Columns {
		if col == name {
			return true
		}
	}
	return false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// industryValue preserves the distinction between an absent industry cell
// and one carrying whitespace-wrapped text; blank text becomes an empty
// string and is flattened to null later by the reconciliation stage.
func industryValue(raw string) *string {
	if nullTokens[strings.ToLower(strings.TrimSpace(raw))] {
		empty := ""
		return &empty
	}
	v := raw
	return &v
}

// parseNullableInt parses numeric-as-text values such as "1,200", "$121" or
// "121.5". Blank and non-numeric text reads as null, never as an error.
func parseNullableInt(raw string) *int64 {
	cleaned := cleanNumericText(raw)
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		slog.Debug("non-numeric value treated as null", slog.String("value", raw))
		return nil
	}
	v := int64(math.Round(f))
	return &v
}

// parseNullablePercent parses the percentage field, accepting both "25" and
// "25%" spellings. Blank and non-numeric text reads as null.
func parseNullablePercent(raw string) *float64 {
	cleaned := strings.TrimSuffix(cleanNumericText(raw), "%")
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		slog.Debug("non-numeric percentage treated as null", slog.String("value", raw))
		return nil
	}
	return &f
}

func cleanNumericText(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if nullTokens[strings.ToLower(cleaned)] {
		return ""
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	return cleaned
}
