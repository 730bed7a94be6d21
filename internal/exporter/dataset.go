package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"layoffscli/internal/config"
	"layoffscli/internal/reports"
	"layoffscli/pkg/contracts/domain"
)

// DatasetExporter writes the cleaned dataset and the report bundle to their
// well-known locations under the data directory.
type DatasetExporter struct {
	paths     *config.Paths
	csvWriter *CSVWriter
}

// NewDatasetExporter creates a new cleaned dataset exporter
func NewDatasetExporter(paths *config.Paths) *DatasetExporter {
	return &DatasetExporter{
		paths:     paths,
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportCleaned writes the cleaned dataset as both CSV and JSON.
func (d *DatasetExporter) ExportCleaned(records []domain.LayoffRecord) error {
	if err := d.exportCleanedCSV(records); err != nil {
		return err
	}
	return writeJSON(d.paths.CleanedJSON, records)
}

// ExportReports writes the aggregate report bundle as JSON.
func (d *DatasetExporter) ExportReports(bundle reports.Bundle) error {
	slog.Info("Writing report bundle",
		slog.String("path", d.paths.ReportsJSON),
		slog.Int("record_count", bundle.RecordCount))
	return writeJSON(d.paths.ReportsJSON, bundle)
}

func (d *DatasetExporter) exportCleanedCSV(records []domain.LayoffRecord) error {
	headers := append([]string(nil), domain.Columns...)

	stream, err := d.csvWriter.CreateStreamWriter(d.paths.CleanedCSV, headers)
	if err != nil {
		return fmt.Errorf("failed to create cleaned CSV: %w", err)
	}

	for i, record := range records {
		if err := stream.WriteRecord(recordToCSVRow(record)); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return stream.Close()
}

// recordToCSVRow renders one cleaned record in feed column order.
func recordToCSVRow(r domain.LayoffRecord) []string {
	return []string{
		r.Company,
		r.Location,
		formatNullableString(r.Industry),
		formatNullableInt(r.TotalLaidOff),
		formatNullableFloat(r.PercentageLaidOff),
		formatNullableDate(r.Date),
		r.Stage,
		r.Country,
		formatNullableInt(r.FundsRaisedMillions),
	}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
