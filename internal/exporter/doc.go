// Package exporter writes the pipeline's outputs to disk.
//
// Two components:
//
// CSVWriter: core CSV writing with support for headers, streaming and a
// UTF-8 BOM for Excel compatibility.
//
// DatasetExporter: writes the cleaned layoffs dataset as CSV and JSON, and
// the aggregate report bundle as JSON.
//
// Example usage:
//
//	exp := exporter.NewDatasetExporter(paths)
//	if err := exp.ExportCleaned(records); err != nil { ... }
//	if err := exp.ExportReports(reports.BuildBundle(records, 0)); err != nil { ... }
package exporter
