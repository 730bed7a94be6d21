package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations in the application.
type Paths struct {
	BaseDir     string
	DataDir     string
	RawDir      string
	CleanedDir  string
	ReportsDir  string
	LogsDir     string
	StoragePath string

	// Well-known output files
	CleanedCSV   string
	CleanedJSON  string
	ReportsJSON  string
}

// NewPaths builds the path set rooted at baseDir. An empty baseDir means the
// current working directory.
//
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   ├── raw/        (source layoff feeds)
//	  │   ├── cleaned/    (cleaned dataset outputs)
//	  │   └── reports/    (aggregate report outputs)
//	  ├── logs/
//	  └── layoffs.db      (sqlite staging store)
func NewPaths(baseDir string) (*Paths, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	dataDir := filepath.Join(baseDir, "data")
	cleanedDir := filepath.Join(dataDir, "cleaned")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		BaseDir:     baseDir,
		DataDir:     dataDir,
		RawDir:      filepath.Join(dataDir, "raw"),
		CleanedDir:  cleanedDir,
		ReportsDir:  reportsDir,
		LogsDir:     filepath.Join(baseDir, "logs"),
		StoragePath: filepath.Join(dataDir, "layoffs.db"),
		CleanedCSV:  filepath.Join(cleanedDir, "layoffs_cleaned.csv"),
		CleanedJSON: filepath.Join(cleanedDir, "layoffs_cleaned.json"),
		ReportsJSON: filepath.Join(reportsDir, "layoffs_reports.json"),
	}, nil
}

// EnsureDirectories creates all required directories.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.RawDir, p.CleanedDir, p.ReportsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path for a report file.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the full path for a log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
