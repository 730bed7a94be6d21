package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"layoffscli/internal/config"
	"layoffscli/internal/dataprocessing"
	"layoffscli/internal/exporter"
	"layoffscli/internal/infrastructure"
	"layoffscli/internal/pipeline"
	"layoffscli/internal/reports"
	"layoffscli/internal/store"
)

func main() {
	inFile := flag.String("in", "", "raw layoffs feed (.csv or .xlsx)")
	baseDir := flag.String("base", "", "base directory for data, logs and the staging store (defaults to the working directory)")
	topN := flag.Int("top", reports.DefaultTopN, "number of companies in the top-companies report")
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: processor -in <layoffs.csv|layoffs.xlsx> [-base dir] [-top n]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.NewPaths(*baseDir)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = paths.GetLogPath("processor.log")
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, paths, logger, *inFile, *topN); err != nil {
		logger.Error("processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger, inFile string, topN int) error {
	logger.Info("Starting layoffs feed processing",
		slog.String("input", inFile),
		slog.String("base_dir", paths.BaseDir))

	raw, err := dataprocessing.LoadFile(inFile)
	if err != nil {
		return fmt.Errorf("failed to load raw feed: %w", err)
	}
	logger.Info("raw feed loaded", slog.Int("records", len(raw)))

	db, err := store.Open(paths.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to open staging store: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceRaw(ctx, raw); err != nil {
		return fmt.Errorf("failed to stage raw feed: %w", err)
	}

	result, err := pipeline.New(cfg.Cleaning, logger).Run(ctx, raw)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if err := db.SaveCleaned(ctx, result, len(raw)); err != nil {
		return fmt.Errorf("failed to store cleaned output: %w", err)
	}

	exp := exporter.NewDatasetExporter(paths)
	if err := exp.ExportCleaned(result.Records); err != nil {
		return fmt.Errorf("failed to export cleaned dataset: %w", err)
	}
	if err := exp.ExportReports(reports.BuildBundle(result.Records, topN)); err != nil {
		return fmt.Errorf("failed to export reports: %w", err)
	}

	for _, stage := range result.Stages {
		logger.Info("stage summary",
			slog.String("stage", stage.ID),
			slog.Int("in", stage.RecordsIn),
			slog.Int("out", stage.RecordsOut),
			slog.Int("dropped", stage.Dropped()))
	}
	logger.Info("processing completed",
		slog.String("run_id", result.RunID),
		slog.Int("raw_records", len(raw)),
		slog.Int("cleaned_records", len(result.Records)),
		slog.Duration("duration", result.Duration),
		slog.String("cleaned_csv", paths.CleanedCSV),
		slog.String("reports_json", paths.ReportsJSON))
	return nil
}
