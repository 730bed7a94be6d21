package services

import (
	"context"
	"log/slog"
	"sync"

	"layoffscli/internal/reports"
	"layoffscli/internal/store"
	"layoffscli/pkg/contracts/domain"
)

// ReportsService serves aggregate views over the latest cleaned dataset.
// The dataset is read from the staging store once per pipeline run and
// cached; a new run ID invalidates the cache.
type ReportsService struct {
	db     *store.DB
	logger *slog.Logger

	mu          sync.RWMutex
	cachedRunID string
	cached      []domain.LayoffRecord
}

// NewReportsService creates a reports service backed by the staging store.
func NewReportsService(db *store.DB, logger *slog.Logger) *ReportsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsService{
		db:     db,
		logger: logger.With(slog.String("service", "reports")),
	}
}

// Records returns the latest run's cleaned dataset.
func (s *ReportsService) Records(ctx context.Context) ([]domain.LayoffRecord, error) {
	run, err := s.db.LatestRun(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	if s.cachedRunID == run.RunID {
		records := s.cached
		s.mu.RUnlock()
		return records, nil
	}
	s.mu.RUnlock()

	records, err := s.db.LoadCleaned(ctx, run.RunID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cachedRunID = run.RunID
	s.cached = records
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "cleaned dataset loaded",
		slog.String("run_id", run.RunID),
		slog.Int("records", len(records)))
	return records, nil
}

// LatestRun returns metadata about the most recent pipeline run.
func (s *ReportsService) LatestRun(ctx context.Context) (*store.RunSummary, error) {
	return s.db.LatestRun(ctx)
}

// Summary computes the full report bundle.
func (s *ReportsService) Summary(ctx context.Context, topN int) (reports.Bundle, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return reports.Bundle{}, err
	}
	return reports.BuildBundle(records, topN), nil
}

// ByYear returns per-year layoff totals.
func (s *ReportsService) ByYear(ctx context.Context) ([]reports.YearTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByYear(records), nil
}

// ByYearMonth returns per-month layoff totals.
func (s *ReportsService) ByYearMonth(ctx context.Context) ([]reports.MonthTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByYearMonth(records), nil
}

// ByIndustry returns per-industry layoff totals.
func (s *ReportsService) ByIndustry(ctx context.Context) ([]reports.IndustryTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByIndustry(records), nil
}

// ByIndustryYear returns per-industry-per-year layoff totals.
func (s *ReportsService) ByIndustryYear(ctx context.Context) ([]reports.IndustryYearTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByIndustryYear(records), nil
}

// TopCompanies returns the n companies with the largest cumulative layoffs.
func (s *ReportsService) TopCompanies(ctx context.Context, n int) ([]reports.CompanyTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = reports.DefaultTopN
	}
	return reports.TopCompanies(records, n), nil
}

// CompanySeries returns the monthly layoff series for one company.
func (s *ReportsService) CompanySeries(ctx context.Context, company string) ([]reports.MonthTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.CompanySeries(records, company), nil
}

// ByCountry returns per-country layoff totals.
func (s *ReportsService) ByCountry(ctx context.Context) ([]reports.CountryTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByCountry(records), nil
}

// ByCountryIndustry returns per-country-per-industry layoff totals.
func (s *ReportsService) ByCountryIndustry(ctx context.Context) ([]reports.CountryIndustryTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByCountryIndustry(records), nil
}

// ByCountryMonth returns per-country-per-month layoff totals.
func (s *ReportsService) ByCountryMonth(ctx context.Context) ([]reports.CountryMonthTotal, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ByCountryMonth(records), nil
}

// FundingBuckets returns layoff totals grouped by company funding range.
func (s *ReportsService) FundingBuckets(ctx context.Context) ([]reports.FundingBucket, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return reports.FundingBuckets(records), nil
}

// Outliers returns records with unusually large layoff counts.
func (s *ReportsService) Outliers(ctx context.Context) (reports.OutlierReport, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return reports.OutlierReport{}, err
	}
	return reports.Outliers(records), nil
}
