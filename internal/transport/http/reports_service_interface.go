package http

import (
	"context"

	"layoffscli/internal/reports"
	"layoffscli/internal/store"
	"layoffscli/pkg/contracts/domain"
)

// ReportsServiceInterface is what the reports handler needs from the
// service layer. Defined here so handler tests can substitute a stub.
type ReportsServiceInterface interface {
	Records(ctx context.Context) ([]domain.LayoffRecord, error)
	LatestRun(ctx context.Context) (*store.RunSummary, error)
	Summary(ctx context.Context, topN int) (reports.Bundle, error)
	ByYear(ctx context.Context) ([]reports.YearTotal, error)
	ByYearMonth(ctx context.Context) ([]reports.MonthTotal, error)
	ByIndustry(ctx context.Context) ([]reports.IndustryTotal, error)
	ByIndustryYear(ctx context.Context) ([]reports.IndustryYearTotal, error)
	TopCompanies(ctx context.Context, n int) ([]reports.CompanyTotal, error)
	CompanySeries(ctx context.Context, company string) ([]reports.MonthTotal, error)
	ByCountry(ctx context.Context) ([]reports.CountryTotal, error)
	ByCountryIndustry(ctx context.Context) ([]reports.CountryIndustryTotal, error)
	ByCountryMonth(ctx context.Context) ([]reports.CountryMonthTotal, error)
	FundingBuckets(ctx context.Context) ([]reports.FundingBucket, error)
	Outliers(ctx context.Context) (reports.OutlierReport, error)
}
