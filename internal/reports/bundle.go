package reports

import (
	"time"

	"layoffscli/pkg/contracts/domain"
)

// DefaultTopN bounds the company leaderboard in the standard bundle.
const DefaultTopN = 10

// Bundle is the full set of standard aggregate views, computed in one pass
// for export and for the summary endpoint. Per-company and per-country
// series are query-shaped and served on demand instead.
type Bundle struct {
	GeneratedAt       time.Time              `json:"generated_at"`
	RecordCount       int                    `json:"record_count"`
	TotalLaidOff      int64                  `json:"total_laid_off"`
	ByYear            []YearTotal            `json:"by_year"`
	ByYearMonth       []MonthTotal           `json:"by_year_month"`
	ByIndustry        []IndustryTotal        `json:"by_industry"`
	ByIndustryYear    []IndustryYearTotal    `json:"by_industry_year"`
	TopCompanies      []CompanyTotal         `json:"top_companies"`
	ByCountry         []CountryTotal         `json:"by_country"`
	ByCountryIndustry []CountryIndustryTotal `json:"by_country_industry"`
	FundingBuckets    []FundingBucket        `json:"funding_buckets"`
	Outliers          OutlierReport          `json:"outliers"`
}

// BuildBundle computes every standard view over the cleaned dataset.
func BuildBundle(records []domain.LayoffRecord, topN int) Bundle {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return Bundle{
		GeneratedAt:       time.Now().UTC(),
		RecordCount:       len(records),
		TotalLaidOff:      TotalLaidOff(records),
		ByYear:            ByYear(records),
		ByYearMonth:       ByYearMonth(records),
		ByIndustry:        ByIndustry(records),
		ByIndustryYear:    ByIndustryYear(records),
		TopCompanies:      TopCompanies(records, topN),
		ByCountry:         ByCountry(records),
		ByCountryIndustry: ByCountryIndustry(records),
		FundingBuckets:    FundingBuckets(records),
		Outliers:          Outliers(records),
	}
}
