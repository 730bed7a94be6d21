// Package reports computes aggregate views over the cleaned layoffs
// dataset. Every function is a pure, stateless projection: it never mutates
// its input and depends on nothing but the records passed in. Records
// without a parsed date are excluded from time-bucketed aggregates and
// nothing else.
package reports

import (
	"sort"

	"layoffscli/pkg/contracts/domain"
)

// YearTotal is the layoff sum for a calendar year.
type YearTotal struct {
	Year         int   `json:"year"`
	TotalLaidOff int64 `json:"total_laid_off"`
}

// MonthTotal is the layoff sum for a calendar month, keyed "YYYY-MM".
type MonthTotal struct {
	Month        string `json:"month"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// IndustryTotal is the layoff sum for one industry.
type IndustryTotal struct {
	Industry     string `json:"industry"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// IndustryYearTotal is the layoff sum for one industry in one year.
type IndustryYearTotal struct {
	Industry     string `json:"industry"`
	Year         int    `json:"year"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// CompanyTotal is the cumulative layoff sum for one company.
type CompanyTotal struct {
	Company      string `json:"company"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// CountryTotal is the layoff sum for one country.
type CountryTotal struct {
	Country      string `json:"country"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// CountryIndustryTotal is the layoff sum for one country×industry pair.
type CountryIndustryTotal struct {
	Country      string `json:"country"`
	Industry     string `json:"industry"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// CountryMonthTotal is the layoff sum for one country in one month.
type CountryMonthTotal struct {
	Country      string `json:"country"`
	Month        string `json:"month"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// TotalLaidOff sums headcount across the whole dataset. Records with a
// null count contribute nothing, even when a percentage is present.
func TotalLaidOff(records []domain.LayoffRecord) int64 {
	var total int64
	for _, r := range records {
		if r.TotalLaidOff != nil {
			total += *r.TotalLaidOff
		}
	}
	return total
}

// ByYear sums layoffs per calendar year, ascending by year.
func ByYear(records []domain.LayoffRecord) []YearTotal {
	sums := make(map[int]int64)
	for _, r := range records {
		year, ok := r.Year()
		if !ok || r.TotalLaidOff == nil {
			continue
		}
		sums[year] += *r.TotalLaidOff
	}

	out := make([]YearTotal, 0, len(sums))
	for year, total := range sums {
		out = append(out, YearTotal{Year: year, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ByYearMonth sums layoffs per calendar month, ascending by month.
func ByYearMonth(records []domain.LayoffRecord) []MonthTotal {
	sums := make(map[string]int64)
	for _, r := range records {
		month, ok := r.YearMonth()
		if !ok || r.TotalLaidOff == nil {
			continue
		}
		sums[month] += *r.TotalLaidOff
	}

	out := make([]MonthTotal, 0, len(sums))
	for month, total := range sums {
		out = append(out, MonthTotal{Month: month, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByIndustry sums layoffs per industry, descending by total. Records whose
// industry is still null after cleaning are reported under "Unknown".
func ByIndustry(records []domain.LayoffRecord) []IndustryTotal {
	sums := make(map[string]int64)
	for _, r := range records {
		if r.TotalLaidOff == nil {
			continue
		}
		sums[industryLabel(r)] += *r.TotalLaidOff
	}

	out := make([]IndustryTotal, 0, len(sums))
	for industry, total := range sums {
		out = append(out, IndustryTotal{Industry: industry, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalLaidOff != out[j].TotalLaidOff {
			return out[i].TotalLaidOff > out[j].TotalLaidOff
		}
		return out[i].Industry < out[j].Industry
	})
	return out
}

// ByIndustryYear sums layoffs per industry per year, ordered by year then
// descending total within the year.
func ByIndustryYear(records []domain.LayoffRecord) []IndustryYearTotal {
	type key struct {
		industry string
		year     int
	}
	sums := make(map[key]int64)
	for _, r := range records {
		year, ok := r.Year()
		if !ok || r.TotalLaidOff == nil {
			continue
		}
		sums[key{industry: industryLabel(r), year: year}] += *r.TotalLaidOff
	}

	out := make([]IndustryYearTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, IndustryYearTotal{Industry: k.industry, Year: k.year, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].TotalLaidOff != out[j].TotalLaidOff {
			return out[i].TotalLaidOff > out[j].TotalLaidOff
		}
		return out[i].Industry < out[j].Industry
	})
	return out
}

// TopCompanies returns the n companies with the largest cumulative layoffs,
// descending. n <= 0 returns every company.
func TopCompanies(records []domain.LayoffRecord, n int) []CompanyTotal {
	sums := make(map[string]int64)
	for _, r := range records {
		if r.TotalLaidOff == nil {
			continue
		}
		sums[r.Company] += *r.TotalLaidOff
	}

	out := make([]CompanyTotal, 0, len(sums))
	for company, total := range sums {
		out = append(out, CompanyTotal{Company: company, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalLaidOff != out[j].TotalLaidOff {
			return out[i].TotalLaidOff > out[j].TotalLaidOff
		}
		return out[i].Company < out[j].Company
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CompanySeries returns the month-by-month layoff series for one company,
// ascending by month. Matching is exact on the normalized company name.
func CompanySeries(records []domain.LayoffRecord, company string) []MonthTotal {
	filtered := make([]domain.LayoffRecord, 0, len(records))
	for _, r := range records {
		if r.Company == company {
			filtered = append(filtered, r)
		}
	}
	return ByYearMonth(filtered)
}

// ByCountry sums layoffs per country, descending by total.
func ByCountry(records []domain.LayoffRecord) []CountryTotal {
	sums := make(map[string]int64)
	for _, r := range records {
		if r.TotalLaidOff == nil {
			continue
		}
		sums[r.Country] += *r.TotalLaidOff
	}

	out := make([]CountryTotal, 0, len(sums))
	for country, total := range sums {
		out = append(out, CountryTotal{Country: country, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalLaidOff != out[j].TotalLaidOff {
			return out[i].TotalLaidOff > out[j].TotalLaidOff
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// ByCountryIndustry sums layoffs per country×industry pair, ordered by
// country then descending total.
func ByCountryIndustry(records []domain.LayoffRecord) []CountryIndustryTotal {
	type key struct {
		country  string
		industry string
	}
	sums := make(map[key]int64)
	for _, r := range records {
		if r.TotalLaidOff == nil {
			continue
		}
		sums[key{country: r.Country, industry: industryLabel(r)}] += *r.TotalLaidOff
	}

	out := make([]CountryIndustryTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, CountryIndustryTotal{Country: k.country, Industry: k.industry, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		if out[i].TotalLaidOff != out[j].TotalLaidOff {
			return out[i].TotalLaidOff > out[j].TotalLaidOff
		}
		return out[i].Industry < out[j].Industry
	})
	return out
}

// ByCountryMonth sums layoffs per country per month, ordered by country
// then month.
func ByCountryMonth(records []domain.LayoffRecord) []CountryMonthTotal {
	type key struct {
		country string
		month   string
	}
	sums := make(map[key]int64)
	for _, r := range records {
		month, ok := r.YearMonth()
		if !ok || r.TotalLaidOff == nil {
			continue
		}
		sums[key{country: r.Country, month: month}] += *r.TotalLaidOff
	}

	out := make([]CountryMonthTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, CountryMonthTotal{Country: k.country, Month: k.month, TotalLaidOff: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].Month < out[j].Month
	})
	return out
}

func industryLabel(r domain.LayoffRecord) string {
	if r.Industry == nil {
		return "Unknown"
	}
	return *r.Industry
}
