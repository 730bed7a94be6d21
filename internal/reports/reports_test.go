package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"layoffscli/pkg/contracts/domain"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }
func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func cleaned(company string, mutate ...func(*domain.LayoffRecord)) domain.LayoffRecord {
	r := domain.LayoffRecord{
		Company:      company,
		Location:     "SF Bay Area",
		Industry:     strPtr("Tech"),
		TotalLaidOff: i64Ptr(100),
		Date:         datePtr(2023, time.March, 6),
		Stage:        "Series B",
		Country:      "United States",
	}
	for _, m := range mutate {
		m(&r)
	}
	return r
}

func TestTotalLaidOff(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme"),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(250) }),
		cleaned("Hooli", func(r *domain.LayoffRecord) { r.TotalLaidOff = nil }),
	}
	assert.Equal(t, int64(350), TotalLaidOff(records))
}

func TestByYear(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.January, 5) }),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.Date = datePtr(2022, time.November, 10) }),
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.July, 1) }),
		cleaned("Undated", func(r *domain.LayoffRecord) { r.Date = nil }),
	}

	got := ByYear(records)
	assert.Equal(t, []YearTotal{
		{Year: 2022, TotalLaidOff: 100},
		{Year: 2023, TotalLaidOff: 200},
	}, got, "null dates are excluded from time-bucketed aggregates")
}

func TestByYearMonth(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.January, 5) }),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.January, 20) }),
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2022, time.December, 1) }),
	}

	got := ByYearMonth(records)
	assert.Equal(t, []MonthTotal{
		{Month: "2022-12", TotalLaidOff: 100},
		{Month: "2023-01", TotalLaidOff: 200},
	}, got)
}

func TestByIndustry(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme"),
		cleaned("Globex", func(r *domain.LayoffRecord) {
			r.Industry = strPtr("Retail")
			r.TotalLaidOff = i64Ptr(500)
		}),
		cleaned("Hooli", func(r *domain.LayoffRecord) { r.Industry = nil }),
	}

	got := ByIndustry(records)
	assert.Equal(t, []IndustryTotal{
		{Industry: "Retail", TotalLaidOff: 500},
		{Industry: "Tech", TotalLaidOff: 100},
		{Industry: "Unknown", TotalLaidOff: 100},
	}, got)
}

func TestByIndustryYear(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2022, time.March, 1) }),
		cleaned("Globex", func(r *domain.LayoffRecord) {
			r.Industry = strPtr("Retail")
			r.Date = datePtr(2022, time.April, 1)
			r.TotalLaidOff = i64Ptr(700)
		}),
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.March, 1) }),
	}

	got := ByIndustryYear(records)
	assert.Equal(t, []IndustryYearTotal{
		{Industry: "Retail", Year: 2022, TotalLaidOff: 700},
		{Industry: "Tech", Year: 2022, TotalLaidOff: 100},
		{Industry: "Tech", Year: 2023, TotalLaidOff: 100},
	}, got)
}

func TestTopCompanies(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme"),
		cleaned("Acme", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(400) }),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(300) }),
		cleaned("Hooli", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(50) }),
	}

	got := TopCompanies(records, 2)
	assert.Equal(t, []CompanyTotal{
		{Company: "Acme", TotalLaidOff: 500},
		{Company: "Globex", TotalLaidOff: 300},
	}, got)

	assert.Len(t, TopCompanies(records, 0), 3, "non-positive n returns every company")
}

func TestCompanySeries(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.January, 5) }),
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.March, 5) }),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.January, 5) }),
	}

	got := CompanySeries(records, "Acme")
	assert.Equal(t, []MonthTotal{
		{Month: "2023-01", TotalLaidOff: 100},
		{Month: "2023-03", TotalLaidOff: 100},
	}, got)

	assert.Empty(t, CompanySeries(records, "NoSuchCo"))
}

func TestByCountry(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme"),
		cleaned("Maple", func(r *domain.LayoffRecord) {
			r.Country = "Canada"
			r.TotalLaidOff = i64Ptr(800)
		}),
	}

	got := ByCountry(records)
	assert.Equal(t, []CountryTotal{
		{Country: "Canada", TotalLaidOff: 800},
		{Country: "United States", TotalLaidOff: 100},
	}, got)
}

func TestByCountryIndustry(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme"),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.Industry = strPtr("Retail") }),
		cleaned("Maple", func(r *domain.LayoffRecord) { r.Country = "Canada" }),
	}

	got := ByCountryIndustry(records)
	assert.Equal(t, []CountryIndustryTotal{
		{Country: "Canada", Industry: "Tech", TotalLaidOff: 100},
		{Country: "United States", Industry: "Retail", TotalLaidOff: 100},
		{Country: "United States", Industry: "Tech", TotalLaidOff: 100},
	}, got)
}

func TestByCountryMonth(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.February, 1) }),
		cleaned("Acme", func(r *domain.LayoffRecord) { r.Date = datePtr(2023, time.January, 1) }),
		cleaned("Maple", func(r *domain.LayoffRecord) {
			r.Country = "Canada"
			r.Date = datePtr(2023, time.January, 1)
		}),
	}

	got := ByCountryMonth(records)
	assert.Equal(t, []CountryMonthTotal{
		{Country: "Canada", Month: "2023-01", TotalLaidOff: 100},
		{Country: "United States", Month: "2023-01", TotalLaidOff: 100},
		{Country: "United States", Month: "2023-02", TotalLaidOff: 100},
	}, got)
}

func TestBuildBundle(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("Acme"),
		cleaned("Globex", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(300) }),
	}

	bundle := BuildBundle(records, 0)

	assert.Equal(t, 2, bundle.RecordCount)
	assert.Equal(t, int64(400), bundle.TotalLaidOff)
	assert.Len(t, bundle.TopCompanies, 2)
	assert.Len(t, bundle.FundingBuckets, 7)
	assert.False(t, bundle.GeneratedAt.IsZero())
}
