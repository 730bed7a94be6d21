package pipeline

import (
	"layoffscli/pkg/contracts/domain"
)

func strPtr(s string) *string   { return &s }
func i64Ptr(v int64) *int64     { return &v }
func f64Ptr(v float64) *float64 { return &v }

// record builds a minimally valid working-set record for stage tests.
func record(company string, mutate ...func(*domain.LayoffRecord)) domain.LayoffRecord {
	r := domain.LayoffRecord{
		Company:           company,
		Location:          "SF Bay Area",
		Industry:          strPtr("Tech"),
		TotalLaidOff:      i64Ptr(100),
		PercentageLaidOff: f64Ptr(0.1),
		RawDate:           "3/6/2023",
		Stage:             "Series B",
		Country:           "United States",
	}
	for _, m := range mutate {
		m(&r)
	}
	return r
}
