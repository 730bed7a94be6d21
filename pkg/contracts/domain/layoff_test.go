package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestTupleKey(t *testing.T) {
	base := LayoffRecord{
		Company:  "Acme",
		Location: "SF Bay Area",
		Industry: strPtr("Tech"),
		RawDate:  "3/6/2023",
		Stage:    "Series B",
		Country:  "United States",
	}

	same := base
	assert.Equal(t, base.TupleKey(), same.TupleKey())

	differentCountry := base
	differentCountry.Country = "Canada"
	assert.NotEqual(t, base.TupleKey(), differentCountry.TupleKey())

	// Null and empty string are different identities before reconciliation.
	nullIndustry := base
	nullIndustry.Industry = nil
	emptyIndustry := base
	emptyIndustry.Industry = strPtr("")
	assert.NotEqual(t, nullIndustry.TupleKey(), emptyIndustry.TupleKey())
}

func TestHasMagnitude(t *testing.T) {
	pct := 0.2

	assert.True(t, LayoffRecord{TotalLaidOff: i64Ptr(10)}.HasMagnitude())
	assert.True(t, LayoffRecord{PercentageLaidOff: &pct}.HasMagnitude())
	assert.True(t, LayoffRecord{TotalLaidOff: i64Ptr(10), PercentageLaidOff: &pct}.HasMagnitude())
	assert.False(t, LayoffRecord{}.HasMagnitude())
}

func TestYearAndYearMonth(t *testing.T) {
	d := time.Date(2022, time.December, 16, 0, 0, 0, 0, time.UTC)
	r := LayoffRecord{Date: &d}

	year, ok := r.Year()
	assert.True(t, ok)
	assert.Equal(t, 2022, year)

	month, ok := r.YearMonth()
	assert.True(t, ok)
	assert.Equal(t, "2022-12", month)

	undated := LayoffRecord{}
	_, ok = undated.Year()
	assert.False(t, ok)
	_, ok = undated.YearMonth()
	assert.False(t, ok)
}
