package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoffscli/pkg/contracts/domain"
)

func TestOutliers(t *testing.T) {
	counts := []int64{10, 10, 10, 10, 1000}
	records := make([]domain.LayoffRecord, 0, len(counts))
	for _, c := range counts {
		records = append(records, cleaned("Co", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(c) }))
	}

	got := Outliers(records)

	assert.InDelta(t, 208, got.Mean, 0.01)
	assert.InDelta(t, 396, got.StdDev, 0.01)
	require.Len(t, got.Records, 1, "only the extreme record is flagged")
	assert.Equal(t, int64(1000), *got.Records[0].TotalLaidOff)
}

func TestOutliers_UniformCounts(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("A"),
		cleaned("B"),
		cleaned("C"),
	}

	got := Outliers(records)
	assert.Zero(t, got.StdDev)
	assert.Empty(t, got.Records, "a uniform dataset has no outliers")
}

func TestOutliers_SortedLargestFirst(t *testing.T) {
	counts := make([]int64, 0, 22)
	for i := 0; i < 20; i++ {
		counts = append(counts, 10)
	}
	counts = append(counts, 900, 1000)

	records := make([]domain.LayoffRecord, 0, len(counts))
	for _, c := range counts {
		records = append(records, cleaned("Co", func(r *domain.LayoffRecord) { r.TotalLaidOff = i64Ptr(c) }))
	}

	got := Outliers(records)
	require.Len(t, got.Records, 2)
	assert.Equal(t, int64(1000), *got.Records[0].TotalLaidOff)
	assert.Equal(t, int64(900), *got.Records[1].TotalLaidOff)
}

func TestOutliers_NullCountsIgnored(t *testing.T) {
	records := []domain.LayoffRecord{
		cleaned("A", func(r *domain.LayoffRecord) { r.TotalLaidOff = nil }),
	}

	got := Outliers(records)
	assert.Empty(t, got.Records)
	assert.Zero(t, got.Mean)
}
