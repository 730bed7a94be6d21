package reports

import (
	"math"
	"sort"

	"layoffscli/pkg/contracts/domain"
)

// OutlierReport lists the records whose layoff count sits at least two
// standard deviations above the dataset mean.
type OutlierReport struct {
	Mean      float64               `json:"mean"`
	StdDev    float64               `json:"std_dev"`
	Threshold float64               `json:"threshold"`
	Records   []domain.LayoffRecord `json:"records"`
}

// Outliers flags records with total_laid_off >= mean + 2×stddev, computed
// over every record that carries a count. Stddev is the population form.
// A zero stddev means the counts are uniform and nothing is flagged.
// Flagged records are returned largest first.
func Outliers(records []domain.LayoffRecord) OutlierReport {
	var (
		sum float64
		n   int
	)
	for _, r := range records {
		if r.TotalLaidOff != nil {
			sum += float64(*r.TotalLaidOff)
			n++
		}
	}
	if n == 0 {
		return OutlierReport{Records: []domain.LayoffRecord{}}
	}

	mean := sum / float64(n)
	var sqsum float64
	for _, r := range records {
		if r.TotalLaidOff != nil {
			d := float64(*r.TotalLaidOff) - mean
			sqsum += d * d
		}
	}
	stddev := math.Sqrt(sqsum / float64(n))

	report := OutlierReport{
		Mean:      mean,
		StdDev:    stddev,
		Threshold: mean + 2*stddev,
		Records:   []domain.LayoffRecord{},
	}
	if stddev == 0 {
		return report
	}

	for _, r := range records {
		if r.TotalLaidOff != nil && float64(*r.TotalLaidOff) >= report.Threshold {
			report.Records = append(report.Records, r)
		}
	}
	sort.SliceStable(report.Records, func(i, j int) bool {
		return *report.Records[i].TotalLaidOff > *report.Records[j].TotalLaidOff
	})
	return report
}
