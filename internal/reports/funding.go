package reports

import "layoffscli/pkg/contracts/domain"

// FundingBucket aggregates companies whose cumulative funds raised fall
// into one fixed range.
type FundingBucket struct {
	Range        string `json:"range"`
	Companies    int    `json:"companies"`
	TotalLaidOff int64  `json:"total_laid_off"`
}

// fundingRanges is the fixed, ordered bucket list. Bounds are in millions;
// each bucket is inclusive of its lower bound and exclusive of the upper.
var fundingRanges = []struct {
	label string
	min   int64
	max   int64 // exclusive; -1 means unbounded
}{
	{label: "0M", min: 0, max: 1},
	{label: "<10M", min: 1, max: 10},
	{label: "10M-100M", min: 10, max: 100},
	{label: "100M-1B", min: 100, max: 1_000},
	{label: "1B-10B", min: 1_000, max: 10_000},
	{label: "10B-100B", min: 10_000, max: 100_000},
	{label: ">100B", min: 100_000, max: -1},
}

// FundingBuckets groups companies by cumulative funds raised and sums their
// layoffs per bucket. A company's funding is the largest funds_raised value
// across its records; the figure repeats per event and must not be summed.
// Companies with no funding data are excluded. Every bucket appears in the
// result, empty or not, in the fixed range order.
func FundingBuckets(records []domain.LayoffRecord) []FundingBucket {
	type companyAgg struct {
		funds   int64
		known   bool
		layoffs int64
	}
	byCompany := make(map[string]*companyAgg)
	for _, r := range records {
		agg := byCompany[r.Company]
		if agg == nil {
			agg = &companyAgg{}
			byCompany[r.Company] = agg
		}
		if r.FundsRaisedMillions != nil {
			if !agg.known || *r.FundsRaisedMillions > agg.funds {
				agg.funds = *r.FundsRaisedMillions
			}
			agg.known = true
		}
		if r.TotalLaidOff != nil {
			agg.layoffs += *r.TotalLaidOff
		}
	}

	out := make([]FundingBucket, len(fundingRanges))
	for i, rng := range fundingRanges {
		out[i] = FundingBucket{Range: rng.label}
	}
	for _, agg := range byCompany {
		if !agg.known {
			continue
		}
		for i, rng := range fundingRanges {
			if agg.funds >= rng.min && (rng.max < 0 || agg.funds < rng.max) {
				out[i].Companies++
				out[i].TotalLaidOff += agg.layoffs
				break
			}
		}
	}
	return out
}
