package pipeline

import (
	"context"

	"layoffscli/pkg/contracts/domain"
)

// DedupStage keeps at most one record per distinct 9-tuple of business
// fields, with the date in its source textual form. The first record in
// working-set order wins; source order carries no semantic priority, so the
// choice among byte-identical rows is arbitrary but stable.
type DedupStage struct{}

// NewDedupStage creates the deduplication stage
func NewDedupStage() *DedupStage {
	return &DedupStage{}
}

func (s *DedupStage) ID() string   { return "dedup" }
func (s *DedupStage) Name() string { return "Deduplication" }

// Run retains only the first record of each tuple-equality partition.
// Running it twice over its own output changes nothing.
func (s *DedupStage) Run(_ context.Context, records []domain.LayoffRecord) ([]domain.LayoffRecord, error) {
	seen := make(map[string]bool, len(records))
	out := make([]domain.LayoffRecord, 0, len(records))

	for _, record := range records {
		key := record.TupleKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, record)
	}

	return out, nil
}
