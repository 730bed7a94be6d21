package pipeline

import (
	"context"

	"layoffscli/pkg/contracts/domain"
)

// PruneStage removes records with neither a headcount nor a percentage.
// Such rows carry no usable layoff magnitude and are noise for this
// dataset's purpose. This is the terminal stage; its output is the cleaned
// dataset handed to reporting.
type PruneStage struct{}

// NewPruneStage creates the row pruning stage
func NewPruneStage() *PruneStage {
	return &PruneStage{}
}

func (s *PruneStage) ID() string   { return "prune" }
func (s *PruneStage) Name() string { return "Row Pruning" }

func (s *PruneStage) Run(_ context.Context, records []domain.LayoffRecord) ([]domain.LayoffRecord, error) {
	out := make([]domain.LayoffRecord, 0, len(records))
	for _, record := range records {
		if record.HasMagnitude() {
			out = append(out, record)
		}
	}
	return out, nil
}
