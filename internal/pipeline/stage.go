package pipeline

import (
	"context"
	"time"

	"layoffscli/pkg/contracts/domain"
)

// Stage is one transformation over the whole working set. A stage consumes
// the prior stage's full output and returns the next working set; it never
// mutates shared state outside the slice it is handed.
type Stage interface {
	// ID returns the unique identifier for this stage
	ID() string

	// Name returns the human-readable name for this stage
	Name() string

	// Run executes the stage against the working set
	Run(ctx context.Context, records []domain.LayoffRecord) ([]domain.LayoffRecord, error)
}

// StageStatus represents the terminal status of a stage within a run
type StageStatus string

const (
	StageStatusCompleted StageStatus = "completed"
	StageStatusFailed    StageStatus = "failed"
)

// StageResult records what one stage did during a run
type StageResult struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Status     StageStatus   `json:"status"`
	RecordsIn  int           `json:"records_in"`
	RecordsOut int           `json:"records_out"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
}

// Dropped returns how many records the stage removed from the working set
func (r StageResult) Dropped() int {
	return r.RecordsIn - r.RecordsOut
}
