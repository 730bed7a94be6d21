package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"layoffscli/internal/config"
	"layoffscli/pkg/contracts/domain"
)

// Pipeline runs the cleaning stages in their fixed order:
//
//	Raw → Deduplicated → Normalized → DateCoerced → NullsReconciled → Pruned
//
// Each stage consumes the prior stage's full output. There is no branching,
// no partial handoff and no retry; a run either completes or aborts.
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

// RunResult is the outcome of one pipeline run
type RunResult struct {
	RunID     string              `json:"run_id"`
	StartedAt time.Time           `json:"started_at"`
	Duration  time.Duration       `json:"duration"`
	Stages    []StageResult       `json:"stages"`
	Records   []domain.LayoffRecord `json:"-"`
}

// New builds the standard cleaning pipeline for the given cleaning rules.
func New(cfg config.CleaningConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	rules := cfg.IndustryRules
	if len(rules) == 0 {
		rules = config.DefaultIndustryRules()
	}

	return &Pipeline{
		logger: logger.With(slog.String("component", "pipeline")),
		stages: []Stage{
			NewDedupStage(),
			NewNormalizeStage(rules),
			NewDateCoercionStage(logger),
			NewReconcileStage(logger),
			NewPruneStage(),
		},
	}
}

// Stages returns the stages in execution order.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Run executes the full pipeline over a copy of the raw records. The raw
// slice is never mutated; destructive cleaning only ever touches the staging
// copy.
func (p *Pipeline) Run(ctx context.Context, raw []domain.LayoffRecord) (*RunResult, error) {
	result := &RunResult{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}

	p.logger.InfoContext(ctx, "pipeline run started",
		slog.String("run_id", result.RunID),
		slog.Int("raw_records", len(raw)))

	// Staging copy; the raw working set stays untouched.
	working := make([]domain.LayoffRecord, len(raw))
	copy(working, raw)

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline run %s aborted before stage %s: %w", result.RunID, stage.ID(), err)
		}

		stageResult := StageResult{
			ID:        stage.ID(),
			Name:      stage.Name(),
			RecordsIn: len(working),
		}

		start := time.Now()
		out, err := stage.Run(ctx, working)
		stageResult.Duration = time.Since(start)

		if err != nil {
			stageResult.Status = StageStatusFailed
			stageResult.Error = err.Error()
			result.Stages = append(result.Stages, stageResult)

			p.logger.ErrorContext(ctx, "pipeline stage failed",
				slog.String("run_id", result.RunID),
				slog.String("stage", stage.ID()),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("stage %s failed: %w", stage.ID(), err)
		}

		stageResult.Status = StageStatusCompleted
		stageResult.RecordsOut = len(out)
		result.Stages = append(result.Stages, stageResult)
		observeStage(stage.ID(), stageResult)

		p.logger.InfoContext(ctx, "pipeline stage completed",
			slog.String("run_id", result.RunID),
			slog.String("stage", stage.ID()),
			slog.Int("records_in", stageResult.RecordsIn),
			slog.Int("records_out", stageResult.RecordsOut),
			slog.Duration("duration", stageResult.Duration))

		working = out
	}

	result.Records = working
	result.Duration = time.Since(result.StartedAt)

	p.logger.InfoContext(ctx, "pipeline run completed",
		slog.String("run_id", result.RunID),
		slog.Int("cleaned_records", len(result.Records)),
		slog.Duration("duration", result.Duration))

	return result, nil
}
