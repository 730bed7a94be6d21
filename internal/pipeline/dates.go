package pipeline

import (
	"context"
	"log/slog"
	"time"

	"layoffscli/pkg/contracts/domain"
)

// rawDateLayout is the feed's textual date pattern: month/day/4-digit-year,
// without zero padding.
const rawDateLayout = "1/2/2006"

// DateCoercionStage reinterprets the textual date field as a calendar date.
// A value that does not match the expected pattern yields a null date for
// that record; malformed dates are a realistic feed condition and never
// abort the batch.
type DateCoercionStage struct {
	logger *slog.Logger
}

// NewDateCoercionStage creates the date coercion stage
func NewDateCoercionStage(logger *slog.Logger) *DateCoercionStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DateCoercionStage{logger: logger.With(slog.String("stage", "date_coercion"))}
}

func (s *DateCoercionStage) ID() string   { return "date_coercion" }
func (s *DateCoercionStage) Name() string { return "Date Coercion" }

func (s *DateCoercionStage) Run(ctx context.Context, records []domain.LayoffRecord) ([]domain.LayoffRecord, error) {
	out := make([]domain.LayoffRecord, len(records))
	malformed := 0

	for i, record := range records {
		if record.RawDate == "" {
			record.Date = nil
		} else if parsed, err := time.Parse(rawDateLayout, record.RawDate); err == nil {
			d := parsed
			record.Date = &d
		} else {
			record.Date = nil
			malformed++
			s.logger.DebugContext(ctx, "malformed date coerced to null",
				slog.String("company", record.Company),
				slog.String("value", record.RawDate))
		}
		out[i] = record
	}

	if malformed > 0 {
		s.logger.WarnContext(ctx, "malformed dates in feed",
			slog.Int("count", malformed))
	}

	return out, nil
}
