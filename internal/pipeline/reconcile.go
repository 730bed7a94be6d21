package pipeline

import (
	"context"
	"log/slog"

	"layoffscli/pkg/contracts/domain"
)

// ReconcileStage flattens the two "missing industry" representations into
// one, then fills null industries from sibling records of the same company.
//
// Company is the authoritative matching key. The fill is a heuristic
// imputation: same-company records overwhelmingly share an industry
// classification, but the source data does not guarantee siblings agree.
// When they disagree, the first non-null industry in working-set order wins
// and the ambiguity is logged rather than silently resolved.
type ReconcileStage struct {
	logger *slog.Logger
}

// NewReconcileStage creates the null/blank reconciliation stage
func NewReconcileStage(logger *slog.Logger) *ReconcileStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileStage{logger: logger.With(slog.String("stage", "reconcile"))}
}

func (s *ReconcileStage) ID() string   { return "reconcile" }
func (s *ReconcileStage) Name() string { return "Null Reconciliation & Inference" }

func (s *ReconcileStage) Run(ctx context.Context, records []domain.LayoffRecord) ([]domain.LayoffRecord, error) {
	out := make([]domain.LayoffRecord, len(records))

	// Step 1: empty-string industry becomes a true null.
	for i, record := range records {
		if record.Industry != nil && *record.Industry == "" {
			record.Industry = nil
		}
		out[i] = record
	}

	// Step 2: collect each company's known industries in stable order.
	industryByCompany := make(map[string]string)
	disagree := make(map[string]bool)
	for _, record := range out {
		if record.Industry == nil {
			continue
		}
		known, ok := industryByCompany[record.Company]
		if !ok {
			industryByCompany[record.Company] = *record.Industry
		} else if known != *record.Industry && !disagree[record.Company] {
			disagree[record.Company] = true
			s.logger.WarnContext(ctx, "sibling records disagree on industry",
				slog.String("company", record.Company),
				slog.String("kept", known),
				slog.String("ignored", *record.Industry))
		}
	}

	// Step 3: fill nulls from siblings. Existing non-null values are never
	// overwritten.
	filled := 0
	for i, record := range out {
		if record.Industry != nil {
			continue
		}
		if industry, ok := industryByCompany[record.Company]; ok {
			v := industry
			out[i].Industry = &v
			filled++
		}
	}

	if filled > 0 {
		s.logger.InfoContext(ctx, "industries inferred from sibling records",
			slog.Int("count", filled))
	}

	return out, nil
}
