package pipeline

import (
	"context"
	"strings"

	"layoffscli/internal/config"
	"layoffscli/pkg/contracts/domain"
)

// NormalizeStage standardizes the text fields: whitespace trimming on
// company/location/industry/stage/country, industry canonicalization by
// configured prefix rules, and removal of all trailing periods from country.
// It never changes the row count.
type NormalizeStage struct {
	rules []config.IndustryRule
}

// NewNormalizeStage creates the field normalization stage with the given
// industry canonicalization rules.
func NewNormalizeStage(rules []config.IndustryRule) *NormalizeStage {
	return &NormalizeStage{rules: rules}
}

func (s *NormalizeStage) ID() string   { return "normalize" }
func (s *NormalizeStage) Name() string { return "Field Normalization" }

func (s *NormalizeStage) Run(_ context.Context, records []domain.LayoffRecord) ([]domain.LayoffRecord, error) {
	out := make([]domain.LayoffRecord, len(records))

	for i, record := range records {
		record.Company = strings.TrimSpace(record.Company)
		record.Location = strings.TrimSpace(record.Location)
		record.Stage = strings.TrimSpace(record.Stage)
		record.Country = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(record.Country), "."))

		if record.Industry != nil {
			industry := strings.TrimSpace(*record.Industry)
			industry = s.canonicalize(industry)
			record.Industry = &industry
		}

		out[i] = record
	}

	return out, nil
}

// canonicalize collapses recognized spelling variants onto one canonical
// label. Matching is exact or by prefix token; this is deliberately not a
// fuzzy-matching system.
func (s *NormalizeStage) canonicalize(industry string) string {
	for _, rule := range s.rules {
		if industry == rule.Prefix || strings.HasPrefix(industry, rule.Prefix) {
			return rule.Canonical
		}
	}
	return industry
}
