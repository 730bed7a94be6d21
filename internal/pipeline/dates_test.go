package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoffscli/pkg/contracts/domain"
)

func TestDateCoercionStage(t *testing.T) {
	stage := NewDateCoercionStage(nil)

	tests := []struct {
		name     string
		raw      string
		want     time.Time
		wantNull bool
	}{
		{name: "plain date", raw: "3/6/2023", want: time.Date(2023, 3, 6, 0, 0, 0, 0, time.UTC)},
		{name: "double digit month and day", raw: "12/16/2022", want: time.Date(2022, 12, 16, 0, 0, 0, 0, time.UTC)},
		{name: "not a date", raw: "not-a-date", wantNull: true},
		{name: "wrong separator", raw: "2023-03-06", wantNull: true},
		{name: "two digit year", raw: "3/6/23", wantNull: true},
		{name: "empty", raw: "", wantNull: true},
		{name: "impossible calendar date", raw: "13/40/2023", wantNull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []domain.LayoffRecord{
				record("Acme", func(r *domain.LayoffRecord) { r.RawDate = tt.raw }),
			}

			out, err := stage.Run(context.Background(), records)
			require.NoError(t, err, "malformed dates must never abort the batch")
			require.Len(t, out, 1, "records with malformed dates are retained")

			if tt.wantNull {
				assert.Nil(t, out[0].Date)
			} else {
				require.NotNil(t, out[0].Date)
				assert.True(t, tt.want.Equal(*out[0].Date))
			}
		})
	}
}

func TestDateCoercionStage_RowCountUnchanged(t *testing.T) {
	stage := NewDateCoercionStage(nil)

	records := []domain.LayoffRecord{
		record("Acme"),
		record("Globex", func(r *domain.LayoffRecord) { r.RawDate = "garbage" }),
	}

	out, err := stage.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
