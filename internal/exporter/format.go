package exporter

import (
	"fmt"
	"time"
)

// cleanedDateLayout is the date form used in cleaned outputs. ISO dates sort
// lexicographically, unlike the raw feed's M/D/YYYY text.
const cleanedDateLayout = "2006-01-02"

// formatNullableInt renders a nullable count; nulls become empty cells
func formatNullableInt(v *int64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

// formatNullableFloat renders a nullable ratio with two decimal places
func formatNullableFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

// formatNullableDate renders a nullable date as ISO 8601
func formatNullableDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(cleanedDateLayout)
}

// formatNullableString renders a nullable text field
func formatNullableString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
