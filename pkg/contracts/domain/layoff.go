package domain

import (
	"fmt"
	"strings"
	"time"
)

// LayoffRecord represents one observed corporate layoff event. Nullable
// business fields use pointers; nil means the source carried no usable value.
type LayoffRecord struct {
	Company             string     `json:"company" csv:"company"`
	Location            string     `json:"location" csv:"location"`
	Industry            *string    `json:"industry" csv:"industry"`
	TotalLaidOff        *int64     `json:"total_laid_off" csv:"total_laid_off"`
	PercentageLaidOff   *float64   `json:"percentage_laid_off" csv:"percentage_laid_off"`
	RawDate             string     `json:"-" csv:"-"`
	Date                *time.Time `json:"date" csv:"date"`
	Stage               string     `json:"stage" csv:"stage"`
	Country             string     `json:"country" csv:"country"`
	FundsRaisedMillions *int64     `json:"funds_raised_millions" csv:"funds_raised_millions"`
}

// Columns is the required header of the raw feed, in source order.
// A feed with any other column set is rejected before the pipeline runs.
var Columns = []string{
	"company", "location", "industry", "total_laid_off", "percentage_laid_off",
	"date", "stage", "country", "funds_raised_millions",
}

// nullToken marks a nil field inside a tuple key. The unit separator cannot
// appear in the source data, so joined keys stay collision-free.
const (
	nullToken = "\x00"
	keySep    = "\x1f"
)

// TupleKey returns the identity of the record across all nine business
// fields, with the date in its source textual form. Two records with equal
// keys are duplicates of the same observed event.
func (r LayoffRecord) TupleKey() string {
	parts := []string{
		r.Company,
		r.Location,
		stringOrNull(r.Industry),
		int64OrNull(r.TotalLaidOff),
		floatOrNull(r.PercentageLaidOff),
		r.RawDate,
		r.Stage,
		r.Country,
		int64OrNull(r.FundsRaisedMillions),
	}
	return strings.Join(parts, keySep)
}

// HasMagnitude reports whether the record carries any layoff magnitude.
// Records without one are noise for this dataset's purpose.
func (r LayoffRecord) HasMagnitude() bool {
	return r.TotalLaidOff != nil || r.PercentageLaidOff != nil
}

// Year returns the calendar year of the event, or false when the date is
// null and the record is excluded from time-bucketed aggregates.
func (r LayoffRecord) Year() (int, bool) {
	if r.Date == nil {
		return 0, false
	}
	return r.Date.Year(), true
}

// YearMonth returns the event month formatted as YYYY-MM, or false when the
// date is null.
func (r LayoffRecord) YearMonth() (string, bool) {
	if r.Date == nil {
		return "", false
	}
	return r.Date.Format("2006-01"), true
}

func stringOrNull(s *string) string {
	if s == nil {
		return nullToken
	}
	return *s
}

func int64OrNull(v *int64) string {
	if v == nil {
		return nullToken
	}
	return fmt.Sprintf("%d", *v)
}

func floatOrNull(v *float64) string {
	if v == nil {
		return nullToken
	}
	return fmt.Sprintf("%g", *v)
}
