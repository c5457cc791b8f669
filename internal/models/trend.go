package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisType selects how the trend analyzer buckets transactions.
type AnalysisType string

const (
	AnalysisMonthly  AnalysisType = "monthly"
	AnalysisWeekly   AnalysisType = "weekly"
	AnalysisDaily    AnalysisType = "daily"
	AnalysisCategory AnalysisType = "category"
	AnalysisSeasonal AnalysisType = "seasonal"
	AnalysisAnomaly  AnalysisType = "anomaly"
)

// IsValidAnalysisType checks the selector against the supported set.
func IsValidAnalysisType(t AnalysisType) bool {
	switch t {
	case AnalysisMonthly, AnalysisWeekly, AnalysisDaily,
		AnalysisCategory, AnalysisSeasonal, AnalysisAnomaly:
		return true
	default:
		return false
	}
}

// TrendPoint is one bucket of a trend series. PercentChange is relative to
// the immediately preceding point in the same series and is omitted (nil)
// when the previous bucket was zero, never Inf or NaN.
type TrendPoint struct {
	Period           string          `json:"period"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionCount int             `json:"transaction_count"`
	PercentChange    *float64        `json:"percent_change,omitempty"`
	Anomaly          bool            `json:"anomaly,omitempty"`
}

// TrendResult is an ordered trend series plus the deterministic rule-based
// insight strings for that analysis type. These insights are the fallback
// when the narrative generator collaborator is unavailable.
type TrendResult struct {
	Type     AnalysisType `json:"type"`
	Points   []TrendPoint `json:"points"`
	Insights []string     `json:"insights"`
}

// DateRange bounds a trend analysis. Both ends are inclusive calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls inside the range, ignoring time of day.
func (r DateRange) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// Projection is a short forward estimate extrapolated from recent trend
// points. NextPeriod is floored at zero; Confidence is an integer in [0,100].
type Projection struct {
	NextPeriod decimal.Decimal `json:"next_period"`
	Confidence int             `json:"confidence"`
	Factors    []string        `json:"factors"`
	BasedOn    int             `json:"based_on"`
}
