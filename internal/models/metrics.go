package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MoneyPlaces is the number of decimal places every monetary figure is
	// rounded to. All derived sums go through RoundMoney so the same figure
	// can never round two different ways in two places.
	MoneyPlaces = 2

	MetricsStatusOK     = "ok"
	MetricsStatusNoData = "no_data"
)

// RoundMoney is the single shared rounding function for monetary values.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// MetricsSummary is the validated output of the aggregation engine.
// NetWorth and MonthlyCashFlow are always derived from their components,
// never computed independently.
type MetricsSummary struct {
	UserID            uuid.UUID                    `json:"user_id"`
	TotalAssets       decimal.Decimal              `json:"total_assets"`
	TotalLiabilities  decimal.Decimal              `json:"total_liabilities"`
	NetWorth          decimal.Decimal              `json:"net_worth"`
	LiquidAssets      decimal.Decimal              `json:"liquid_assets"`
	Investments       decimal.Decimal              `json:"investments"`
	CryptoBalance     decimal.Decimal              `json:"crypto_balance"`
	RealEstate        decimal.Decimal              `json:"real_estate"`
	Pension           decimal.Decimal              `json:"pension"`
	MonthlyIncome     decimal.Decimal              `json:"monthly_income"`
	MonthlyExpenses   decimal.Decimal              `json:"monthly_expenses"`
	MonthlyCashFlow   decimal.Decimal              `json:"monthly_cash_flow"`
	AssetsByType      map[Category]decimal.Decimal `json:"assets_by_type"`
	LiabilitiesByType map[Category]decimal.Decimal `json:"liabilities_by_type"`

	// Status distinguishes "no accounts anywhere" from a zeroed-out result
	// caused by upstream failure.
	Status string `json:"status"`

	// Flags records soft invariant violations found by the validator. The
	// summary is still returned; the numbers are never silently recomputed.
	Flags []string `json:"flags,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// NewMetricsSummary returns a zeroed summary with initialized bucket maps.
func NewMetricsSummary(userID uuid.UUID) *MetricsSummary {
	return &MetricsSummary{
		UserID:            userID,
		TotalAssets:       decimal.Zero,
		TotalLiabilities:  decimal.Zero,
		NetWorth:          decimal.Zero,
		LiquidAssets:      decimal.Zero,
		Investments:       decimal.Zero,
		CryptoBalance:     decimal.Zero,
		RealEstate:        decimal.Zero,
		Pension:           decimal.Zero,
		MonthlyIncome:     decimal.Zero,
		MonthlyExpenses:   decimal.Zero,
		MonthlyCashFlow:   decimal.Zero,
		AssetsByType:      make(map[Category]decimal.Decimal),
		LiabilitiesByType: make(map[Category]decimal.Decimal),
		Status:            MetricsStatusOK,
		GeneratedAt:       time.Now(),
	}
}

// Flag appends a soft-violation marker to the summary.
func (m *MetricsSummary) Flag(reason string) {
	m.Flags = append(m.Flags, reason)
}

// IsFlagged reports whether any soft invariant violation was recorded.
func (m *MetricsSummary) IsFlagged() bool {
	return len(m.Flags) > 0
}
