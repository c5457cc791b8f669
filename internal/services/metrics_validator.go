package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finsight/internal/config"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrDegradedMetrics marks a summary whose numbers failed a hard sanity
	// check and must not be shown as-is.
	ErrDegradedMetrics = errors.New("computed metrics failed hard sanity check")
)

// bucketTolerance absorbs the residue of independently rounded buckets.
var bucketTolerance = decimal.NewFromFloat(0.01)

// metricsValidator runs accounting-identity checks on a computed summary.
// Soft violations are flagged and logged but never block the response or
// mutate the numbers; only hard sanity violations do.
type metricsValidator struct {
	engineConfig *config.EngineConfig
}

func NewMetricsValidator(engineConfig *config.EngineConfig) MetricsValidatorInterface {
	return &metricsValidator{engineConfig: engineConfig}
}

// ValidateSummary checks the derived-field identities and bucket sums, then
// the hard sanity bound. The context string names the pipeline stage for the
// log line.
func (v *metricsValidator) ValidateSummary(summary *models.MetricsSummary, context string) error {
	v.checkIdentity(summary, context,
		"net_worth_identity",
		summary.NetWorth,
		summary.TotalAssets.Sub(summary.TotalLiabilities))

	v.checkIdentity(summary, context,
		"cash_flow_identity",
		summary.MonthlyCashFlow,
		summary.MonthlyIncome.Sub(summary.MonthlyExpenses))

	v.checkBucketSum(summary, context, "assets_by_type_sum", summary.AssetsByType, summary.TotalAssets)
	v.checkBucketSum(summary, context, "liabilities_by_type_sum", summary.LiabilitiesByType, summary.TotalLiabilities)

	return v.checkSanity(summary, context)
}

// checkIdentity verifies a derived field equals the expression it is defined
// by. Both sides are already rounded, so comparison is exact.
func (v *metricsValidator) checkIdentity(summary *models.MetricsSummary, context, name string, actual, expected decimal.Decimal) {
	if actual.Equal(expected) {
		return
	}
	summary.Flag(name)
	slog.Warn("metrics identity violation",
		"check", name,
		"context", context,
		"user_id", summary.UserID,
		"actual", actual.String(),
		"expected", expected.String())
}

// checkBucketSum verifies the per-category breakdown reconciles with its
// total within the rounding tolerance.
func (v *metricsValidator) checkBucketSum(summary *models.MetricsSummary, context, name string, buckets map[models.Category]decimal.Decimal, total decimal.Decimal) {
	var sum decimal.Decimal
	for _, amount := range buckets {
		sum = sum.Add(amount)
	}
	if sum.Sub(total).Abs().LessThanOrEqual(bucketTolerance) {
		return
	}
	summary.Flag(name)
	slog.Warn("metrics bucket sum violation",
		"check", name,
		"context", context,
		"user_id", summary.UserID,
		"bucket_sum", sum.String(),
		"total", total.String())
}

// checkSanity enforces the hard bounds: totals must be non-negative
// magnitudes and no headline figure may exceed the configured bound. A
// violation here means a calculator bug or corrupted upstream data, not a
// plausible portfolio.
func (v *metricsValidator) checkSanity(summary *models.MetricsSummary, context string) error {
	if summary.TotalAssets.IsNegative() || summary.TotalLiabilities.IsNegative() {
		slog.Error("metrics hard sanity violation: negative total",
			"context", context,
			"user_id", summary.UserID,
			"total_assets", summary.TotalAssets.String(),
			"total_liabilities", summary.TotalLiabilities.String())
		return fmt.Errorf("%w: negative total magnitude", ErrDegradedMetrics)
	}

	bound := decimal.NewFromFloat(v.engineConfig.SanityBound)
	for name, value := range map[string]decimal.Decimal{
		"total_assets":      summary.TotalAssets,
		"total_liabilities": summary.TotalLiabilities,
		"net_worth":         summary.NetWorth,
	} {
		if value.Abs().GreaterThan(bound) {
			slog.Error("metrics hard sanity violation: magnitude out of bounds",
				"context", context,
				"user_id", summary.UserID,
				"field", name,
				"value", value.String(),
				"bound", bound.String())
			return fmt.Errorf("%w: %s out of bounds", ErrDegradedMetrics, name)
		}
	}

	return nil
}
