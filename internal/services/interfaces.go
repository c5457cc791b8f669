package services

import (
	"context"
	"time"

	"finsight/internal/models"
	"finsight/internal/sources"

	"github.com/google/uuid"
)

// NormalizerServiceInterface converts provider-specific account and
// transaction shapes into the canonical form. Normalization never throws on
// an unmapped subtype; it falls back to the "other"/"Uncategorized" buckets.
type NormalizerServiceInterface interface {
	// NormalizeConnection canonicalizes one linked connection's payload.
	// Malformed transactions are dropped, not fatal.
	NormalizeConnection(userID uuid.UUID, data *sources.ConnectionData) ([]models.Account, []models.Transaction)

	NormalizeManualAssets(userID uuid.UUID, records []models.ManualAssetRecord) []models.Account
	NormalizeManualLiabilities(userID uuid.UUID, records []models.ManualLiabilityRecord) []models.Account
	NormalizeCryptoHoldings(userID uuid.UUID, records []models.CryptoHoldingRecord) []models.Account
	NormalizeRealEstateEntries(userID uuid.UUID, records []models.RealEstateRecord) []models.Account
	NormalizePensionEntries(userID uuid.UUID, records []models.PensionRecord) []models.Account
	NormalizeAccountSnapshots(userID uuid.UUID, records []models.AccountSnapshotRecord) []models.Account
}

// NetWorthServiceInterface buckets canonical accounts into asset/liability
// categories and totals them.
type NetWorthServiceInterface interface {
	// ComputeNetWorth is pure and idempotent: the same account list always
	// yields the same summary.
	ComputeNetWorth(userID uuid.UUID, accounts []models.Account) *models.MetricsSummary

	// ApplyMonthlyCashFlow fills the monthly income/expense/cash-flow fields
	// from completed transactions in the trailing 30-day window.
	ApplyMonthlyCashFlow(summary *models.MetricsSummary, transactions []models.Transaction, now time.Time)
}

// MetricsValidatorInterface enforces the accounting invariants on a computed
// summary before it leaves the engine.
type MetricsValidatorInterface interface {
	// ValidateSummary logs and flags soft violations on the summary itself
	// and returns ErrDegradedMetrics when a hard sanity bound is exceeded.
	ValidateSummary(summary *models.MetricsSummary, context string) error
}

// TrendServiceInterface groups transactions by time bucket or category and
// computes deltas, percentages, and anomalies.
type TrendServiceInterface interface {
	AnalyzeTrends(transactions []models.Transaction, analysisType models.AnalysisType, dateRange models.DateRange) (*models.TrendResult, error)
}

// ProjectionServiceInterface extrapolates a short forward estimate from
// recent trend points.
type ProjectionServiceInterface interface {
	Project(points []models.TrendPoint, analysisType models.AnalysisType) *models.Projection
}

// NarrativeGeneratorInterface is the black-box prose collaborator. The
// engine must keep working, with rule-based fallback insights, when it is
// unavailable or returns malformed output.
type NarrativeGeneratorInterface interface {
	GenerateInsights(ctx context.Context, summary *models.MetricsSummary, trend *models.TrendResult) ([]string, error)
}

// OverviewOptions carries the per-request knobs for an aggregation run.
type OverviewOptions struct {
	// ForceRefresh bypasses the cache read but still writes the fresh
	// result back.
	ForceRefresh bool
	// DataSource selects demo or live data; resolved before any calculator
	// runs.
	DataSource models.DataSourceKind
	// DateRange, when set, widens the provider fetch window so analyses
	// over periods older than the default lookback still see their data.
	DateRange models.DateRange
}

// AggregationServiceInterface is the orchestrator the request handlers call.
type AggregationServiceInterface interface {
	ComputeOverview(ctx context.Context, userID uuid.UUID, opts OverviewOptions) (*models.Overview, error)
	AnalyzeUserTrends(ctx context.Context, userID uuid.UUID, analysisType models.AnalysisType, dateRange models.DateRange, opts OverviewOptions) (*models.TrendResult, error)
	ProjectUserTrend(ctx context.Context, userID uuid.UUID, analysisType models.AnalysisType, dateRange models.DateRange, opts OverviewOptions) (*models.Projection, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
