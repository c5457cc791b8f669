package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"finsight/internal/cache"
	"finsight/internal/config"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/sources"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// decimalFromFloat converts a provider float, zeroing non-finite values that
// slipped past normalization.
func decimalFromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

const (
	viewOverview = "overview"
	viewTrends   = "trends"
)

// AggregationDeps bundles the orchestrator's collaborators.
type AggregationDeps struct {
	Provider     sources.AccountProvider
	DemoProvider sources.AccountProvider
	Store        repositories.DocumentStoreInterface
	Normalizer   NormalizerServiceInterface
	NetWorth     NetWorthServiceInterface
	Validator    MetricsValidatorInterface
	Trends       TrendServiceInterface
	Projections  ProjectionServiceInterface
	Narrative    NarrativeGeneratorInterface
	Cache        cache.Cache
	History      cache.HistoryStore
	Metrics      MetricsRecorderInterface
	Config       *config.Config
}

// aggregationService runs the full pipeline: collect from every source in
// parallel, normalize, compute, validate, enrich with deltas and insights.
// One failing source never fails the run; it is recorded in FailedSources and
// the rest of the picture is still returned.
type aggregationService struct {
	deps AggregationDeps
	now  func() time.Time
}

func NewAggregationService(deps AggregationDeps) AggregationServiceInterface {
	return &aggregationService{
		deps: deps,
		now:  time.Now,
	}
}

// collected is the raw harvest of one aggregation run.
type collected struct {
	mu sync.Mutex

	connections   []sources.ConnectionData
	liveFetchGaps bool

	manualAssets      []models.ManualAssetRecord
	manualLiabilities []models.ManualLiabilityRecord
	cryptoHoldings    []models.CryptoHoldingRecord
	realEstate        []models.RealEstateRecord
	pensions          []models.PensionRecord
	snapshots         []models.AccountSnapshotRecord

	failedSources []string
}

func (c *collected) fail(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failedSources = append(c.failedSources, source)
}

func (s *aggregationService) ComputeOverview(ctx context.Context, userID uuid.UUID, opts OverviewOptions) (*models.Overview, error) {
	start := s.now()
	kind := s.resolveDataSource(opts)
	fetchRange := s.fetchRange(opts.DateRange)

	cacheKey := cache.Key(userID, viewOverview, string(kind),
		fetchRange.Start.Format(models.DateLayout), fetchRange.End.Format(models.DateLayout))
	if !opts.ForceRefresh {
		if cached, ok := s.cachedOverview(ctx, cacheKey); ok {
			return cached, nil
		}
	}
	s.deps.Metrics.IncrementCounter("cache.miss", map[string]string{"view": viewOverview})

	harvest := s.collect(ctx, userID, kind, fetchRange)
	accounts, transactions := s.normalize(userID, harvest)

	summary := s.deps.NetWorth.ComputeNetWorth(userID, accounts)
	s.deps.NetWorth.ApplyMonthlyCashFlow(summary, transactions, start)

	if err := s.deps.Validator.ValidateSummary(summary, "overview"); err != nil {
		s.deps.Metrics.IncrementCounter("aggregation.failed", map[string]string{"source": string(kind)})
		return nil, err
	}

	s.deps.History.Append(userID, summary.NetWorth, start)
	deltas := s.deps.History.Deltas(userID, summary.NetWorth, start)

	overview := &models.Overview{
		UserID:        userID,
		Accounts:      accounts,
		Transactions:  transactions,
		Metrics:       summary,
		Deltas:        deltas,
		Insights:      s.insights(ctx, summary, transactions, start),
		DataSource:    kind,
		GeneratedAt:   start,
		FailedSources: harvest.failedSources,
	}

	if kind == models.DataSourceLive && !harvest.liveFetchGaps {
		s.writeBackSnapshots(userID, harvest.connections, start)
	}

	s.storeCached(ctx, cacheKey, overview)
	s.recordRun(userID, summary, kind, start)

	return overview, nil
}

func (s *aggregationService) AnalyzeUserTrends(ctx context.Context, userID uuid.UUID, analysisType models.AnalysisType, dateRange models.DateRange, opts OverviewOptions) (*models.TrendResult, error) {
	if !models.IsValidAnalysisType(analysisType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnalysisType, analysisType)
	}
	dateRange = s.defaultRange(dateRange)

	cacheKey := cache.Key(userID, viewTrends, string(analysisType),
		dateRange.Start.Format(models.DateLayout), dateRange.End.Format(models.DateLayout))
	if !opts.ForceRefresh {
		if value, _, ok := s.deps.Cache.Get(ctx, cacheKey); ok {
			var result models.TrendResult
			if err := json.Unmarshal(value, &result); err == nil {
				s.deps.Metrics.IncrementCounter("cache.hit", map[string]string{"view": viewTrends})
				return &result, nil
			}
		}
	}
	s.deps.Metrics.IncrementCounter("cache.miss", map[string]string{"view": viewTrends})

	// The overview fetch must cover the analysis window, not just the
	// default lookback, or a historical range would come back empty.
	opts.DateRange = dateRange
	overview, err := s.ComputeOverview(ctx, userID, opts)
	if err != nil {
		return nil, err
	}

	result, err := s.deps.Trends.AnalyzeTrends(overview.Transactions, analysisType, dateRange)
	if err != nil {
		return nil, err
	}

	s.deps.Metrics.IncrementCounter("trend.analyzed", map[string]string{"type": string(analysisType)})
	if analysisType == models.AnalysisAnomaly {
		for range result.Points {
			s.deps.Metrics.IncrementCounter("anomaly.detected", nil)
		}
	}

	if value, err := json.Marshal(result); err == nil {
		s.deps.Cache.Set(ctx, cacheKey, value, s.deps.Config.Cache.TTL)
	}

	return result, nil
}

// ProjectUserTrend projects the next period of a time-bucketed analysis.
// Category, seasonal, and anomaly series have no "next period" to project.
func (s *aggregationService) ProjectUserTrend(ctx context.Context, userID uuid.UUID, analysisType models.AnalysisType, dateRange models.DateRange, opts OverviewOptions) (*models.Projection, error) {
	switch analysisType {
	case models.AnalysisMonthly, models.AnalysisWeekly, models.AnalysisDaily:
	default:
		return nil, fmt.Errorf("%w: projection requires a time-bucketed analysis, got %q", ErrInvalidAnalysisType, analysisType)
	}

	result, err := s.AnalyzeUserTrends(ctx, userID, analysisType, dateRange, opts)
	if err != nil {
		return nil, err
	}

	return s.deps.Projections.Project(result.Points, analysisType), nil
}

// resolveDataSource fixes the demo/live decision up front so the rest of the
// pipeline never branches on it.
func (s *aggregationService) resolveDataSource(opts OverviewOptions) models.DataSourceKind {
	if opts.DataSource == models.DataSourceDemo || opts.DataSource == models.DataSourceLive {
		return opts.DataSource
	}
	if s.deps.Config.Engine.DemoMode {
		return models.DataSourceDemo
	}
	return models.DataSourceLive
}

// collect fans out to the provider and every document-store collection in
// parallel. Goroutines record failures instead of returning errors, so the
// group never short-circuits.
func (s *aggregationService) collect(ctx context.Context, userID uuid.UUID, kind models.DataSourceKind, fetchRange models.DateRange) *collected {
	harvest := &collected{}

	provider := s.deps.Provider
	if kind == models.DataSourceDemo {
		provider = s.deps.DemoProvider
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.collectConnections(ctx, userID, provider, fetchRange, harvest)
		return nil
	})
	g.Go(func() error {
		records, err := s.deps.Store.GetManualAssets(userID)
		if err != nil {
			s.recordSourceFailure(harvest, string(models.SourceManualAsset), err)
			return nil
		}
		harvest.mu.Lock()
		harvest.manualAssets = records
		harvest.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		records, err := s.deps.Store.GetManualLiabilities(userID)
		if err != nil {
			s.recordSourceFailure(harvest, string(models.SourceManualLiability), err)
			return nil
		}
		harvest.mu.Lock()
		harvest.manualLiabilities = records
		harvest.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		records, err := s.deps.Store.GetCryptoHoldings(userID)
		if err != nil {
			s.recordSourceFailure(harvest, string(models.SourceCryptoHolding), err)
			return nil
		}
		harvest.mu.Lock()
		harvest.cryptoHoldings = records
		harvest.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		records, err := s.deps.Store.GetRealEstateEntries(userID)
		if err != nil {
			s.recordSourceFailure(harvest, string(models.SourceRealEstate), err)
			return nil
		}
		harvest.mu.Lock()
		harvest.realEstate = records
		harvest.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		records, err := s.deps.Store.GetPensionEntries(userID)
		if err != nil {
			s.recordSourceFailure(harvest, string(models.SourcePension), err)
			return nil
		}
		harvest.mu.Lock()
		harvest.pensions = records
		harvest.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		records, err := s.deps.Store.GetAccountSnapshots(userID)
		if err != nil {
			s.recordSourceFailure(harvest, string(models.SourceCachedSnapshot), err)
			return nil
		}
		harvest.mu.Lock()
		harvest.snapshots = records
		harvest.mu.Unlock()
		return nil
	})

	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	return harvest
}

// collectConnections lists the user's linked connections and fetches each one
// independently, so one dead institution does not take down the others.
func (s *aggregationService) collectConnections(ctx context.Context, userID uuid.UUID, provider sources.AccountProvider, dateRange models.DateRange, harvest *collected) {
	connections, err := provider.ListConnections(ctx, userID)
	if err != nil {
		s.recordSourceFailure(harvest, "linked-connections", err)
		harvest.mu.Lock()
		harvest.liveFetchGaps = true
		harvest.mu.Unlock()
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, connection := range connections {
		g.Go(func() error {
			data, err := provider.FetchConnection(ctx, userID, connection.ID, dateRange)
			if err != nil {
				s.recordSourceFailure(harvest, connection.Institution, err)
				harvest.mu.Lock()
				harvest.liveFetchGaps = true
				harvest.mu.Unlock()
				return nil
			}
			harvest.mu.Lock()
			harvest.connections = append(harvest.connections, *data)
			harvest.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

func (s *aggregationService) recordSourceFailure(harvest *collected, source string, err error) {
	slog.Warn("source unavailable, continuing without it",
		"source", source,
		"error", err)
	s.deps.Metrics.IncrementCounter("source.failure", map[string]string{"source": source})
	harvest.fail(source)
}

// normalize canonicalizes the harvest. Cached snapshots only fill the gaps a
// failed live fetch left behind; an account fetched live always wins over its
// snapshot.
func (s *aggregationService) normalize(userID uuid.UUID, harvest *collected) ([]models.Account, []models.Transaction) {
	var accounts []models.Account
	var transactions []models.Transaction

	liveIDs := make(map[string]bool)
	for i := range harvest.connections {
		connAccounts, connTxns := s.deps.Normalizer.NormalizeConnection(userID, &harvest.connections[i])
		for _, account := range connAccounts {
			liveIDs[account.ID] = true
		}
		accounts = append(accounts, connAccounts...)
		transactions = append(transactions, connTxns...)
	}

	if harvest.liveFetchGaps {
		for _, snapshot := range s.deps.Normalizer.NormalizeAccountSnapshots(userID, harvest.snapshots) {
			if !liveIDs[snapshot.ID] {
				accounts = append(accounts, snapshot)
			}
		}
	}

	accounts = append(accounts, s.deps.Normalizer.NormalizeManualAssets(userID, harvest.manualAssets)...)
	accounts = append(accounts, s.deps.Normalizer.NormalizeManualLiabilities(userID, harvest.manualLiabilities)...)
	accounts = append(accounts, s.deps.Normalizer.NormalizeCryptoHoldings(userID, harvest.cryptoHoldings)...)
	accounts = append(accounts, s.deps.Normalizer.NormalizeRealEstateEntries(userID, harvest.realEstate)...)
	accounts = append(accounts, s.deps.Normalizer.NormalizePensionEntries(userID, harvest.pensions)...)

	return accounts, transactions
}

// insights runs the monthly trend for context and asks the narrative
// generator to phrase the result. Any generator failure falls back to the
// deterministic rule-based sentences.
func (s *aggregationService) insights(ctx context.Context, summary *models.MetricsSummary, transactions []models.Transaction, now time.Time) []string {
	trend, err := s.deps.Trends.AnalyzeTrends(transactions, models.AnalysisMonthly, s.defaultRange(models.DateRange{}))
	if err != nil {
		trend = nil
	}

	insights, err := s.deps.Narrative.GenerateInsights(ctx, summary, trend)
	if err != nil {
		slog.Warn("narrative generator unavailable, using rule-based insights", "error", err)
		s.deps.Metrics.IncrementCounter("narrative.fallback", nil)
		return RuleBasedInsights(summary, trend)
	}
	return insights
}

// writeBackSnapshots refreshes the cached last-known account states after a
// fully successful live sync. A write failure only loses freshness, so it is
// logged and swallowed.
func (s *aggregationService) writeBackSnapshots(userID uuid.UUID, connections []sources.ConnectionData, capturedAt time.Time) {
	var records []models.AccountSnapshotRecord
	for _, data := range connections {
		if data.Connection.Kind != sources.ConnectionKindBank {
			continue
		}
		for _, raw := range data.Accounts {
			records = append(records, models.AccountSnapshotRecord{
				UserID:     userID,
				AccountID:  raw.ID,
				Name:       raw.Name,
				Subtype:    raw.Subtype,
				Balance:    decimalFromFloat(raw.Balance),
				Currency:   raw.Currency,
				CapturedAt: capturedAt,
			})
		}
	}
	if len(records) == 0 {
		return
	}
	if err := s.deps.Store.ReplaceAccountSnapshots(userID, records); err != nil {
		slog.Warn("failed to refresh account snapshots", "user_id", userID, "error", err)
	}
}

// fetchRange is the provider fetch window: the default lookback, widened to
// cover a requested range that reaches further back. The end stays at now;
// everything between the range and today is fetched so cash flow and deltas
// keep their usual inputs.
func (s *aggregationService) fetchRange(requested models.DateRange) models.DateRange {
	window := s.defaultRange(models.DateRange{})
	if !requested.Start.IsZero() && requested.Start.Before(window.Start) {
		window.Start = requested.Start
	}
	return window
}

func (s *aggregationService) defaultRange(dateRange models.DateRange) models.DateRange {
	if !dateRange.Start.IsZero() && !dateRange.End.IsZero() {
		return dateRange
	}
	end := s.now()
	return models.DateRange{
		Start: end.AddDate(0, 0, -s.deps.Config.Engine.TrendRangeDays),
		End:   end,
	}
}

func (s *aggregationService) cachedOverview(ctx context.Context, key string) (*models.Overview, bool) {
	value, _, ok := s.deps.Cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var overview models.Overview
	if err := json.Unmarshal(value, &overview); err != nil {
		return nil, false
	}
	s.deps.Metrics.IncrementCounter("cache.hit", map[string]string{"view": viewOverview})
	return &overview, true
}

func (s *aggregationService) storeCached(ctx context.Context, key string, overview *models.Overview) {
	value, err := json.Marshal(overview)
	if err != nil {
		slog.Warn("failed to marshal overview for cache", "error", err)
		return
	}
	s.deps.Cache.Set(ctx, key, value, s.deps.Config.Cache.TTL)
}

func (s *aggregationService) recordRun(userID uuid.UUID, summary *models.MetricsSummary, kind models.DataSourceKind, start time.Time) {
	s.deps.Metrics.IncrementCounter("aggregation.completed", map[string]string{"source": string(kind)})
	s.deps.Metrics.RecordProcessingTime("aggregation.duration", s.now().Sub(start))
	s.deps.Metrics.RecordGauge("net_worth.computed", summary.NetWorth.InexactFloat64(), nil)
	s.deps.Metrics.RecordGauge("history.samples", float64(len(s.deps.History.Samples(userID))), nil)
}
