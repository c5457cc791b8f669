package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finsight/internal/cache"
	"finsight/internal/config"
	"finsight/internal/models"
	"finsight/internal/repositories/repository_mocks"
	"finsight/internal/sources"
	"finsight/internal/sources/source_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// noopMetrics keeps the orchestrator tests free of global Prometheus
// collector registration.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

type AggregationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *source_mocks.MockAccountProvider
	mockStore    *repository_mocks.MockDocumentStoreInterface
	service      AggregationServiceInterface
	userID       uuid.UUID
	cfg          *config.Config
}

func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func (s *AggregationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProvider = source_mocks.NewMockAccountProvider(s.ctrl)
	s.mockStore = repository_mocks.NewMockDocumentStoreInterface(s.ctrl)
	s.userID = uuid.New()
	s.cfg = &config.Config{
		Cache: config.CacheConfig{TTL: 30 * time.Second},
		Engine: config.EngineConfig{
			HistoryCap:              100,
			HistoryDedupWindow:      5 * time.Minute,
			AnomalyStdDevMultiplier: 2.0,
			SanityBound:             1e9,
			TrendRangeDays:          90,
		},
	}

	s.service = NewAggregationService(AggregationDeps{
		Provider:     s.mockProvider,
		DemoProvider: sources.NewDemoProvider(),
		Store:        s.mockStore,
		Normalizer:   NewNormalizerService(),
		NetWorth:     NewNetWorthService(),
		Validator:    NewMetricsValidator(&s.cfg.Engine),
		Trends:       NewTrendService(&s.cfg.Engine),
		Projections:  NewProjectionService(),
		Narrative:    NewRuleBasedNarrativeService(),
		Cache:        cache.NewMemoryCache(),
		History:      cache.NewHistoryStore(s.cfg.Engine.HistoryCap, s.cfg.Engine.HistoryDedupWindow),
		Metrics:      noopMetrics{},
		Config:       s.cfg,
	})
}

func (s *AggregationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AggregationServiceTestSuite) emptyStore() {
	s.mockStore.EXPECT().GetManualAssets(s.userID).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().GetManualLiabilities(s.userID).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().GetCryptoHoldings(s.userID).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().GetRealEstateEntries(s.userID).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().GetPensionEntries(s.userID).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().GetAccountSnapshots(s.userID).Return(nil, nil).AnyTimes()
}

func (s *AggregationServiceTestSuite) bankConnection() (sources.Connection, *sources.ConnectionData) {
	connection := sources.Connection{ID: "conn-1", Institution: "First Demo Bank", Kind: sources.ConnectionKindBank}
	data := &sources.ConnectionData{
		Connection: connection,
		Accounts: []sources.RawAccount{
			{ID: "acc-chk", Name: "Checking", Subtype: "checking", Balance: 1200},
			{ID: "acc-cc", Name: "Visa", Subtype: "credit card", Balance: 300},
		},
		Transactions: []sources.RawTransaction{
			{ID: "t1", AccountID: "acc-chk", Date: time.Now().AddDate(0, 0, -3).Format(models.DateLayout), Amount: 80, Categories: []string{"Groceries"}},
		},
	}
	return connection, data
}

func (s *AggregationServiceTestSuite) TestComputeOverview_LiveHappyPath() {
	connection, data := s.bankConnection()
	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return([]sources.Connection{connection}, nil)
	s.mockProvider.EXPECT().FetchConnection(gomock.Any(), s.userID, connection.ID, gomock.Any()).Return(data, nil)
	s.mockStore.EXPECT().ReplaceAccountSnapshots(s.userID, gomock.Any()).Return(nil)
	s.emptyStore()

	overview, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})

	s.Require().NoError(err)
	s.Equal(models.DataSourceLive, overview.DataSource)
	s.Len(overview.Accounts, 2)
	s.Len(overview.Transactions, 1)
	s.Empty(overview.FailedSources)
	s.True(overview.Metrics.NetWorth.Equal(decimal.RequireFromString("900")))
	s.NotEmpty(overview.Insights)
	s.NotNil(overview.Deltas)
}

func (s *AggregationServiceTestSuite) TestComputeOverview_OneSourceFailureIsIsolated() {
	connection, _ := s.bankConnection()
	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return([]sources.Connection{connection}, nil)
	s.mockProvider.EXPECT().FetchConnection(gomock.Any(), s.userID, connection.ID, gomock.Any()).
		Return(nil, errors.New("institution timeout"))

	s.mockStore.EXPECT().GetManualAssets(s.userID).Return([]models.ManualAssetRecord{
		{ID: uuid.New(), UserID: s.userID, Name: "Vintage guitar", Balance: decimal.RequireFromString("2500")},
	}, nil)
	s.mockStore.EXPECT().GetManualLiabilities(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetCryptoHoldings(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetRealEstateEntries(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetPensionEntries(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetAccountSnapshots(s.userID).Return(nil, nil)

	overview, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})

	s.Require().NoError(err, "one dead institution must not fail the run")
	s.Contains(overview.FailedSources, "First Demo Bank")
	s.Require().Len(overview.Accounts, 1)
	s.Equal("Vintage guitar", overview.Accounts[0].Name)
	s.True(overview.Metrics.NetWorth.Equal(decimal.RequireFromString("2500")))
}

func (s *AggregationServiceTestSuite) TestComputeOverview_SnapshotsFillLiveGaps() {
	connection, _ := s.bankConnection()
	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return([]sources.Connection{connection}, nil)
	s.mockProvider.EXPECT().FetchConnection(gomock.Any(), s.userID, connection.ID, gomock.Any()).
		Return(nil, errors.New("institution down"))

	s.mockStore.EXPECT().GetManualAssets(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetManualLiabilities(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetCryptoHoldings(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetRealEstateEntries(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetPensionEntries(s.userID).Return(nil, nil)
	s.mockStore.EXPECT().GetAccountSnapshots(s.userID).Return([]models.AccountSnapshotRecord{
		{ID: uuid.New(), UserID: s.userID, AccountID: "acc-chk", Name: "Checking", Subtype: "checking", Balance: decimal.RequireFromString("1150"), CapturedAt: time.Now().Add(-24 * time.Hour)},
	}, nil)

	overview, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})

	s.Require().NoError(err)
	s.Require().Len(overview.Accounts, 1)
	s.Equal(models.SourceCachedSnapshot, overview.Accounts[0].SourceSystem)
	s.True(overview.Metrics.NetWorth.Equal(decimal.RequireFromString("1150")), "stale balance beats a zeroed dashboard")
}

func (s *AggregationServiceTestSuite) TestComputeOverview_SecondCallServedFromCache() {
	connection, data := s.bankConnection()
	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return([]sources.Connection{connection}, nil).Times(1)
	s.mockProvider.EXPECT().FetchConnection(gomock.Any(), s.userID, connection.ID, gomock.Any()).Return(data, nil).Times(1)
	s.mockStore.EXPECT().ReplaceAccountSnapshots(s.userID, gomock.Any()).Return(nil).Times(1)
	s.emptyStore()

	first, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})
	s.Require().NoError(err)

	second, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})
	s.Require().NoError(err)

	s.True(first.Metrics.NetWorth.Equal(second.Metrics.NetWorth))
}

func (s *AggregationServiceTestSuite) TestComputeOverview_ForceRefreshBypassesCacheRead() {
	connection, data := s.bankConnection()
	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return([]sources.Connection{connection}, nil).Times(2)
	s.mockProvider.EXPECT().FetchConnection(gomock.Any(), s.userID, connection.ID, gomock.Any()).Return(data, nil).Times(2)
	s.mockStore.EXPECT().ReplaceAccountSnapshots(s.userID, gomock.Any()).Return(nil).Times(2)
	s.emptyStore()

	_, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})
	s.Require().NoError(err)

	_, err = s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{ForceRefresh: true})
	s.Require().NoError(err)
}

func (s *AggregationServiceTestSuite) TestComputeOverview_DemoSource() {
	s.emptyStore()

	overview, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{DataSource: models.DataSourceDemo})

	s.Require().NoError(err)
	s.Equal(models.DataSourceDemo, overview.DataSource)
	s.NotEmpty(overview.Accounts)
	s.NotEmpty(overview.Transactions)
	s.Empty(overview.FailedSources)
}

func (s *AggregationServiceTestSuite) TestComputeOverview_NoDataAnywhere() {
	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return(nil, nil)
	s.emptyStore()

	overview, err := s.service.ComputeOverview(context.Background(), s.userID, OverviewOptions{})

	s.Require().NoError(err)
	s.Equal(models.MetricsStatusNoData, overview.Metrics.Status)
	s.True(overview.Metrics.NetWorth.IsZero())
}

func (s *AggregationServiceTestSuite) TestAnalyzeUserTrends_InvalidType() {
	_, err := s.service.AnalyzeUserTrends(context.Background(), s.userID, "hourly", models.DateRange{}, OverviewOptions{})
	s.ErrorIs(err, ErrInvalidAnalysisType)
}

func (s *AggregationServiceTestSuite) TestAnalyzeUserTrends_DemoData() {
	s.emptyStore()

	result, err := s.service.AnalyzeUserTrends(context.Background(), s.userID, models.AnalysisCategory, models.DateRange{}, OverviewOptions{DataSource: models.DataSourceDemo})

	s.Require().NoError(err)
	s.Equal(models.AnalysisCategory, result.Type)
	s.NotEmpty(result.Points)
	s.NotEmpty(result.Insights)
}

func (s *AggregationServiceTestSuite) TestAnalyzeUserTrends_HistoricalRangeStillHasData() {
	s.emptyStore()

	// Two months, starting a year back: well outside the default lookback.
	start := time.Now().AddDate(-1, 0, 0)
	dateRange := models.DateRange{Start: start, End: start.AddDate(0, 2, 0)}

	result, err := s.service.AnalyzeUserTrends(context.Background(), s.userID, models.AnalysisMonthly, dateRange, OverviewOptions{DataSource: models.DataSourceDemo})

	s.Require().NoError(err)
	s.NotEmpty(result.Points, "a range older than the default lookback must still be fetched")
	for _, point := range result.Points {
		s.True(point.Amount.IsPositive())
	}
}

func (s *AggregationServiceTestSuite) TestAnalyzeUserTrends_WidensProviderFetchWindow() {
	connection, data := s.bankConnection()
	requestedStart := time.Now().AddDate(-1, 0, 0)

	s.mockProvider.EXPECT().ListConnections(gomock.Any(), s.userID).Return([]sources.Connection{connection}, nil)
	s.mockProvider.EXPECT().
		FetchConnection(gomock.Any(), s.userID, connection.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, dr models.DateRange) (*sources.ConnectionData, error) {
			s.False(dr.Start.After(requestedStart), "fetch window must reach back to the requested range")
			return data, nil
		})
	s.mockStore.EXPECT().ReplaceAccountSnapshots(s.userID, gomock.Any()).Return(nil)
	s.emptyStore()

	dateRange := models.DateRange{Start: requestedStart, End: requestedStart.AddDate(0, 2, 0)}
	_, err := s.service.AnalyzeUserTrends(context.Background(), s.userID, models.AnalysisMonthly, dateRange, OverviewOptions{})

	s.Require().NoError(err)
}

func (s *AggregationServiceTestSuite) TestProjectUserTrend_RejectsNonPeriodTypes() {
	_, err := s.service.ProjectUserTrend(context.Background(), s.userID, models.AnalysisCategory, models.DateRange{}, OverviewOptions{})
	s.ErrorIs(err, ErrInvalidAnalysisType)
}

func (s *AggregationServiceTestSuite) TestProjectUserTrend_DemoData() {
	s.emptyStore()

	projection, err := s.service.ProjectUserTrend(context.Background(), s.userID, models.AnalysisWeekly, models.DateRange{}, OverviewOptions{DataSource: models.DataSourceDemo})

	s.Require().NoError(err)
	s.NotNil(projection)
	s.GreaterOrEqual(projection.Confidence, 0)
	s.LessOrEqual(projection.Confidence, 100)
	s.False(projection.NextPeriod.IsNegative())
}
