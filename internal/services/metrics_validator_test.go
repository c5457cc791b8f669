package services

import (
	"testing"

	"finsight/internal/config"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MetricsValidatorTestSuite struct {
	suite.Suite
	validator *metricsValidator
	userID    uuid.UUID
}

func TestMetricsValidatorSuite(t *testing.T) {
	suite.Run(t, new(MetricsValidatorTestSuite))
}

func (s *MetricsValidatorTestSuite) SetupTest() {
	s.validator = NewMetricsValidator(&config.EngineConfig{SanityBound: 1e9}).(*metricsValidator)
	s.userID = uuid.New()
}

func (s *MetricsValidatorTestSuite) consistentSummary() *models.MetricsSummary {
	summary := models.NewMetricsSummary(s.userID)
	summary.TotalAssets = decimal.RequireFromString("1500")
	summary.TotalLiabilities = decimal.RequireFromString("500")
	summary.NetWorth = decimal.RequireFromString("1000")
	summary.MonthlyIncome = decimal.RequireFromString("3000")
	summary.MonthlyExpenses = decimal.RequireFromString("2000")
	summary.MonthlyCashFlow = decimal.RequireFromString("1000")
	summary.AssetsByType[models.CategoryChecking] = decimal.RequireFromString("1500")
	summary.LiabilitiesByType[models.CategoryCredit] = decimal.RequireFromString("500")
	return summary
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_Consistent() {
	summary := s.consistentSummary()

	err := s.validator.ValidateSummary(summary, "test")

	s.NoError(err)
	s.False(summary.IsFlagged())
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_NetWorthIdentityViolation() {
	summary := s.consistentSummary()
	summary.NetWorth = decimal.RequireFromString("999")

	err := s.validator.ValidateSummary(summary, "test")

	s.NoError(err, "soft violations never block the response")
	s.True(summary.IsFlagged())
	s.Contains(summary.Flags, "net_worth_identity")
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_CashFlowIdentityViolation() {
	summary := s.consistentSummary()
	summary.MonthlyCashFlow = decimal.RequireFromString("42")

	err := s.validator.ValidateSummary(summary, "test")

	s.NoError(err)
	s.Contains(summary.Flags, "cash_flow_identity")
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_BucketSumViolation() {
	summary := s.consistentSummary()
	summary.AssetsByType[models.CategoryChecking] = decimal.RequireFromString("100")

	err := s.validator.ValidateSummary(summary, "test")

	s.NoError(err)
	s.Contains(summary.Flags, "assets_by_type_sum")
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_BucketSumWithinTolerance() {
	summary := s.consistentSummary()
	summary.AssetsByType[models.CategoryChecking] = decimal.RequireFromString("1499.99")

	err := s.validator.ValidateSummary(summary, "test")

	s.NoError(err)
	s.NotContains(summary.Flags, "assets_by_type_sum", "a cent of rounding residue is acceptable")
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_NegativeTotalIsHardFailure() {
	summary := s.consistentSummary()
	summary.TotalLiabilities = decimal.RequireFromString("-500")

	err := s.validator.ValidateSummary(summary, "test")

	s.ErrorIs(err, ErrDegradedMetrics)
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_SanityBoundExceeded() {
	summary := s.consistentSummary()
	summary.TotalAssets = decimal.RequireFromString("2000000000")
	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)

	err := s.validator.ValidateSummary(summary, "test")

	s.ErrorIs(err, ErrDegradedMetrics)
}

func (s *MetricsValidatorTestSuite) TestValidateSummary_ZeroSummaryIsValid() {
	summary := models.NewMetricsSummary(s.userID)

	err := s.validator.ValidateSummary(summary, "test")

	s.NoError(err)
	s.False(summary.IsFlagged())
}
