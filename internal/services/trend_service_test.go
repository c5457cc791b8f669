package services

import (
	"testing"
	"time"

	"finsight/internal/config"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TrendServiceTestSuite struct {
	suite.Suite
	service *trendService
	rng     models.DateRange
}

func TestTrendServiceSuite(t *testing.T) {
	suite.Run(t, new(TrendServiceTestSuite))
}

func (s *TrendServiceTestSuite) SetupTest() {
	s.service = NewTrendService(&config.EngineConfig{
		AnomalyStdDevMultiplier: 2.0,
		TrendRangeDays:          365,
	}).(*trendService)
	s.rng = models.DateRange{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (s *TrendServiceTestSuite) expense(date string, amount string) models.Transaction {
	d, err := time.Parse(models.DateLayout, date)
	s.Require().NoError(err)
	return models.Transaction{
		ID:       date + "-" + amount,
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Type:     models.TransactionTypeExpense,
		Category: "Shopping",
	}
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_InvalidType() {
	_, err := s.service.AnalyzeTrends(nil, "yearly", s.rng)
	s.ErrorIs(err, ErrInvalidAnalysisType)
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_MonthlyPercentChange() {
	transactions := []models.Transaction{
		s.expense("2025-01-10", "100"),
		s.expense("2025-02-05", "50"),
		s.expense("2025-02-20", "100"),
	}

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisMonthly, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 2)

	s.Equal("2025-01", result.Points[0].Period)
	s.Nil(result.Points[0].PercentChange, "first point has no baseline")
	s.Equal("2025-02", result.Points[1].Period)
	s.True(result.Points[1].Amount.Equal(decimal.RequireFromString("150")))
	s.Require().NotNil(result.Points[1].PercentChange)
	s.InDelta(50.0, *result.Points[1].PercentChange, 0.001)
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_PercentChangeZeroBaseline() {
	transactions := []models.Transaction{
		s.expense("2025-01-10", "0"),
		s.expense("2025-02-05", "100"),
	}

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisMonthly, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 2)
	s.Nil(result.Points[1].PercentChange, "zero baseline must not produce Inf")
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_ExcludesPendingIncomeAndOutOfRange() {
	income := s.expense("2025-03-01", "500")
	income.Type = models.TransactionTypeIncome
	pending := s.expense("2025-03-02", "300")
	pending.Pending = true
	outOfRange := s.expense("2024-03-03", "200")

	transactions := []models.Transaction{
		s.expense("2025-03-04", "40"),
		income,
		pending,
		outOfRange,
	}

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisMonthly, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 1)
	s.True(result.Points[0].Amount.Equal(decimal.RequireFromString("40")))
	s.Equal(1, result.Points[0].TransactionCount)
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_WeeklyBucketsStartMonday() {
	// 2025-01-06 is a Monday, 2025-01-12 the Sunday of the same week.
	transactions := []models.Transaction{
		s.expense("2025-01-06", "10"),
		s.expense("2025-01-12", "20"),
		s.expense("2025-01-13", "30"),
	}

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisWeekly, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 2)

	s.Equal("2025-01-06", result.Points[0].Period)
	s.True(result.Points[0].Amount.Equal(decimal.RequireFromString("30")))
	s.Equal("2025-01-13", result.Points[1].Period)
	s.True(result.Points[1].Amount.Equal(decimal.RequireFromString("30")))
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_CategoryDescendingStableOrder() {
	groceries := s.expense("2025-04-01", "80")
	groceries.Category = "Groceries"
	dining := s.expense("2025-04-02", "80")
	dining.Category = "Dining"
	travel := s.expense("2025-04-03", "200")
	travel.Category = "Travel"

	result, err := s.service.AnalyzeTrends([]models.Transaction{groceries, dining, travel}, models.AnalysisCategory, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 3)

	s.Equal("Travel", result.Points[0].Period)
	s.Equal("Dining", result.Points[1].Period, "ties break alphabetically")
	s.Equal("Groceries", result.Points[2].Period)
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_SeasonalFixedOrder() {
	transactions := []models.Transaction{
		s.expense("2025-07-10", "100"), // Summer
		s.expense("2025-12-10", "60"),  // Winter
		s.expense("2025-02-10", "40"),  // Winter
	}

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisSeasonal, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 4)

	s.Equal([]string{"Spring", "Summer", "Fall", "Winter"}, []string{
		result.Points[0].Period, result.Points[1].Period, result.Points[2].Period, result.Points[3].Period,
	})
	s.True(result.Points[0].Amount.IsZero())
	s.True(result.Points[1].Amount.Equal(decimal.RequireFromString("100")))
	s.True(result.Points[3].Amount.Equal(decimal.RequireFromString("100")))
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_AnomalyFlagsOutlier() {
	transactions := make([]models.Transaction, 0, 10)
	for day := 1; day <= 9; day++ {
		transactions = append(transactions, s.expense(time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout), "10"))
	}
	transactions = append(transactions, s.expense("2025-05-10", "200"))

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisAnomaly, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 1)
	s.Equal("2025-05-10", result.Points[0].Period)
	s.True(result.Points[0].Anomaly)
	s.Contains(result.Insights[0], "1 unusual spending day")
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_AnomalyFlatSeriesNotFlagged() {
	transactions := []models.Transaction{
		s.expense("2025-05-01", "50"),
		s.expense("2025-05-02", "50"),
		s.expense("2025-05-03", "50"),
	}

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisAnomaly, s.rng)
	s.Require().NoError(err)
	s.Empty(result.Points, "zero deviation with a strict threshold flags nothing")
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_AnomalyExactThresholdNotFlagged() {
	// Four days of 10 and one day of 100: mean 28, stddev 36, so the
	// threshold lands on exactly 100. Strict comparison must spare it.
	transactions := make([]models.Transaction, 0, 5)
	for day := 1; day <= 4; day++ {
		transactions = append(transactions, s.expense(time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout), "10"))
	}
	transactions = append(transactions, s.expense("2025-05-05", "100"))

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisAnomaly, s.rng)
	s.Require().NoError(err)
	s.Empty(result.Points, "a day exactly at mean + 2*stddev is not unusual")
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_AnomalyAboveThresholdFlagged() {
	// Nine days of 10 and one day of 100: mean 19, stddev 27, threshold 73.
	transactions := make([]models.Transaction, 0, 10)
	for day := 1; day <= 9; day++ {
		transactions = append(transactions, s.expense(time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout), "10"))
	}
	transactions = append(transactions, s.expense("2025-05-10", "100"))

	result, err := s.service.AnalyzeTrends(transactions, models.AnalysisAnomaly, s.rng)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 1)
	s.Equal("2025-05-10", result.Points[0].Period)
	s.True(result.Points[0].Anomaly)
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_AnomalyNeedsTwoSpendingDays() {
	result, err := s.service.AnalyzeTrends([]models.Transaction{s.expense("2025-05-01", "5000")}, models.AnalysisAnomaly, s.rng)
	s.Require().NoError(err)
	s.Empty(result.Points)
}

func (s *TrendServiceTestSuite) TestAnalyzeTrends_EmptyInputHasInsight() {
	result, err := s.service.AnalyzeTrends(nil, models.AnalysisMonthly, s.rng)
	s.Require().NoError(err)
	s.Empty(result.Points)
	s.NotEmpty(result.Insights)
}
