package services

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NetWorthServiceTestSuite struct {
	suite.Suite
	service *netWorthService
	userID  uuid.UUID
}

func TestNetWorthServiceSuite(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}

func (s *NetWorthServiceTestSuite) SetupTest() {
	s.service = NewNetWorthService().(*netWorthService)
	s.userID = uuid.New()
}

func (s *NetWorthServiceTestSuite) account(category models.Category, balance string) models.Account {
	return models.Account{
		ID:           uuid.NewString(),
		UserID:       s.userID,
		Name:         string(category),
		SourceSystem: models.SourceLinkedBank,
		Category:     category,
		Balance:      decimal.RequireFromString(balance),
		Currency:     models.DefaultCurrency,
	}
}

func (s *NetWorthServiceTestSuite) TestComputeNetWorth_AssetsAndLiabilities() {
	accounts := []models.Account{
		s.account(models.CategoryChecking, "1200"),
		s.account(models.CategoryCredit, "-300"),
	}

	summary := s.service.ComputeNetWorth(s.userID, accounts)

	s.True(summary.TotalAssets.Equal(decimal.RequireFromString("1200")))
	s.True(summary.TotalLiabilities.Equal(decimal.RequireFromString("300")), "liabilities are reported as positive magnitudes")
	s.True(summary.NetWorth.Equal(decimal.RequireFromString("900")))
	s.True(summary.LiquidAssets.Equal(decimal.RequireFromString("1200")))
	s.Equal(models.MetricsStatusOK, summary.Status)
}

func (s *NetWorthServiceTestSuite) TestComputeNetWorth_NoAccounts() {
	summary := s.service.ComputeNetWorth(s.userID, nil)

	s.Equal(models.MetricsStatusNoData, summary.Status)
	s.True(summary.TotalAssets.IsZero())
	s.True(summary.TotalLiabilities.IsZero())
	s.True(summary.NetWorth.IsZero())
	s.Empty(summary.AssetsByType)
	s.Empty(summary.LiabilitiesByType)
}

func (s *NetWorthServiceTestSuite) TestComputeNetWorth_BucketAssignments() {
	accounts := []models.Account{
		s.account(models.CategoryChecking, "500"),
		s.account(models.CategorySavings, "1500"),
		s.account(models.CategoryBrokerage, "10000"),
		s.account(models.CategoryRetirement, "20000"),
		s.account(models.CategoryCrypto, "2500"),
		s.account(models.CategoryRealEstate, "300000"),
		s.account(models.CategoryPension, "45000"),
		s.account(models.CategoryMortgage, "-250000"),
	}

	summary := s.service.ComputeNetWorth(s.userID, accounts)

	s.True(summary.LiquidAssets.Equal(decimal.RequireFromString("2000")))
	s.True(summary.Investments.Equal(decimal.RequireFromString("30000")))
	s.True(summary.CryptoBalance.Equal(decimal.RequireFromString("2500")))
	s.True(summary.RealEstate.Equal(decimal.RequireFromString("300000")))
	s.True(summary.Pension.Equal(decimal.RequireFromString("45000")))
	s.True(summary.TotalAssets.Equal(decimal.RequireFromString("379500")))
	s.True(summary.TotalLiabilities.Equal(decimal.RequireFromString("250000")))
	s.True(summary.NetWorth.Equal(decimal.RequireFromString("129500")))
}

func (s *NetWorthServiceTestSuite) TestComputeNetWorth_NegativeOtherIsLiability() {
	accounts := []models.Account{
		s.account(models.CategoryOther, "-750.50"),
		s.account(models.CategoryOther, "100"),
	}

	summary := s.service.ComputeNetWorth(s.userID, accounts)

	s.True(summary.TotalAssets.Equal(decimal.RequireFromString("100")))
	s.True(summary.TotalLiabilities.Equal(decimal.RequireFromString("750.50")))
	s.True(summary.NetWorth.Equal(decimal.RequireFromString("-650.50")))
	s.True(summary.LiabilitiesByType[models.CategoryOther].Equal(decimal.RequireFromString("750.50")))
}

func (s *NetWorthServiceTestSuite) TestComputeNetWorth_ByTypeBreakdownReconciles() {
	accounts := []models.Account{
		s.account(models.CategoryChecking, "100.33"),
		s.account(models.CategoryChecking, "200.33"),
		s.account(models.CategorySavings, "50.34"),
	}

	summary := s.service.ComputeNetWorth(s.userID, accounts)

	var sum decimal.Decimal
	for _, amount := range summary.AssetsByType {
		sum = sum.Add(amount)
	}
	s.True(sum.Equal(summary.TotalAssets))
}

func (s *NetWorthServiceTestSuite) TestComputeNetWorth_Idempotent() {
	accounts := []models.Account{
		s.account(models.CategoryChecking, "1234.56"),
		s.account(models.CategoryLoan, "-400"),
	}

	first := s.service.ComputeNetWorth(s.userID, accounts)
	second := s.service.ComputeNetWorth(s.userID, accounts)

	s.True(first.NetWorth.Equal(second.NetWorth))
	s.True(first.TotalAssets.Equal(second.TotalAssets))
	s.True(first.TotalLiabilities.Equal(second.TotalLiabilities))
}

func (s *NetWorthServiceTestSuite) TestApplyMonthlyCashFlow() {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{ID: "t1", Date: now.AddDate(0, 0, -5), Amount: decimal.RequireFromString("2000"), Type: models.TransactionTypeIncome},
		{ID: "t2", Date: now.AddDate(0, 0, -10), Amount: decimal.RequireFromString("500"), Type: models.TransactionTypeExpense},
		{ID: "t3", Date: now.AddDate(0, 0, -2), Amount: decimal.RequireFromString("999"), Type: models.TransactionTypeExpense, Pending: true},
		{ID: "t4", Date: now.AddDate(0, 0, -45), Amount: decimal.RequireFromString("888"), Type: models.TransactionTypeExpense},
	}

	summary := models.NewMetricsSummary(s.userID)
	s.service.ApplyMonthlyCashFlow(summary, transactions, now)

	s.True(summary.MonthlyIncome.Equal(decimal.RequireFromString("2000")))
	s.True(summary.MonthlyExpenses.Equal(decimal.RequireFromString("500")), "pending and out-of-window transactions are excluded")
	s.True(summary.MonthlyCashFlow.Equal(decimal.RequireFromString("1500")))
}

func (s *NetWorthServiceTestSuite) TestApplyMonthlyCashFlow_NoTransactions() {
	summary := models.NewMetricsSummary(s.userID)
	s.service.ApplyMonthlyCashFlow(summary, nil, time.Now())

	s.True(summary.MonthlyIncome.IsZero())
	s.True(summary.MonthlyExpenses.IsZero())
	s.True(summary.MonthlyCashFlow.IsZero())
}
