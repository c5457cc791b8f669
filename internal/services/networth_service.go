package services

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// cashFlowWindowDays is the trailing window for the monthly income and
// expense figures.
const cashFlowWindowDays = 30

type netWorthService struct{}

// NewNetWorthService creates the net worth calculator. It is stateless and
// safe for concurrent use.
func NewNetWorthService() NetWorthServiceInterface {
	return &netWorthService{}
}

// ComputeNetWorth buckets accounts and totals them. Every bucket is rounded
// independently; NetWorth is derived as TotalAssets minus TotalLiabilities
// rather than summed on its own, so the headline figure always reconciles
// with its components. Liabilities are reported as positive magnitudes.
func (s *netWorthService) ComputeNetWorth(userID uuid.UUID, accounts []models.Account) *models.MetricsSummary {
	summary := models.NewMetricsSummary(userID)
	if len(accounts) == 0 {
		summary.Status = models.MetricsStatusNoData
		return summary
	}

	var assets, liabilities decimal.Decimal
	for _, account := range accounts {
		if account.IsLiability() {
			magnitude := account.Balance.Abs()
			liabilities = liabilities.Add(magnitude)
			summary.LiabilitiesByType[account.Category] = summary.LiabilitiesByType[account.Category].Add(magnitude)
			continue
		}

		assets = assets.Add(account.Balance)
		summary.AssetsByType[account.Category] = summary.AssetsByType[account.Category].Add(account.Balance)

		switch account.Category {
		case models.CategoryChecking, models.CategorySavings:
			summary.LiquidAssets = summary.LiquidAssets.Add(account.Balance)
		case models.CategoryInvestment, models.CategoryBrokerage, models.CategoryRetirement:
			summary.Investments = summary.Investments.Add(account.Balance)
		case models.CategoryCrypto:
			summary.CryptoBalance = summary.CryptoBalance.Add(account.Balance)
		case models.CategoryRealEstate:
			summary.RealEstate = summary.RealEstate.Add(account.Balance)
		case models.CategoryPension:
			summary.Pension = summary.Pension.Add(account.Balance)
		}
	}

	summary.TotalAssets = models.RoundMoney(assets)
	summary.TotalLiabilities = models.RoundMoney(liabilities)
	summary.NetWorth = models.RoundMoney(summary.TotalAssets.Sub(summary.TotalLiabilities))
	summary.LiquidAssets = models.RoundMoney(summary.LiquidAssets)
	summary.Investments = models.RoundMoney(summary.Investments)
	summary.CryptoBalance = models.RoundMoney(summary.CryptoBalance)
	summary.RealEstate = models.RoundMoney(summary.RealEstate)
	summary.Pension = models.RoundMoney(summary.Pension)

	for category, amount := range summary.AssetsByType {
		summary.AssetsByType[category] = models.RoundMoney(amount)
	}
	for category, amount := range summary.LiabilitiesByType {
		summary.LiabilitiesByType[category] = models.RoundMoney(amount)
	}

	return summary
}

// ApplyMonthlyCashFlow sums completed transactions in the trailing 30-day
// window. Pending transactions never count. MonthlyCashFlow is derived from
// the two sums so it always reconciles with them.
func (s *netWorthService) ApplyMonthlyCashFlow(summary *models.MetricsSummary, transactions []models.Transaction, now time.Time) {
	cutoff := now.AddDate(0, 0, -cashFlowWindowDays)

	var income, expenses decimal.Decimal
	for _, txn := range transactions {
		if !txn.IsCompleted() || txn.Date.Before(cutoff) || txn.Date.After(now) {
			continue
		}
		if txn.IsIncome() {
			income = income.Add(txn.Amount)
		} else if txn.IsExpense() {
			expenses = expenses.Add(txn.Amount)
		}
	}

	summary.MonthlyIncome = models.RoundMoney(income)
	summary.MonthlyExpenses = models.RoundMoney(expenses)
	summary.MonthlyCashFlow = models.RoundMoney(summary.MonthlyIncome.Sub(summary.MonthlyExpenses))
}
