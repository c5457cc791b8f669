package services

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"finsight/internal/models"
	"finsight/internal/sources"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FallbackTransactionCategory is used when a provider sends no category list.
const FallbackTransactionCategory = "Uncategorized"

// subtypeCategories maps provider-native subtype strings to the canonical
// category enum. Lookup is case-insensitive; anything unmapped falls back to
// "other" rather than failing the run.
var subtypeCategories = map[string]models.Category{
	"checking":       models.CategoryChecking,
	"savings":        models.CategorySavings,
	"cd":             models.CategorySavings,
	"money market":   models.CategorySavings,
	"credit":         models.CategoryCredit,
	"credit card":    models.CategoryCredit,
	"loan":           models.CategoryLoan,
	"auto loan":      models.CategoryLoan,
	"student loan":   models.CategoryLoan,
	"line of credit": models.CategoryLoan,
	"mortgage":       models.CategoryMortgage,
	"brokerage":      models.CategoryBrokerage,
	"investment":     models.CategoryInvestment,
	"mutual fund":    models.CategoryInvestment,
	"ira":            models.CategoryRetirement,
	"roth":           models.CategoryRetirement,
	"roth ira":       models.CategoryRetirement,
	"401k":           models.CategoryRetirement,
	"403b":           models.CategoryRetirement,
	"pension":        models.CategoryPension,
}

// sourceRule describes how one source system's raw shape becomes canonical.
// Every source registered here gets the same pipeline; adding a source means
// adding a table entry, not a new code path.
type sourceRule struct {
	// defaultCategory applies when the subtype lookup misses.
	defaultCategory models.Category
	// liabilityMagnitudes is set for sources that report debts as positive
	// magnitudes; the normalizer flips them negative.
	liabilityMagnitudes bool
	// expenseWhenPositive is the bank-feed transaction convention: positive
	// amount means outflow.
	expenseWhenPositive bool
}

var sourceRules = map[models.SourceSystem]sourceRule{
	models.SourceLinkedBank:       {defaultCategory: models.CategoryOther, liabilityMagnitudes: true, expenseWhenPositive: true},
	models.SourceLinkedInvestment: {defaultCategory: models.CategoryInvestment, expenseWhenPositive: true},
	models.SourceManualAsset:      {defaultCategory: models.CategoryOther},
	models.SourceManualLiability:  {defaultCategory: models.CategoryLoan, liabilityMagnitudes: true},
	models.SourceCryptoHolding:    {defaultCategory: models.CategoryCrypto},
	models.SourceRealEstate:       {defaultCategory: models.CategoryRealEstate},
	models.SourcePension:          {defaultCategory: models.CategoryPension},
	models.SourceCachedSnapshot:   {defaultCategory: models.CategoryOther, liabilityMagnitudes: true, expenseWhenPositive: true},
}

type normalizerService struct{}

// NewNormalizerService creates the canonicalization service. It is stateless
// and safe for concurrent use.
func NewNormalizerService() NormalizerServiceInterface {
	return &normalizerService{}
}

// NormalizeConnection canonicalizes one linked connection's accounts and
// transactions. Accounts with non-finite balances and transactions with
// unparseable dates or non-finite amounts are dropped with a warning.
func (s *normalizerService) NormalizeConnection(userID uuid.UUID, data *sources.ConnectionData) ([]models.Account, []models.Transaction) {
	source := models.SourceLinkedBank
	if data.Connection.Kind == sources.ConnectionKindInvestment {
		source = models.SourceLinkedInvestment
	}

	accounts := make([]models.Account, 0, len(data.Accounts))
	for _, raw := range data.Accounts {
		account, err := s.normalizeRawAccount(userID, source, raw)
		if err != nil {
			slog.Warn("dropping account during normalization",
				"connection_id", data.Connection.ID,
				"account_id", raw.ID,
				"error", err)
			continue
		}
		accounts = append(accounts, account)
	}

	transactions := make([]models.Transaction, 0, len(data.Transactions))
	for _, raw := range data.Transactions {
		txn, err := s.normalizeRawTransaction(source, raw)
		if err != nil {
			slog.Warn("dropping transaction during normalization",
				"connection_id", data.Connection.ID,
				"transaction_id", raw.ID,
				"error", err)
			continue
		}
		transactions = append(transactions, txn)
	}

	return accounts, transactions
}

func (s *normalizerService) NormalizeManualAssets(userID uuid.UUID, records []models.ManualAssetRecord) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, s.normalizeStored(userID, models.SourceManualAsset, r.ID.String(), r.Name, r.Subtype, r.Balance, r.Currency))
	}
	return accounts
}

func (s *normalizerService) NormalizeManualLiabilities(userID uuid.UUID, records []models.ManualLiabilityRecord) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, s.normalizeStored(userID, models.SourceManualLiability, r.ID.String(), r.Name, r.Subtype, r.Balance, r.Currency))
	}
	return accounts
}

func (s *normalizerService) NormalizeCryptoHoldings(userID uuid.UUID, records []models.CryptoHoldingRecord) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		name := fmt.Sprintf("%s (%s)", r.Symbol, r.Quantity.String())
		accounts = append(accounts, s.normalizeStored(userID, models.SourceCryptoHolding, r.ID.String(), name, "", r.Value, r.Currency))
	}
	return accounts
}

func (s *normalizerService) NormalizeRealEstateEntries(userID uuid.UUID, records []models.RealEstateRecord) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, s.normalizeStored(userID, models.SourceRealEstate, r.ID.String(), r.Name, "", r.EstimatedValue, r.Currency))
	}
	return accounts
}

func (s *normalizerService) NormalizePensionEntries(userID uuid.UUID, records []models.PensionRecord) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, s.normalizeStored(userID, models.SourcePension, r.ID.String(), r.Provider, "", r.Balance, r.Currency))
	}
	return accounts
}

// NormalizeAccountSnapshots canonicalizes last-known account states. The
// snapshot's provider account ID is kept as the canonical ID so a snapshot
// and its live counterpart never coexist under different identities.
func (s *normalizerService) NormalizeAccountSnapshots(userID uuid.UUID, records []models.AccountSnapshotRecord) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, s.normalizeStored(userID, models.SourceCachedSnapshot, r.AccountID, r.Name, r.Subtype, r.Balance, r.Currency))
	}
	return accounts
}

// normalizeRawAccount handles provider payloads, where balances arrive as
// binary floats and must be finiteness-checked before entering the decimal
// domain.
func (s *normalizerService) normalizeRawAccount(userID uuid.UUID, source models.SourceSystem, raw sources.RawAccount) (models.Account, error) {
	if raw.ID == "" {
		return models.Account{}, models.ErrMissingAccountID
	}
	if math.IsNaN(raw.Balance) || math.IsInf(raw.Balance, 0) {
		return models.Account{}, models.ErrNonFiniteBalance
	}
	return s.normalizeStored(userID, source, raw.ID, raw.Name, raw.Subtype, decimal.NewFromFloat(raw.Balance), raw.Currency), nil
}

// normalizeStored is the shared canonicalization path. Stored records are
// already decimal so only category, sign, and currency need resolving.
func (s *normalizerService) normalizeStored(userID uuid.UUID, source models.SourceSystem, id, name, subtype string, balance decimal.Decimal, currency string) models.Account {
	rule := sourceRules[source]

	category := rule.defaultCategory
	if mapped, ok := subtypeCategories[strings.ToLower(strings.TrimSpace(subtype))]; ok {
		category = mapped
	}

	// Liability-magnitude sources report debts as positive numbers; the
	// canonical convention is negative balances for anything owed.
	if rule.liabilityMagnitudes && balance.IsPositive() {
		if source == models.SourceManualLiability || models.IsLiabilityCategory(category) {
			balance = balance.Neg()
		}
	}

	if currency == "" {
		currency = models.DefaultCurrency
	}

	return models.Account{
		ID:           id,
		UserID:       userID,
		Name:         name,
		SourceSystem: source,
		Category:     category,
		Balance:      models.RoundMoney(balance),
		Currency:     currency,
	}
}

func (s *normalizerService) normalizeRawTransaction(source models.SourceSystem, raw sources.RawTransaction) (models.Transaction, error) {
	date, err := time.Parse(models.DateLayout, raw.Date)
	if err != nil {
		return models.Transaction{}, models.ErrInvalidTransactionDate
	}
	if math.IsNaN(raw.Amount) || math.IsInf(raw.Amount, 0) {
		return models.Transaction{}, models.ErrNonFiniteBalance
	}

	txnType := raw.Type
	if !models.IsValidTransactionType(txnType) {
		txnType = s.inferType(source, raw.Amount)
	}

	category := FallbackTransactionCategory
	if len(raw.Categories) > 0 && raw.Categories[0] != "" {
		category = raw.Categories[0]
	}

	return models.Transaction{
		ID:        raw.ID,
		AccountID: raw.AccountID,
		Date:      date,
		Amount:    models.RoundMoney(decimal.NewFromFloat(raw.Amount).Abs()),
		Type:      txnType,
		Category:  category,
		Pending:   raw.Pending,
	}, nil
}

// inferType applies the per-source sign convention when the provider sends
// no explicit type. Bank feeds report outflows as positive amounts.
func (s *normalizerService) inferType(source models.SourceSystem, amount float64) string {
	rule := sourceRules[source]
	if rule.expenseWhenPositive {
		if amount > 0 {
			return models.TransactionTypeExpense
		}
		return models.TransactionTypeIncome
	}
	if amount < 0 {
		return models.TransactionTypeExpense
	}
	return models.TransactionTypeIncome
}
