package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceSystem identifies which upstream system a canonical account came from.
type SourceSystem string

const (
	SourceLinkedBank       SourceSystem = "linked-bank"
	SourceLinkedInvestment SourceSystem = "linked-investment"
	SourceManualAsset      SourceSystem = "manual-asset"
	SourceManualLiability  SourceSystem = "manual-liability"
	SourceCryptoHolding    SourceSystem = "crypto-holding"
	SourceRealEstate       SourceSystem = "real-estate"
	SourcePension          SourceSystem = "pension"
	SourceCachedSnapshot   SourceSystem = "cached-bank-snapshot"
)

// Category is the fixed account category enum used for bucketing.
type Category string

const (
	CategoryChecking   Category = "checking"
	CategorySavings    Category = "savings"
	CategoryCredit     Category = "credit"
	CategoryLoan       Category = "loan"
	CategoryMortgage   Category = "mortgage"
	CategoryInvestment Category = "investment"
	CategoryBrokerage  Category = "brokerage"
	CategoryRetirement Category = "retirement"
	CategoryCrypto     Category = "crypto"
	CategoryRealEstate Category = "real_estate"
	CategoryPension    Category = "pension"
	CategoryOther      Category = "other"
)

const DefaultCurrency = "USD"

var (
	ErrMissingAccountID = errors.New("account id is required")
	ErrNonFiniteBalance = errors.New("account balance is not a finite number")
)

// Account is the canonical representation of one funding source or holding,
// independent of the system it was fetched from. Liabilities carry a negative
// balance after normalization.
type Account struct {
	ID           string          `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Name         string          `json:"name"`
	SourceSystem SourceSystem    `json:"source_system"`
	Category     Category        `json:"category"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
}

// Validate checks the canonical invariants. Balance finiteness is enforced at
// normalization time (decimal.Decimal cannot hold NaN/Inf), so the check here
// covers identity fields only.
func (a *Account) Validate() error {
	if a.ID == "" {
		return ErrMissingAccountID
	}
	if !IsValidCategory(a.Category) {
		return errors.New("invalid account category")
	}
	return nil
}

// IsValidCategory checks if the category is one of the fixed enum values.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryChecking, CategorySavings, CategoryCredit, CategoryLoan,
		CategoryMortgage, CategoryInvestment, CategoryBrokerage,
		CategoryRetirement, CategoryCrypto, CategoryRealEstate,
		CategoryPension, CategoryOther:
		return true
	default:
		return false
	}
}

// IsLiabilityCategory reports whether the category belongs to the liability
// super-bucket. Accounts outside this set with a negative balance are still
// treated as liabilities by the calculator (the "other-negative" rule).
func IsLiabilityCategory(c Category) bool {
	switch c {
	case CategoryCredit, CategoryLoan, CategoryMortgage:
		return true
	default:
		return false
	}
}

// IsLiability reports whether this account counts against net worth.
func (a *Account) IsLiability() bool {
	if IsLiabilityCategory(a.Category) {
		return true
	}
	return a.Balance.IsNegative()
}
