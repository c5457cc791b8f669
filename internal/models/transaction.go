package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeExpense = "expense"
	TransactionTypeIncome  = "income"

	// DateLayout is the calendar-date format used by every source. Transactions
	// have no time-of-day semantics.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionDate = errors.New("transaction date does not parse to a valid calendar date")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// Transaction is one canonical economic event. Amount is always positive; the
// direction lives in Type. Pending transactions are excluded from every
// aggregation.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Pending   bool            `json:"pending"`
}

// IsCompleted reports whether the transaction takes part in aggregation.
func (t *Transaction) IsCompleted() bool {
	return !t.Pending
}

// IsExpense reports whether the transaction is an outflow.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome reports whether the transaction is an inflow.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsValidTransactionType checks the type against the canonical enum.
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}
