package sources

import (
	"context"

	"finsight/internal/models"

	"github.com/google/uuid"
)

const (
	ConnectionKindBank       = "bank"
	ConnectionKindInvestment = "investment"
)

// Connection is one linked external connection (an institution login).
type Connection struct {
	ID          string
	Institution string
	Kind        string
}

// RawAccount is an account exactly as a provider reports it: native subtype
// string, native sign convention, possibly missing currency. Balances arrive
// as binary floats from provider JSON; finiteness is checked at
// normalization time.
type RawAccount struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Subtype  string  `json:"subtype"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// RawTransaction is a transaction as a provider reports it. Amount keeps the
// provider's sign convention (positive = outflow for bank feeds). Category
// may be a list; only the first element is used. Type is optional; when
// empty the per-source inference rule applies.
type RawTransaction struct {
	ID         string   `json:"id"`
	AccountID  string   `json:"account_id"`
	Date       string   `json:"date"`
	Amount     float64  `json:"amount"`
	Categories []string `json:"categories"`
	Pending    bool     `json:"pending"`
	Type       string   `json:"type"`
}

// ConnectionData is everything fetched from one connection in one sync.
type ConnectionData struct {
	Connection   Connection
	Accounts     []RawAccount
	Transactions []RawTransaction
}

// AccountProvider is the external account/transaction data collaborator.
// Each connection is fetched independently; one failing connection must not
// prevent the others from being fetched.
type AccountProvider interface {
	ListConnections(ctx context.Context, userID uuid.UUID) ([]Connection, error)
	FetchConnection(ctx context.Context, userID uuid.UUID, connectionID string, dateRange models.DateRange) (*ConnectionData, error)
}
