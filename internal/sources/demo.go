package sources

import (
	"context"
	"fmt"
	"time"

	"finsight/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// demoSeed keeps demo numbers stable across requests so the dashboard does
// not flicker between refreshes.
const demoSeed = 42

type demoMerchant struct {
	name     string
	category string
	minSpend float64
	maxSpend float64
}

var demoMerchants = []demoMerchant{
	{"Whole Foods Market", "Groceries", 18, 140},
	{"Trader Joe's", "Groceries", 12, 95},
	{"Starbucks", "Dining", 4, 16},
	{"Chipotle", "Dining", 9, 28},
	{"Uber", "Transportation", 8, 45},
	{"Shell", "Transportation", 30, 70},
	{"Netflix", "Entertainment", 15, 16},
	{"Amazon.com", "Shopping", 10, 180},
	{"CVS Pharmacy", "Healthcare", 6, 60},
	{"Comcast", "Bills & Utilities", 80, 95},
}

// DemoProvider is the placeholder data source substituted when a user has
// opted into demo mode and has no real linked accounts. It satisfies the
// same AccountProvider contract as the live provider so the engine never
// branches on the source kind past resolution.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

func (p *DemoProvider) ListConnections(ctx context.Context, userID uuid.UUID) ([]Connection, error) {
	return []Connection{
		{ID: "demo-bank", Institution: "Demo National Bank", Kind: ConnectionKindBank},
		{ID: "demo-brokerage", Institution: "Demo Brokerage", Kind: ConnectionKindInvestment},
	}, nil
}

func (p *DemoProvider) FetchConnection(ctx context.Context, userID uuid.UUID, connectionID string, dateRange models.DateRange) (*ConnectionData, error) {
	switch connectionID {
	case "demo-bank":
		return &ConnectionData{
			Connection: Connection{ID: connectionID, Institution: "Demo National Bank", Kind: ConnectionKindBank},
			Accounts: []RawAccount{
				{ID: "demo-checking", Name: "Everyday Checking", Subtype: "checking", Balance: 4250.75, Currency: "USD"},
				{ID: "demo-savings", Name: "Rainy Day Savings", Subtype: "savings", Balance: 12800.00, Currency: "USD"},
				{ID: "demo-credit", Name: "Rewards Card", Subtype: "credit card", Balance: 1335.20, Currency: "USD"},
			},
			Transactions: p.generateTransactions("demo-checking", dateRange),
		}, nil
	case "demo-brokerage":
		return &ConnectionData{
			Connection: Connection{ID: connectionID, Institution: "Demo Brokerage", Kind: ConnectionKindInvestment},
			Accounts: []RawAccount{
				{ID: "demo-brokerage-1", Name: "Index Portfolio", Subtype: "brokerage", Balance: 38400.00, Currency: "USD"},
				{ID: "demo-ira", Name: "Roth IRA", Subtype: "ira", Balance: 21650.00, Currency: "USD"},
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown demo connection %q", connectionID)
	}
}

// generateTransactions produces a seeded, deterministic spending history:
// a few purchases per day plus a bi-weekly salary deposit.
func (p *DemoProvider) generateTransactions(accountID string, dateRange models.DateRange) []RawTransaction {
	faker := gofakeit.New(demoSeed)
	var txns []RawTransaction

	day := dateRange.Start
	seq := 0
	for !day.After(dateRange.End) {
		perDay := faker.Number(1, 3)
		for i := 0; i < perDay; i++ {
			m := demoMerchants[faker.Number(0, len(demoMerchants)-1)]
			seq++
			txns = append(txns, RawTransaction{
				ID:         fmt.Sprintf("demo-txn-%04d", seq),
				AccountID:  accountID,
				Date:       day.Format(models.DateLayout),
				Amount:     faker.Float64Range(m.minSpend, m.maxSpend),
				Categories: []string{m.category},
			})
		}

		// Salary lands every other Friday, reported with the bank feed's
		// negative-inflow sign convention.
		if day.Weekday() == time.Friday && (day.YearDay()/7)%2 == 0 {
			seq++
			txns = append(txns, RawTransaction{
				ID:         fmt.Sprintf("demo-txn-%04d", seq),
				AccountID:  accountID,
				Date:       day.Format(models.DateLayout),
				Amount:     -2400.00,
				Categories: []string{"Income"},
			})
		}

		day = day.AddDate(0, 0, 1)
	}

	return txns
}
