package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthSample is one retained history point for the hero-metric deltas.
// The history list is bounded and deduplicated; it is not a ledger of record.
type NetWorthSample struct {
	NetWorth  decimal.Decimal `json:"net_worth"`
	Timestamp time.Time       `json:"timestamp"`
}

// NetWorthDeltas holds the change-since figures computed from the per-user
// history list. A nil field means no sample at all existed for that window.
type NetWorthDeltas struct {
	Daily   *decimal.Decimal `json:"daily,omitempty"`
	Weekly  *decimal.Decimal `json:"weekly,omitempty"`
	Monthly *decimal.Decimal `json:"monthly,omitempty"`
}
