package models

import (
	"time"

	"github.com/google/uuid"
)

// DataSourceKind tells the engine whether to aggregate real linked data or
// the fixed demo placeholder set. The choice is resolved once, before any
// calculator runs.
type DataSourceKind string

const (
	DataSourceLive DataSourceKind = "live"
	DataSourceDemo DataSourceKind = "demo"
)

// Overview is the full result of one aggregation run for a user.
type Overview struct {
	UserID       uuid.UUID       `json:"user_id"`
	Accounts     []Account       `json:"accounts"`
	Transactions []Transaction   `json:"transactions"`
	Metrics      *MetricsSummary `json:"metrics"`
	Deltas       *NetWorthDeltas `json:"deltas,omitempty"`
	Insights     []string        `json:"insights,omitempty"`
	DataSource   DataSourceKind  `json:"data_source"`
	GeneratedAt  time.Time       `json:"generated_at"`

	// FailedSources lists upstream sources that were skipped during this run.
	// A non-empty list means the numbers are a best-effort partial view.
	FailedSources []string `json:"failed_sources,omitempty"`
}
