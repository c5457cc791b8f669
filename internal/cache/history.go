package cache

import (
	"sync"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryStore retains a bounded rolling net worth history per user. It
// exists only to compute "change since yesterday/last week/last month"
// deltas for the hero metric; it is not a ledger of record.
type HistoryStore interface {
	Append(userID uuid.UUID, netWorth decimal.Decimal, ts time.Time)
	Samples(userID uuid.UUID) []models.NetWorthSample
	Deltas(userID uuid.UUID, current decimal.Decimal, now time.Time) *models.NetWorthDeltas
}

// memoryHistoryStore keeps per-user sample lists in process. Cross-user
// interference is impossible by construction: every list is keyed by user.
type memoryHistoryStore struct {
	mu          sync.Mutex
	samples     map[uuid.UUID][]models.NetWorthSample
	cap         int
	dedupWindow time.Duration
}

func NewHistoryStore(cap int, dedupWindow time.Duration) HistoryStore {
	return &memoryHistoryStore{
		samples:     make(map[uuid.UUID][]models.NetWorthSample),
		cap:         cap,
		dedupWindow: dedupWindow,
	}
}

// Append records a sample, skipping consecutive identical values unless the
// dedup window has elapsed, so a flat net worth does not fill the list with
// redundant entries.
func (s *memoryHistoryStore) Append(userID uuid.UUID, netWorth decimal.Decimal, ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.samples[userID]
	if n := len(list); n > 0 {
		last := list[n-1]
		if last.NetWorth.Equal(netWorth) && ts.Sub(last.Timestamp) < s.dedupWindow {
			return
		}
	}

	list = append(list, models.NetWorthSample{NetWorth: netWorth, Timestamp: ts})
	if len(list) > s.cap {
		list = list[len(list)-s.cap:]
	}
	s.samples[userID] = list
}

// Samples returns a copy of the user's history, oldest first.
func (s *memoryHistoryStore) Samples(userID uuid.UUID) []models.NetWorthSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.samples[userID]
	out := make([]models.NetWorthSample, len(list))
	copy(out, list)
	return out
}

// Deltas computes the daily/weekly/monthly change of current against the
// sample closest to, but not after, now minus each interval. When no sample
// is that old yet, the earliest available sample is used instead so the
// field is still populated.
func (s *memoryHistoryStore) Deltas(userID uuid.UUID, current decimal.Decimal, now time.Time) *models.NetWorthDeltas {
	s.mu.Lock()
	list := s.samples[userID]
	s.mu.Unlock()

	if len(list) == 0 {
		return &models.NetWorthDeltas{}
	}

	deltas := &models.NetWorthDeltas{}
	deltas.Daily = s.deltaAgainst(list, current, now.Add(-24*time.Hour))
	deltas.Weekly = s.deltaAgainst(list, current, now.Add(-7*24*time.Hour))
	deltas.Monthly = s.deltaAgainst(list, current, now.Add(-30*24*time.Hour))
	return deltas
}

func (s *memoryHistoryStore) deltaAgainst(list []models.NetWorthSample, current decimal.Decimal, cutoff time.Time) *decimal.Decimal {
	baseline := list[0]
	for _, sample := range list {
		if sample.Timestamp.After(cutoff) {
			break
		}
		baseline = sample
	}

	delta := models.RoundMoney(current.Sub(baseline.NetWorth))
	return &delta
}
