package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HistoryStoreTestSuite struct {
	suite.Suite
	store  HistoryStore
	userID uuid.UUID
	base   time.Time
}

func (suite *HistoryStoreTestSuite) SetupTest() {
	suite.store = NewHistoryStore(100, 5*time.Minute)
	suite.userID = uuid.New()
	suite.base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *HistoryStoreTestSuite) TestAppendAndSamples() {
	suite.store.Append(suite.userID, decimal.NewFromInt(1000), suite.base)
	suite.store.Append(suite.userID, decimal.NewFromInt(1100), suite.base.Add(time.Hour))

	samples := suite.store.Samples(suite.userID)
	suite.Len(samples, 2)
	suite.True(samples[0].NetWorth.Equal(decimal.NewFromInt(1000)))
	suite.True(samples[1].NetWorth.Equal(decimal.NewFromInt(1100)))
}

func (suite *HistoryStoreTestSuite) TestIdenticalValueWithinWindowSkipped() {
	value := decimal.NewFromInt(1000)
	suite.store.Append(suite.userID, value, suite.base)
	suite.store.Append(suite.userID, value, suite.base.Add(2*time.Minute))

	suite.Len(suite.store.Samples(suite.userID), 1)
}

func (suite *HistoryStoreTestSuite) TestIdenticalValueAfterWindowAppended() {
	value := decimal.NewFromInt(1000)
	suite.store.Append(suite.userID, value, suite.base)
	suite.store.Append(suite.userID, value, suite.base.Add(6*time.Minute))

	suite.Len(suite.store.Samples(suite.userID), 2)
}

func (suite *HistoryStoreTestSuite) TestChangedValueWithinWindowAppended() {
	suite.store.Append(suite.userID, decimal.NewFromInt(1000), suite.base)
	suite.store.Append(suite.userID, decimal.NewFromInt(1001), suite.base.Add(time.Minute))

	suite.Len(suite.store.Samples(suite.userID), 2)
}

func (suite *HistoryStoreTestSuite) TestCapDropsOldestSamples() {
	store := NewHistoryStore(3, 0)
	for i := 0; i < 5; i++ {
		store.Append(suite.userID, decimal.NewFromInt(int64(i)), suite.base.Add(time.Duration(i)*time.Hour))
	}

	samples := store.Samples(suite.userID)
	suite.Len(samples, 3)
	suite.True(samples[0].NetWorth.Equal(decimal.NewFromInt(2)))
	suite.True(samples[2].NetWorth.Equal(decimal.NewFromInt(4)))
}

func (suite *HistoryStoreTestSuite) TestDeltasEmptyHistory() {
	deltas := suite.store.Deltas(suite.userID, decimal.NewFromInt(500), suite.base)

	suite.NotNil(deltas)
	suite.Nil(deltas.Daily)
	suite.Nil(deltas.Weekly)
	suite.Nil(deltas.Monthly)
}

func (suite *HistoryStoreTestSuite) TestDeltasAgainstAgedSamples() {
	suite.store.Append(suite.userID, decimal.NewFromInt(900), suite.base.Add(-31*24*time.Hour))
	suite.store.Append(suite.userID, decimal.NewFromInt(950), suite.base.Add(-8*24*time.Hour))
	suite.store.Append(suite.userID, decimal.NewFromInt(980), suite.base.Add(-25*time.Hour))

	deltas := suite.store.Deltas(suite.userID, decimal.NewFromInt(1000), suite.base)

	suite.Require().NotNil(deltas.Daily)
	suite.Require().NotNil(deltas.Weekly)
	suite.Require().NotNil(deltas.Monthly)
	suite.True(deltas.Daily.Equal(decimal.NewFromInt(20)), "got %s", deltas.Daily)
	suite.True(deltas.Weekly.Equal(decimal.NewFromInt(50)), "got %s", deltas.Weekly)
	suite.True(deltas.Monthly.Equal(decimal.NewFromInt(100)), "got %s", deltas.Monthly)
}

func (suite *HistoryStoreTestSuite) TestDeltasFallBackToEarliestSample() {
	// All samples are younger than every cutoff; the earliest one is the
	// baseline for all three intervals.
	suite.store.Append(suite.userID, decimal.NewFromInt(700), suite.base.Add(-2*time.Hour))
	suite.store.Append(suite.userID, decimal.NewFromInt(800), suite.base.Add(-time.Hour))

	deltas := suite.store.Deltas(suite.userID, decimal.NewFromInt(1000), suite.base)

	suite.Require().NotNil(deltas.Daily)
	suite.True(deltas.Daily.Equal(decimal.NewFromInt(300)))
	suite.True(deltas.Weekly.Equal(decimal.NewFromInt(300)))
	suite.True(deltas.Monthly.Equal(decimal.NewFromInt(300)))
}

func (suite *HistoryStoreTestSuite) TestDeltasPickClosestSampleBeforeCutoff() {
	// Two samples qualify for the daily cutoff; the later one wins.
	suite.store.Append(suite.userID, decimal.NewFromInt(500), suite.base.Add(-72*time.Hour))
	suite.store.Append(suite.userID, decimal.NewFromInt(900), suite.base.Add(-30*time.Hour))

	deltas := suite.store.Deltas(suite.userID, decimal.NewFromInt(1000), suite.base)

	suite.Require().NotNil(deltas.Daily)
	suite.True(deltas.Daily.Equal(decimal.NewFromInt(100)))
}

func (suite *HistoryStoreTestSuite) TestUsersDoNotShareHistory() {
	otherUser := uuid.New()
	suite.store.Append(suite.userID, decimal.NewFromInt(1000), suite.base)

	suite.Empty(suite.store.Samples(otherUser))
}

func TestHistoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryStoreTestSuite))
}
