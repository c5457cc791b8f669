package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MemoryCacheTestSuite struct {
	suite.Suite
	cache *MemoryCache
	clock time.Time
}

func (suite *MemoryCacheTestSuite) SetupTest() {
	suite.clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.cache = NewMemoryCache()
	suite.cache.now = func() time.Time { return suite.clock }
}

func (suite *MemoryCacheTestSuite) advance(d time.Duration) {
	suite.clock = suite.clock.Add(d)
}

func (suite *MemoryCacheTestSuite) TestSetAndGet() {
	ctx := context.Background()
	suite.cache.Set(ctx, "k1", []byte(`{"a":1}`), 30*time.Second)

	value, source, ok := suite.cache.Get(ctx, "k1")
	suite.True(ok)
	suite.Equal(SourceMemory, source)
	suite.Equal([]byte(`{"a":1}`), value)
}

func (suite *MemoryCacheTestSuite) TestMissOnUnknownKey() {
	_, source, ok := suite.cache.Get(context.Background(), "absent")
	suite.False(ok)
	suite.Equal(SourceMemory, source)
}

func (suite *MemoryCacheTestSuite) TestExpiredEntryIsMiss() {
	ctx := context.Background()
	suite.cache.Set(ctx, "k1", []byte("v"), 30*time.Second)

	suite.advance(31 * time.Second)

	_, _, ok := suite.cache.Get(ctx, "k1")
	suite.False(ok)
}

func (suite *MemoryCacheTestSuite) TestEntryLiveJustBeforeExpiry() {
	ctx := context.Background()
	suite.cache.Set(ctx, "k1", []byte("v"), 30*time.Second)

	suite.advance(29 * time.Second)

	_, _, ok := suite.cache.Get(ctx, "k1")
	suite.True(ok)
}

func (suite *MemoryCacheTestSuite) TestNonPositiveTTLNotStored() {
	ctx := context.Background()
	suite.cache.Set(ctx, "k1", []byte("v"), 0)

	_, _, ok := suite.cache.Get(ctx, "k1")
	suite.False(ok)
	suite.Equal(0, suite.cache.Len())
}

func (suite *MemoryCacheTestSuite) TestWriteSweepsExpiredEntries() {
	ctx := context.Background()
	suite.cache.Set(ctx, "old", []byte("v"), 10*time.Second)

	suite.advance(time.Minute)
	suite.cache.Set(ctx, "new", []byte("v"), 30*time.Second)

	suite.Equal(1, suite.cache.Len())
}

func (suite *MemoryCacheTestSuite) TestOverwriteReplacesValue() {
	ctx := context.Background()
	suite.cache.Set(ctx, "k1", []byte("first"), 30*time.Second)
	suite.cache.Set(ctx, "k1", []byte("second"), 30*time.Second)

	value, _, ok := suite.cache.Get(ctx, "k1")
	suite.True(ok)
	suite.Equal([]byte("second"), value)
}

func (suite *MemoryCacheTestSuite) TestKeyFormat() {
	userID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	suite.Equal(
		"finsight:11111111-2222-3333-4444-555555555555:overview:live",
		Key(userID, "overview", "live"),
	)
	suite.Equal(
		"finsight:11111111-2222-3333-4444-555555555555:trends:monthly:2025-01-01:2025-03-31",
		Key(userID, "trends", "monthly", "2025-01-01", "2025-03-31"),
	)
}

func (suite *MemoryCacheTestSuite) TestKeysIsolatePerUser() {
	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()

	suite.cache.Set(ctx, Key(userA, "overview", "live"), []byte("a"), 30*time.Second)

	_, _, ok := suite.cache.Get(ctx, Key(userB, "overview", "live"))
	suite.False(ok)
}

func TestMemoryCacheTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryCacheTestSuite))
}
