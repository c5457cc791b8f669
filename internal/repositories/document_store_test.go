package repositories

import (
	"testing"
	"time"

	"finsight/internal/database"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DocumentStoreTestSuite struct {
	suite.Suite
	db     *database.DB
	store  DocumentStoreInterface
	userID uuid.UUID
}

func (suite *DocumentStoreTestSuite) SetupTest() {
	suite.db = database.SetupTestDB(suite.T())
	suite.store = NewDocumentStore(suite.db.DB)
	suite.userID = uuid.New()
}

func (suite *DocumentStoreTestSuite) TestCreateAndGetManualAssets() {
	record := &models.ManualAssetRecord{
		UserID:   suite.userID,
		Name:     "Vintage guitar",
		Subtype:  "collectible",
		Balance:  decimal.NewFromFloat(2500.00),
		Currency: "USD",
	}
	suite.Require().NoError(suite.store.CreateManualAsset(record))
	suite.NotEqual(uuid.Nil, record.ID)

	records, err := suite.store.GetManualAssets(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("Vintage guitar", records[0].Name)
	suite.True(records[0].Balance.Equal(decimal.NewFromFloat(2500.00)))
}

func (suite *DocumentStoreTestSuite) TestCreateManualAssetRequiresUserID() {
	record := &models.ManualAssetRecord{
		Name:    "Orphan asset",
		Balance: decimal.NewFromInt(100),
	}
	err := suite.store.CreateManualAsset(record)
	suite.ErrorIs(err, ErrMissingUserID)
}

func (suite *DocumentStoreTestSuite) TestCreateAndGetManualLiabilities() {
	record := &models.ManualLiabilityRecord{
		UserID:   suite.userID,
		Name:     "Family loan",
		Subtype:  "loan",
		Balance:  decimal.NewFromInt(8000),
		Currency: "USD",
	}
	suite.Require().NoError(suite.store.CreateManualLiability(record))

	records, err := suite.store.GetManualLiabilities(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.True(records[0].Balance.Equal(decimal.NewFromInt(8000)))
}

func (suite *DocumentStoreTestSuite) TestCreateAndGetCryptoHoldings() {
	record := &models.CryptoHoldingRecord{
		UserID:   suite.userID,
		Symbol:   "BTC",
		Quantity: decimal.NewFromFloat(0.5),
		Value:    decimal.NewFromInt(30000),
		Currency: "USD",
	}
	suite.Require().NoError(suite.store.CreateCryptoHolding(record))

	records, err := suite.store.GetCryptoHoldings(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("BTC", records[0].Symbol)
}

func (suite *DocumentStoreTestSuite) TestCreateAndGetRealEstateEntries() {
	record := &models.RealEstateRecord{
		UserID:         suite.userID,
		Name:           "Main residence",
		EstimatedValue: decimal.NewFromInt(350000),
		Currency:       "USD",
	}
	suite.Require().NoError(suite.store.CreateRealEstateEntry(record))

	records, err := suite.store.GetRealEstateEntries(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.True(records[0].EstimatedValue.Equal(decimal.NewFromInt(350000)))
}

func (suite *DocumentStoreTestSuite) TestCreateAndGetPensionEntries() {
	record := &models.PensionRecord{
		UserID:   suite.userID,
		Provider: "Acme Pension Fund",
		Balance:  decimal.NewFromInt(45000),
		Currency: "USD",
	}
	suite.Require().NoError(suite.store.CreatePensionEntry(record))

	records, err := suite.store.GetPensionEntries(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("Acme Pension Fund", records[0].Provider)
}

func (suite *DocumentStoreTestSuite) TestGetReturnsOnlyOwnRecords() {
	otherUser := uuid.New()
	suite.Require().NoError(suite.store.CreateManualAsset(&models.ManualAssetRecord{
		UserID:  suite.userID,
		Name:    "Mine",
		Balance: decimal.NewFromInt(1),
	}))
	suite.Require().NoError(suite.store.CreateManualAsset(&models.ManualAssetRecord{
		UserID:  otherUser,
		Name:    "Theirs",
		Balance: decimal.NewFromInt(2),
	}))

	records, err := suite.store.GetManualAssets(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("Mine", records[0].Name)
}

func (suite *DocumentStoreTestSuite) TestGetEmptyCollections() {
	assets, err := suite.store.GetManualAssets(suite.userID)
	suite.NoError(err)
	suite.Empty(assets)

	snapshots, err := suite.store.GetAccountSnapshots(suite.userID)
	suite.NoError(err)
	suite.Empty(snapshots)
}

func (suite *DocumentStoreTestSuite) TestReplaceAccountSnapshots() {
	capturedAt := time.Now().UTC()
	first := []models.AccountSnapshotRecord{
		{UserID: suite.userID, AccountID: "acc-1", Name: "Checking", Subtype: "checking", Balance: decimal.NewFromInt(1200), Currency: "USD", CapturedAt: capturedAt},
		{UserID: suite.userID, AccountID: "acc-2", Name: "Savings", Subtype: "savings", Balance: decimal.NewFromInt(5000), Currency: "USD", CapturedAt: capturedAt},
	}
	suite.Require().NoError(suite.store.ReplaceAccountSnapshots(suite.userID, first))

	records, err := suite.store.GetAccountSnapshots(suite.userID)
	suite.Require().NoError(err)
	suite.Len(records, 2)

	second := []models.AccountSnapshotRecord{
		{UserID: suite.userID, AccountID: "acc-1", Name: "Checking", Subtype: "checking", Balance: decimal.NewFromInt(1300), Currency: "USD", CapturedAt: capturedAt.Add(time.Hour)},
	}
	suite.Require().NoError(suite.store.ReplaceAccountSnapshots(suite.userID, second))

	records, err = suite.store.GetAccountSnapshots(suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("acc-1", records[0].AccountID)
	suite.True(records[0].Balance.Equal(decimal.NewFromInt(1300)))
}

func (suite *DocumentStoreTestSuite) TestReplaceAccountSnapshotsWithEmptyListClears() {
	first := []models.AccountSnapshotRecord{
		{UserID: suite.userID, AccountID: "acc-1", Name: "Checking", Subtype: "checking", Balance: decimal.NewFromInt(1200), Currency: "USD", CapturedAt: time.Now()},
	}
	suite.Require().NoError(suite.store.ReplaceAccountSnapshots(suite.userID, first))
	suite.Require().NoError(suite.store.ReplaceAccountSnapshots(suite.userID, nil))

	records, err := suite.store.GetAccountSnapshots(suite.userID)
	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *DocumentStoreTestSuite) TestReplaceAccountSnapshotsDoesNotTouchOtherUsers() {
	otherUser := uuid.New()
	suite.Require().NoError(suite.store.ReplaceAccountSnapshots(otherUser, []models.AccountSnapshotRecord{
		{UserID: otherUser, AccountID: "other-1", Name: "Other", Subtype: "checking", Balance: decimal.NewFromInt(10), Currency: "USD", CapturedAt: time.Now()},
	}))

	suite.Require().NoError(suite.store.ReplaceAccountSnapshots(suite.userID, nil))

	records, err := suite.store.GetAccountSnapshots(otherUser)
	suite.Require().NoError(err)
	suite.Len(records, 1)
}

func (suite *DocumentStoreTestSuite) TestReplaceAccountSnapshotsRequiresUserID() {
	err := suite.store.ReplaceAccountSnapshots(uuid.Nil, nil)
	suite.ErrorIs(err, ErrMissingUserID)
}

func TestDocumentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreTestSuite))
}
