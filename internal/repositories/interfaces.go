package repositories

import (
	"finsight/internal/models"

	"github.com/google/uuid"
)

// DocumentStoreInterface exposes the per-user collections of manually
// entered and cached records that feed the normalizer. Each getter returns a
// flat list; an empty collection is not an error.
type DocumentStoreInterface interface {
	GetManualAssets(userID uuid.UUID) ([]models.ManualAssetRecord, error)
	GetManualLiabilities(userID uuid.UUID) ([]models.ManualLiabilityRecord, error)
	GetCryptoHoldings(userID uuid.UUID) ([]models.CryptoHoldingRecord, error)
	GetRealEstateEntries(userID uuid.UUID) ([]models.RealEstateRecord, error)
	GetPensionEntries(userID uuid.UUID) ([]models.PensionRecord, error)
	GetAccountSnapshots(userID uuid.UUID) ([]models.AccountSnapshotRecord, error)

	CreateManualAsset(record *models.ManualAssetRecord) error
	CreateManualLiability(record *models.ManualLiabilityRecord) error
	CreateCryptoHolding(record *models.CryptoHoldingRecord) error
	CreateRealEstateEntry(record *models.RealEstateRecord) error
	CreatePensionEntry(record *models.PensionRecord) error

	// ReplaceAccountSnapshots overwrites the cached snapshot set for a user
	// after a successful live sync.
	ReplaceAccountSnapshots(userID uuid.UUID, records []models.AccountSnapshotRecord) error
}
