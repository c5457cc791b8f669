package repositories

import (
	"errors"
	"fmt"

	"finsight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrMissingUserID  = errors.New("user id is required")
)

// documentStore implements DocumentStoreInterface on top of GORM.
type documentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a new document store repository
func NewDocumentStore(db *gorm.DB) DocumentStoreInterface {
	return &documentStore{db: db}
}

func (r *documentStore) GetManualAssets(userID uuid.UUID) ([]models.ManualAssetRecord, error) {
	var records []models.ManualAssetRecord
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get manual assets: %w", err)
	}
	return records, nil
}

func (r *documentStore) GetManualLiabilities(userID uuid.UUID) ([]models.ManualLiabilityRecord, error) {
	var records []models.ManualLiabilityRecord
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get manual liabilities: %w", err)
	}
	return records, nil
}

func (r *documentStore) GetCryptoHoldings(userID uuid.UUID) ([]models.CryptoHoldingRecord, error) {
	var records []models.CryptoHoldingRecord
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get crypto holdings: %w", err)
	}
	return records, nil
}

func (r *documentStore) GetRealEstateEntries(userID uuid.UUID) ([]models.RealEstateRecord, error) {
	var records []models.RealEstateRecord
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get real estate entries: %w", err)
	}
	return records, nil
}

func (r *documentStore) GetPensionEntries(userID uuid.UUID) ([]models.PensionRecord, error) {
	var records []models.PensionRecord
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get pension entries: %w", err)
	}
	return records, nil
}

func (r *documentStore) GetAccountSnapshots(userID uuid.UUID) ([]models.AccountSnapshotRecord, error) {
	var records []models.AccountSnapshotRecord
	if err := r.db.Where("user_id = ?", userID).Order("captured_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get account snapshots: %w", err)
	}
	return records, nil
}

func (r *documentStore) CreateManualAsset(record *models.ManualAssetRecord) error {
	if record.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create manual asset: %w", err)
	}
	return nil
}

func (r *documentStore) CreateManualLiability(record *models.ManualLiabilityRecord) error {
	if record.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create manual liability: %w", err)
	}
	return nil
}

func (r *documentStore) CreateCryptoHolding(record *models.CryptoHoldingRecord) error {
	if record.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create crypto holding: %w", err)
	}
	return nil
}

func (r *documentStore) CreateRealEstateEntry(record *models.RealEstateRecord) error {
	if record.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create real estate entry: %w", err)
	}
	return nil
}

func (r *documentStore) CreatePensionEntry(record *models.PensionRecord) error {
	if record.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create pension entry: %w", err)
	}
	return nil
}

func (r *documentStore) ReplaceAccountSnapshots(userID uuid.UUID, records []models.AccountSnapshotRecord) error {
	if userID == uuid.Nil {
		return ErrMissingUserID
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.AccountSnapshotRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear account snapshots: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to write account snapshots: %w", err)
		}
		return nil
	})
}
