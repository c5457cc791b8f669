package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Document-store records. Each is one flat per-user collection feeding the
// normalizer. Balances here keep their source's native sign convention; the
// normalizer owns sign normalization.

// ManualAssetRecord is a user-entered asset (vehicle, collectible, cash).
type ManualAssetRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"type:varchar(120);not null" json:"name"`
	Subtype   string          `gorm:"type:varchar(40)" json:"subtype"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *ManualAssetRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *ManualAssetRecord) TableName() string { return "manual_assets" }

// ManualLiabilityRecord is a user-entered debt. Balances are stored as
// positive magnitudes, matching how users type them in.
type ManualLiabilityRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"type:varchar(120);not null" json:"name"`
	Subtype   string          `gorm:"type:varchar(40)" json:"subtype"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *ManualLiabilityRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *ManualLiabilityRecord) TableName() string { return "manual_liabilities" }

// CryptoHoldingRecord is a user-tracked crypto position, valued upstream.
type CryptoHoldingRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Symbol    string          `gorm:"type:varchar(16);not null" json:"symbol"`
	Quantity  decimal.Decimal `gorm:"type:decimal(24,8);not null;default:0" json:"quantity"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"value"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *CryptoHoldingRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *CryptoHoldingRecord) TableName() string { return "crypto_holdings" }

// RealEstateRecord is a property entry with an owner-estimated value.
type RealEstateRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string          `gorm:"type:varchar(120);not null" json:"name"`
	EstimatedValue decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"estimated_value"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *RealEstateRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *RealEstateRecord) TableName() string { return "real_estate_entries" }

// PensionRecord is a workplace or private pension balance.
type PensionRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider  string          `gorm:"type:varchar(120);not null" json:"provider"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *PensionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *PensionRecord) TableName() string { return "pension_entries" }

// AccountSnapshotRecord is the last-known state of a linked bank account,
// used when the live connection is down. Subtype keeps the provider's native
// subtype string so the normalizer's lookup table applies unchanged.
type AccountSnapshotRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID  string          `gorm:"type:varchar(64);not null;index" json:"account_id"`
	Name       string          `gorm:"type:varchar(120);not null" json:"name"`
	Subtype    string          `gorm:"type:varchar(40)" json:"subtype"`
	Balance    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency   string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CapturedAt time.Time       `gorm:"not null;index" json:"captured_at"`
}

func (r *AccountSnapshotRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *AccountSnapshotRecord) TableName() string { return "account_snapshots" }
