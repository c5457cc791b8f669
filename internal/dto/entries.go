package dto

import (
	"finsight/internal/models"
)

// Manual Entry Request DTOs

// CreateManualAssetRequest represents the request payload for adding a manual asset
type CreateManualAssetRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=120"`
	Subtype  string  `json:"subtype" validate:"omitempty,max=40"`
	Balance  float64 `json:"balance" validate:"money_amount"`
	Currency string  `json:"currency" validate:"omitempty,currency_code"`
}

// CreateManualLiabilityRequest represents the request payload for adding a manual
// liability. Balance is the positive magnitude owed.
type CreateManualLiabilityRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=120"`
	Subtype  string  `json:"subtype" validate:"omitempty,max=40"`
	Balance  float64 `json:"balance" validate:"money_amount,positive_amount"`
	Currency string  `json:"currency" validate:"omitempty,currency_code"`
}

// CreateCryptoHoldingRequest represents the request payload for adding a crypto holding
type CreateCryptoHoldingRequest struct {
	Symbol   string  `json:"symbol" validate:"required,crypto_symbol"`
	Quantity float64 `json:"quantity" validate:"positive_amount"`
	Value    float64 `json:"value" validate:"money_amount"`
	Currency string  `json:"currency" validate:"omitempty,currency_code"`
}

// CreateRealEstateRequest represents the request payload for adding a property
type CreateRealEstateRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=120"`
	EstimatedValue float64 `json:"estimated_value" validate:"money_amount,positive_amount"`
	Currency       string  `json:"currency" validate:"omitempty,currency_code"`
}

// CreatePensionRequest represents the request payload for adding a pension
type CreatePensionRequest struct {
	Provider string  `json:"provider" validate:"required,min=1,max=120"`
	Balance  float64 `json:"balance" validate:"money_amount,positive_amount"`
	Currency string  `json:"currency" validate:"omitempty,currency_code"`
}

// Manual Entry Response DTOs

// EntryListResponse represents the full set of manual entries for a user
type EntryListResponse struct {
	ManualAssets      []models.ManualAssetRecord     `json:"manual_assets"`
	ManualLiabilities []models.ManualLiabilityRecord `json:"manual_liabilities"`
	CryptoHoldings    []models.CryptoHoldingRecord   `json:"crypto_holdings"`
	RealEstateEntries []models.RealEstateRecord      `json:"real_estate_entries"`
	PensionEntries    []models.PensionRecord         `json:"pension_entries"`
}
