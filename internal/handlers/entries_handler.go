package handlers

import (
	"net/http"

	"finsight/internal/dto"
	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// EntriesHandler manages the manually entered holdings that feed aggregation
type EntriesHandler struct {
	store repositories.DocumentStoreInterface
}

// NewEntriesHandler creates a new manual entries handler
func NewEntriesHandler(store repositories.DocumentStoreInterface) *EntriesHandler {
	return &EntriesHandler{store: store}
}

// ListEntries returns every manual entry collection for the authenticated user
// @Summary List manual entries
// @Tags Entries
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.EntryListResponse}
// @Router /api/v1/entries [get]
func (h *EntriesHandler) ListEntries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	response := dto.EntryListResponse{}
	if response.ManualAssets, err = h.store.GetManualAssets(userID); err != nil {
		return SendSystemError(c, err)
	}
	if response.ManualLiabilities, err = h.store.GetManualLiabilities(userID); err != nil {
		return SendSystemError(c, err)
	}
	if response.CryptoHoldings, err = h.store.GetCryptoHoldings(userID); err != nil {
		return SendSystemError(c, err)
	}
	if response.RealEstateEntries, err = h.store.GetRealEstateEntries(userID); err != nil {
		return SendSystemError(c, err)
	}
	if response.PensionEntries, err = h.store.GetPensionEntries(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// CreateManualAsset adds a manual asset entry
// @Summary Add manual asset
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body dto.CreateManualAssetRequest true "Asset details"
// @Success 201 {object} SuccessResponse{data=models.ManualAssetRecord}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Router /api/v1/entries/assets [post]
func (h *EntriesHandler) CreateManualAsset(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateManualAssetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	record := &models.ManualAssetRecord{
		UserID:   userID,
		Name:     req.Name,
		Subtype:  req.Subtype,
		Balance:  decimal.NewFromFloat(req.Balance),
		Currency: currencyOrDefault(req.Currency),
	}
	if err := h.store.CreateManualAsset(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: record, Message: "Asset added"})
}

// CreateManualLiability adds a manual liability entry
// @Summary Add manual liability
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body dto.CreateManualLiabilityRequest true "Liability details"
// @Success 201 {object} SuccessResponse{data=models.ManualLiabilityRecord}
// @Router /api/v1/entries/liabilities [post]
func (h *EntriesHandler) CreateManualLiability(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateManualLiabilityRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	record := &models.ManualLiabilityRecord{
		UserID:   userID,
		Name:     req.Name,
		Subtype:  req.Subtype,
		Balance:  decimal.NewFromFloat(req.Balance),
		Currency: currencyOrDefault(req.Currency),
	}
	if err := h.store.CreateManualLiability(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: record, Message: "Liability added"})
}

// CreateCryptoHolding adds a crypto holding entry
// @Summary Add crypto holding
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body dto.CreateCryptoHoldingRequest true "Holding details"
// @Success 201 {object} SuccessResponse{data=models.CryptoHoldingRecord}
// @Router /api/v1/entries/crypto [post]
func (h *EntriesHandler) CreateCryptoHolding(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCryptoHoldingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	record := &models.CryptoHoldingRecord{
		UserID:   userID,
		Symbol:   req.Symbol,
		Quantity: decimal.NewFromFloat(req.Quantity),
		Value:    decimal.NewFromFloat(req.Value),
		Currency: currencyOrDefault(req.Currency),
	}
	if err := h.store.CreateCryptoHolding(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: record, Message: "Holding added"})
}

// CreateRealEstateEntry adds a property entry
// @Summary Add real estate entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body dto.CreateRealEstateRequest true "Property details"
// @Success 201 {object} SuccessResponse{data=models.RealEstateRecord}
// @Router /api/v1/entries/real-estate [post]
func (h *EntriesHandler) CreateRealEstateEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateRealEstateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	record := &models.RealEstateRecord{
		UserID:         userID,
		Name:           req.Name,
		EstimatedValue: decimal.NewFromFloat(req.EstimatedValue),
		Currency:       currencyOrDefault(req.Currency),
	}
	if err := h.store.CreateRealEstateEntry(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: record, Message: "Property added"})
}

// CreatePensionEntry adds a pension entry
// @Summary Add pension entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body dto.CreatePensionRequest true "Pension details"
// @Success 201 {object} SuccessResponse{data=models.PensionRecord}
// @Router /api/v1/entries/pensions [post]
func (h *EntriesHandler) CreatePensionEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreatePensionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	record := &models.PensionRecord{
		UserID:   userID,
		Provider: req.Provider,
		Balance:  decimal.NewFromFloat(req.Balance),
		Currency: currencyOrDefault(req.Currency),
	}
	if err := h.store.CreatePensionEntry(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: record, Message: "Pension added"})
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return models.DefaultCurrency
	}
	return currency
}
