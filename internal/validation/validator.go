package validation

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("crypto_symbol", validateCryptoSymbol)
	_ = v.RegisterValidation("analysis_type", validateAnalysisType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMoneyAmount rejects non-finite values and more than 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}

	amountStr := strconv.FormatFloat(amount, 'f', -1, 64)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 && len(parts[1]) > 2 {
		return false
	}

	return true
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateCurrencyCode validates a 3-letter uppercase ISO currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, code)
	return matched
}

// validateCryptoSymbol validates a 2-16 character uppercase ticker symbol
func validateCryptoSymbol(fl validator.FieldLevel) bool {
	symbol := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z0-9]{2,16}$`, symbol)
	return matched
}

// validateAnalysisType validates the trend analysis selector
func validateAnalysisType(fl validator.FieldLevel) bool {
	analysisType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"monthly":  true,
		"weekly":   true,
		"daily":    true,
		"category": true,
		"seasonal": true,
		"anomaly":  true,
	}
	return validTypes[analysisType]
}
