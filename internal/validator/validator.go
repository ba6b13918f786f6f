// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"costevida/internal/projection"
)

// validCurrencies contains the currency codes the product supports.
var validCurrencies = map[string]bool{
	"ARS": true, "USD": true, "EUR": true, "BRL": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", validateCurrency)
		_ = v.RegisterValidation("query_mode", validateQueryMode)
		_ = v.RegisterValidation("amount_type", validateAmountType)
	}
}

func validateCurrency(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateQueryMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case projection.ModeAll, projection.ModeYear, projection.ModeMonth:
		return true
	}
	return false
}

func validateAmountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case projection.AmountPerQuota, projection.AmountTotal:
		return true
	}
	return false
}
