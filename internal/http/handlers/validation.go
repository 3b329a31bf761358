package handlers

import (
	"strings"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.MinStockLevel < 0 {
		errs = append(errs, ProductValidationError{Field: "MinStockLevel", Description: "Minimum stock level cannot be negative"})
	}
	return errs
}

// adjustmentAction resolves the ledger action of a quantity adjustment. Without an
// explicit action, positive deltas are additions and negative ones removals.
func adjustmentAction(req QuantityAdjustmentRequest) (models.Action, string) {
	if req.Delta == 0 {
		return "", "delta must not be zero"
	}
	if req.Action == "" {
		if req.Delta > 0 {
			return models.ActionAdd, ""
		}
		return models.ActionRemove, ""
	}

	action, err := models.ParseAction(req.Action)
	if err != nil {
		return "", "action must be one of add, remove, sold, update"
	}
	switch {
	case action == models.ActionAdd && req.Delta < 0:
		return "", "add requires a positive delta"
	case action.Consumes() && req.Delta > 0:
		return "", string(action) + " requires a negative delta"
	}
	return action, ""
}
