package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"go.uber.org/zap"
)

// AdjustQuantityHandler godoc
// @Summary Adjust quantity of a product
// @Description Applies a signed delta to a product's stock and records it in the movement ledger.
// @Description Without an action, positive deltas are recorded as add and negative ones as remove.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity change"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Quantity cannot be negative"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/adjust [post]
func AdjustQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	action, problem := adjustmentAction(req)
	if problem != "" {
		http.Error(w, problem, http.StatusBadRequest)
		return
	}

	product, err := productRepo.AdjustQuantity(r.Context(), id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "quantity cannot be negative", http.StatusConflict)
		default:
			serverError(w, r, "could not update quantity", err)
		}
		return
	}

	logMovement(r, models.Movement{
		ProductID:      product.ID,
		Action:         action,
		Delta:          req.Delta,
		QuantityBefore: product.Quantity - req.Delta,
		QuantityAfter:  product.Quantity,
		OccurredAt:     time.Now().UTC(),
	})

	if product.LowStock() {
		logger.Warn("product at or below minimum stock level",
			zap.Int("product_id", product.ID),
			zap.String("name", product.Name),
			zap.Int("quantity", product.Quantity),
			zap.Int("min_stock_level", product.MinStockLevel),
		)
	}

	respond(w, r, http.StatusOK, toProductResponse(product))
}

// GetMovementsHandler godoc
// @Summary Get product movement logs
// @Tags movements
// @Produce json
// @Param id path int true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements before this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		serverError(w, r, "could not fetch product", err)
		return
	}

	var mf repo.MovementFilter
	if mf.Since, err = queryTime(r, "since"); err != nil {
		http.Error(w, "invalid since date format", http.StatusBadRequest)
		return
	}
	if mf.Until, err = queryTime(r, "until"); err != nil {
		http.Error(w, "invalid until date format", http.StatusBadRequest)
		return
	}

	if r.URL.Query().Has("limit") {
		limit, err := queryInt(r, "limit", 0)
		if err != nil || limit <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
		mf.Limit = &limit
	}
	if r.URL.Query().Has("offset") {
		offset, err := queryInt(r, "offset", 0)
		if err != nil || offset < 0 {
			http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
			return
		}
		mf.Offset = &offset
	}

	movements, total, err := movementRepo.GetByProductID(r.Context(), id, mf)
	if err != nil {
		serverError(w, r, "could not retrieve movements", err)
		return
	}

	response := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		response.Data[i] = MovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			Action:         string(m.Action),
			Delta:          m.Delta,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			OccurredAt:     m.OccurredAt.Format(time.RFC3339),
		}
	}
	respond(w, r, http.StatusOK, response)
}

// queryTime parses an optional RFC3339 query parameter.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	// Query decoding turns the + of a UTC offset into a space.
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
