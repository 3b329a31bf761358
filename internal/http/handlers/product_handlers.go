package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rogerio-castellano/inventory-analytics/internal/models"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"go.uber.org/zap"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory. Initial stock is recorded in the movement ledger.
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "Duplicated name"
// @Failure 500 {string} string "Internal error"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	now := time.Now().UTC()
	created, err := productRepo.Create(r.Context(), models.Product{
		Name:          req.Name,
		Price:         req.Price,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product name duplicated", http.StatusConflict)
			return
		}
		serverError(w, r, "could not create product", err)
		return
	}

	if created.Quantity > 0 {
		logMovement(r, models.Movement{
			ProductID:      created.ID,
			Action:         models.ActionAdd,
			Delta:          created.Quantity,
			QuantityBefore: 0,
			QuantityAfter:  created.Quantity,
			OccurredAt:     now,
		})
	}

	respond(w, r, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		serverError(w, r, "could not fetch products", err)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	respond(w, r, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		serverError(w, r, "could not fetch product", err)
		return
	}
	respond(w, r, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces a product's fields. A quantity change is recorded in the movement ledger as an update.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Product fields"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicated name"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	existing, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		serverError(w, r, "could not fetch product", err)
		return
	}

	now := time.Now().UTC()
	updated, err := productRepo.Update(r.Context(), models.Product{
		ID:            id,
		Name:          req.Name,
		Price:         req.Price,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
		UpdatedAt:     now,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "could not update product: product name duplicated", http.StatusConflict)
		default:
			serverError(w, r, "could not update product", err)
		}
		return
	}

	if updated.Quantity != existing.Quantity {
		logMovement(r, models.Movement{
			ProductID:      id,
			Action:         models.ActionUpdate,
			Delta:          updated.Quantity - existing.Quantity,
			QuantityBefore: existing.Quantity,
			QuantityAfter:  updated.Quantity,
			OccurredAt:     now,
		})
	}

	respond(w, r, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		serverError(w, r, "could not delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// logMovement appends to the ledger after the product write has succeeded. A failed
// append is logged; the product change stands.
func logMovement(r *http.Request, m models.Movement) {
	if _, err := movementRepo.Log(r.Context(), m); err != nil {
		logger.Error("could not record stock movement",
			zap.Int("product_id", m.ProductID),
			zap.String("action", string(m.Action)),
			zap.Int("delta", m.Delta),
			zap.Error(err),
		)
	}
}
