package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/inventory-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-analytics/internal/models"
)

func TestAdjustQuantityHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Pens", Price: 1.5, Quantity: 10})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	tests := []struct {
		name         string
		adj          handler.QuantityAdjustmentRequest
		expectCode   int
		expectQty    int
		expectAction models.Action
	}{
		{"Positive delta defaults to add", handler.QuantityAdjustmentRequest{Delta: 5}, http.StatusOK, 15, models.ActionAdd},
		{"Negative delta defaults to remove", handler.QuantityAdjustmentRequest{Delta: -3}, http.StatusOK, 12, models.ActionRemove},
		{"Sale", handler.QuantityAdjustmentRequest{Delta: -2, Action: "sold"}, http.StatusOK, 10, models.ActionSold},
		{"Correction", handler.QuantityAdjustmentRequest{Delta: -1, Action: "update"}, http.StatusOK, 9, models.ActionUpdate},
		{"Zero delta", handler.QuantityAdjustmentRequest{Delta: 0}, http.StatusBadRequest, 9, ""},
		{"Add with negative delta", handler.QuantityAdjustmentRequest{Delta: -1, Action: "add"}, http.StatusBadRequest, 9, ""},
		{"Sold with positive delta", handler.QuantityAdjustmentRequest{Delta: 1, Action: "sold"}, http.StatusBadRequest, 9, ""},
		{"Unknown action", handler.QuantityAdjustmentRequest{Delta: 1, Action: "stolen"}, http.StatusBadRequest, 9, ""},
		{"Below zero", handler.QuantityAdjustmentRequest{Delta: -100}, http.StatusConflict, 9, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(movementRepo.All())
			w := adjustProduct(r, created.Id, tt.adj)
			if w.Code != tt.expectCode {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectCode, w.Code, w.Body.String())
			}

			product, _ := productRepo.GetByID(t.Context(), created.Id)
			if product.Quantity != tt.expectQty {
				t.Errorf("expected quantity %d, got %d", tt.expectQty, product.Quantity)
			}

			movements := movementRepo.All()
			if tt.expectAction == "" {
				if len(movements) != before {
					t.Errorf("expected no ledger entry, got %d new", len(movements)-before)
				}
				return
			}
			if len(movements) != before+1 {
				t.Fatalf("expected one new ledger entry, got %d", len(movements)-before)
			}
			m := movements[len(movements)-1]
			if m.Action != tt.expectAction || m.Delta != tt.adj.Delta || m.QuantityAfter != tt.expectQty || m.QuantityBefore != tt.expectQty-tt.adj.Delta {
				t.Errorf("unexpected ledger entry: %+v", m)
			}
		})
	}
}

func TestAdjustQuantityHandler_NotFound(t *testing.T) {
	r := newRouter()
	w := adjustProduct(r, 999999, handler.QuantityAdjustmentRequest{Delta: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestAdjustQuantityHandler_MalformedJSON(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodPost, "/products/1/adjust", bytes.NewBufferString(`{"delta": }`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetMovementsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	p := seedProduct("Notebook", 50, 0, today.AddDate(0, -1, 0))
	addMovement(p.ID, models.ActionAdd, 10, 5, 9)
	addMovement(p.ID, models.ActionRemove, -4, 3, 9)
	addMovement(p.ID, models.ActionSold, -2, 1, 9)

	t.Run("All movements newest first", func(t *testing.T) {
		w := get(r, fmt.Sprintf("/products/%d/movements", p.ID))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.MovementsSearchResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Meta.TotalCount != 3 || len(resp.Data) != 3 {
			t.Fatalf("expected 3 movements, got %d (total %d)", len(resp.Data), resp.Meta.TotalCount)
		}
		if resp.Data[0].Action != "sold" || resp.Data[2].Action != "add" {
			t.Errorf("expected newest first, got %+v", resp.Data)
		}
	})

	t.Run("Date range", func(t *testing.T) {
		since := today.AddDate(0, 0, -4).Format(time.RFC3339)
		until := today.Format(time.RFC3339)
		w := get(r, fmt.Sprintf("/products/%d/movements?since=%s&until=%s", p.ID, url.QueryEscape(since), url.QueryEscape(until)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.MovementsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 2 {
			t.Errorf("expected 2 movements in range, got %d", resp.Meta.TotalCount)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		w := get(r, fmt.Sprintf("/products/%d/movements?limit=1&offset=1", p.ID))
		var resp handler.MovementsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 3 || len(resp.Data) != 1 || resp.Data[0].Action != "remove" {
			t.Errorf("unexpected page: %+v", resp)
		}
	})

	t.Run("Invalid parameters", func(t *testing.T) {
		for _, q := range []string{"since=yesterday", "until=2025-13-01", "limit=0", "offset=-1", "limit=abc"} {
			w := get(r, fmt.Sprintf("/products/%d/movements?%s", p.ID, q))
			if w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400 Bad Request, got %d", q, w.Code)
			}
		}
	})

	t.Run("Unknown product", func(t *testing.T) {
		w := get(r, "/products/999999/movements")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})
}
