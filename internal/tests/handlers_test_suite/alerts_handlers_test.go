package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/inventory-analytics/internal/http/handlers"
)

func listAlerts(t *testing.T, r http.Handler, path string) handler.AlertsResponse {
	t.Helper()
	w := get(r, path)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.AlertsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode alerts: %v", err)
	}
	return resp
}

func checkAlerts(t *testing.T, r http.Handler) int {
	t.Helper()
	w := send(r, http.MethodPost, "/alerts/check")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.AlertCheckResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode check response: %v", err)
	}
	return resp.Created
}

func TestCheckAlertsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := today.AddDate(0, 0, -30)
	low := seedProduct("Mouse", 2, 5, created)
	seedProduct("Keyboard", 20, 5, created)
	seedProduct("Cable", 0, 0, created)

	if n := checkAlerts(t, r); n != 2 {
		t.Fatalf("expected 2 alerts created, got %d", n)
	}
	if n := checkAlerts(t, r); n != 0 {
		t.Errorf("expected no duplicate alerts on the same day, got %d", n)
	}

	resp := listAlerts(t, r, "/alerts")
	if resp.Meta.TotalCount != 2 || len(resp.Data) != 2 {
		t.Fatalf("expected 2 alerts, got %+v", resp)
	}

	var mouse handler.AlertResponse
	for _, a := range resp.Data {
		if a.ProductID == low.ID {
			mouse = a
		}
	}
	if mouse.ProductName != "Mouse" {
		t.Errorf("expected product name Mouse, got %q", mouse.ProductName)
	}
	if mouse.AlertType != "low_stock" {
		t.Errorf("expected low_stock alert, got %q", mouse.AlertType)
	}
	if want := "Mouse is running low. Current stock: 2 (Minimum: 5)"; mouse.Message != want {
		t.Errorf("expected message %q, got %q", want, mouse.Message)
	}
	if want := today.Add(14 * time.Hour).Format(time.RFC3339); mouse.CreatedAt != want {
		t.Errorf("expected created_at %s, got %s", want, mouse.CreatedAt)
	}
	if mouse.IsRead {
		t.Error("expected a new alert to be unread")
	}
}

func TestMarkAlertReadHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := today.AddDate(0, 0, -30)
	seedProduct("Mouse", 2, 5, created)
	seedProduct("Monitor", 1, 3, created)
	if n := checkAlerts(t, r); n != 2 {
		t.Fatalf("expected 2 alerts created, got %d", n)
	}

	tests := []struct {
		name string
		path string
		want int
	}{
		{"Invalid ID", "/alerts/abc/read", http.StatusBadRequest},
		{"Unknown alert", "/alerts/999/read", http.StatusNotFound},
		{"Existing alert", "/alerts/1/read", http.StatusNoContent},
		{"Already read", "/alerts/1/read", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := send(r, http.MethodPut, tt.path); w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}

	unread := listAlerts(t, r, "/alerts?unread_only=true")
	if len(unread.Data) != 1 || unread.Data[0].ID != 2 {
		t.Fatalf("expected only alert 2 unread, got %+v", unread.Data)
	}

	// A read alert no longer blocks a fresh one for the same product and day.
	if n := checkAlerts(t, r); n != 1 {
		t.Errorf("expected 1 new alert, got %d", n)
	}
	if all := listAlerts(t, r, "/alerts?unread_only=0"); all.Meta.TotalCount != 3 {
		t.Errorf("expected 3 alerts in total, got %d", all.Meta.TotalCount)
	}
}

func TestMarkAllAlertsReadHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := today.AddDate(0, 0, -30)
	seedProduct("Mouse", 2, 5, created)
	seedProduct("Monitor", 1, 3, created)
	checkAlerts(t, r)

	w := send(r, http.MethodPut, "/alerts/read-all")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.AlertsReadResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Updated != 2 {
		t.Errorf("expected 2 alerts updated, got %d", resp.Updated)
	}

	if unread := listAlerts(t, r, "/alerts?unread_only=1"); len(unread.Data) != 0 {
		t.Errorf("expected no unread alerts, got %d", len(unread.Data))
	}
}

func TestGetAlertsHandler_InvalidFilter(t *testing.T) {
	r := newRouter()
	if w := get(r, "/alerts?unread_only=maybe"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetAlertsHandler_Empty(t *testing.T) {
	t.Cleanup(clearAllProducts)
	resp := listAlerts(t, newRouter(), "/alerts")
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected an empty list, got %+v", resp.Data)
	}
}
