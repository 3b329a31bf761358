package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
)

// GetAlertsHandler godoc
// @Summary List alerts
// @Description Newest first. unread_only restricts the list to alerts not yet marked as read.
// @Tags alerts
// @Produce json
// @Param unread_only query bool false "Only unread alerts"
// @Success 200 {object} AlertsResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /alerts [get]
func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	unreadOnly := false
	if s := r.URL.Query().Get("unread_only"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "unread_only must be a boolean", http.StatusBadRequest)
			return
		}
		unreadOnly = v
	}

	list, err := alertSvc.List(r.Context(), unreadOnly)
	if err != nil {
		serverError(w, r, "could not list alerts", err)
		return
	}

	resp := AlertsResponse{Data: make([]AlertResponse, 0, len(list)), Meta: Meta{TotalCount: len(list)}}
	for _, a := range list {
		resp.Data = append(resp.Data, toAlertResponse(a))
	}
	respond(w, r, http.StatusOK, resp)
}

// CheckAlertsHandler godoc
// @Summary Raise low-stock alerts now
// @Description Creates one alert per low-stock product that has no unread alert from today.
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertCheckResponse
// @Failure 500 {string} string "Internal error"
// @Router /alerts/check [post]
func CheckAlertsHandler(w http.ResponseWriter, r *http.Request) {
	n, err := alertSvc.CheckAlerts(r.Context())
	if err != nil {
		serverError(w, r, "could not check alerts", err)
		return
	}
	respond(w, r, http.StatusOK, AlertCheckResponse{Created: n})
}

// MarkAlertReadHandler godoc
// @Summary Mark an alert as read
// @Tags alerts
// @Param id path int true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid alert ID"
// @Failure 404 {string} string "Alert not found"
// @Failure 500 {string} string "Internal error"
// @Router /alerts/{id}/read [put]
func MarkAlertReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid alert ID", http.StatusBadRequest)
		return
	}

	if err := alertSvc.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrAlertNotFound) {
			http.Error(w, "alert not found", http.StatusNotFound)
			return
		}
		serverError(w, r, "could not mark alert as read", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllAlertsReadHandler godoc
// @Summary Mark every alert as read
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsReadResponse
// @Failure 500 {string} string "Internal error"
// @Router /alerts/read-all [put]
func MarkAllAlertsReadHandler(w http.ResponseWriter, r *http.Request) {
	n, err := alertSvc.MarkAllRead(r.Context())
	if err != nil {
		serverError(w, r, "could not mark alerts as read", err)
		return
	}
	respond(w, r, http.StatusOK, AlertsReadResponse{Updated: n})
}
