package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	rl "github.com/rogerio-castellano/inventory-analytics/internal/http/rate_limiter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimit(t *testing.T) {
	h := RateLimit(rl.New(1, 1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/analytics/fast-moving", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRequestLoggerLevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	statuses := map[int]zapcore.Level{
		http.StatusOK:                  zapcore.InfoLevel,
		http.StatusNotFound:            zapcore.WarnLevel,
		http.StatusInternalServerError: zapcore.ErrorLevel,
	}
	for status, level := range statuses {
		h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected one log entry, got %d", len(entries))
		}
		if entries[0].Level != level {
			t.Errorf("status %d: expected level %s, got %s", status, level, entries[0].Level)
		}
		if got := entries[0].ContextMap()["status"]; got != int64(status) {
			t.Errorf("expected status field %d, got %v", status, got)
		}
	}
}
