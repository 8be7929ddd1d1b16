package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rhythm-lobby/internal/config"
	"rhythm-lobby/internal/testutil"
)

func TestRoutesMounted(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	router := newTestRouter(st, config.ServerConfig{AdminAPIKey: "admin-key"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /healthz 200, got %d", w.Code)
	}

	// Empty body fails decode and proves the route is mounted.
	req = httptest.NewRequest(http.MethodPost, "/api/room/list", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected /api/room/list 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/room-events", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected admin route 401 without key, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/debug/vars", nil)
	req.Header.Set("X-Admin-Key", "admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected expvar route 200 with key, got %d", w.Code)
	}
}
