package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rhythm-lobby/internal/app/lobby"
	"rhythm-lobby/internal/app/player"
	"rhythm-lobby/internal/config"
	"rhythm-lobby/internal/store"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(st *store.Store, cfg config.ServerConfig) *chi.Mux {
	players := player.NewService(st)
	rooms := lobby.NewService(st, players, cfg.RoomCapacity)
	return newRouter(st, cfg, players, rooms)
}

func doJSON(t *testing.T, router *chi.Mux, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerTestPlayer(t *testing.T, router *chi.Mux, name string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/user/create", "", map[string]any{
		"user_name":      name,
		"leader_card_id": 1000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d: %s", name, w.Code, w.Body.String())
	}
	var resp struct {
		UserToken string `json:"user_token"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.UserToken == "" {
		t.Fatalf("register %s: empty token", name)
	}
	return resp.UserToken
}

func createTestRoom(t *testing.T, router *chi.Mux, token string, liveID int64, difficulty int) int64 {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/room/create", token, map[string]any{
		"live_id":           liveID,
		"select_difficulty": difficulty,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create room: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		RoomID int64 `json:"room_id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode create room response: %v", err)
	}
	if resp.RoomID == 0 {
		t.Fatal("create room: zero room_id")
	}
	return resp.RoomID
}

func joinTestRoom(t *testing.T, router *chi.Mux, token string, roomID int64) int {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/room/join", token, map[string]any{
		"room_id": roomID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("join room: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		JoinRoomResult int `json:"join_room_result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode join response: %v", err)
	}
	return resp.JoinRoomResult
}
