package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rhythm-lobby/internal/app/lobby"
	"rhythm-lobby/internal/store"

	"github.com/go-chi/chi/v5"
)

func roomCreateHandler(rooms *lobby.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			LiveID           int64            `json:"live_id"`
			SelectDifficulty store.Difficulty `json:"select_difficulty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		roomID, err := rooms.CreateRoom(r.Context(), requestToken(r), body.LiveID, body.SelectDifficulty)
		if err != nil {
			switch {
			case errors.Is(err, lobby.ErrInvalidToken):
				writeHTTPError(w, http.StatusUnauthorized, "invalid_token")
			case errors.Is(err, lobby.ErrInvalidRequest):
				writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		roomCreateTotal.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"room_id": roomID})
	}
}

func roomListHandler(rooms *lobby.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			LiveID int64 `json:"live_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		items, err := rooms.SearchRooms(r.Context(), body.LiveID)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"room_info_list": items})
	}
}

func roomJoinHandler(rooms *lobby.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RoomID           int64            `json:"room_id"`
			SelectDifficulty store.Difficulty `json:"select_difficulty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.SelectDifficulty == 0 {
			body.SelectDifficulty = store.DifficultyNormal
		}
		result, err := rooms.JoinRoom(r.Context(), requestToken(r), body.RoomID, body.SelectDifficulty)
		if err != nil {
			switch {
			case errors.Is(err, lobby.ErrInvalidToken):
				writeHTTPError(w, http.StatusUnauthorized, "invalid_token")
			case errors.Is(err, lobby.ErrRoomNotFound):
				writeHTTPError(w, http.StatusNotFound, "room_not_found")
			case errors.Is(err, lobby.ErrInvalidRequest):
				writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		switch result {
		case lobby.JoinOk:
			joinOkTotal.Add(1)
		case lobby.JoinOtherError:
			joinErrorTotal.Add(1)
		default:
			joinRejectedTotal.Add(1)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"join_room_result": result})
	}
}

func roomWaitHandler(rooms *lobby.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RoomID int64 `json:"room_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		view, err := rooms.WaitRoom(r.Context(), body.RoomID)
		if err != nil {
			if errors.Is(err, lobby.ErrRoomNotFound) {
				writeHTTPError(w, http.StatusNotFound, "room_not_found")
				return
			}
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(view)
	}
}

func adminDissolveRoomHandler(rooms *lobby.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := strconv.ParseInt(chi.URLParam(r, "room_id"), 10, 64)
		if err != nil || roomID <= 0 {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if err := rooms.DissolveRoom(r.Context(), roomID); err != nil {
			if errors.Is(err, lobby.ErrRoomNotFound) {
				writeHTTPError(w, http.StatusNotFound, "room_not_found")
				return
			}
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func adminRoomEventsHandler(rooms *lobby.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		f := store.RoomEventFilter{}
		if v := r.URL.Query().Get("room_id"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				f.RoomID = n
			}
		}
		if v := r.URL.Query().Get("player_id"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				f.PlayerID = n
			}
		}
		items, err := rooms.RoomEvents(r.Context(), f, limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			out = append(out, map[string]any{
				"id":         it.ID,
				"room_id":    it.RoomID,
				"player_id":  it.PlayerID,
				"event_type": it.EventType,
				"created_at": it.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":  out,
			"limit":  limit,
			"offset": offset,
		})
	}
}
