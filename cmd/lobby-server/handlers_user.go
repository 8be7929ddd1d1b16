package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"rhythm-lobby/internal/app/player"
)

func userCreateHandler(players *player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserName     string `json:"user_name"`
			LeaderCardID int64  `json:"leader_card_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		token, err := players.Register(r.Context(), body.UserName, body.LeaderCardID)
		if err != nil {
			if errors.Is(err, player.ErrInvalidRequest) {
				writeHTTPError(w, http.StatusBadRequest, "invalid_request")
				return
			}
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user_token": token})
	}
}

func userMeHandler(players *player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := players.Me(r.Context(), requestToken(r))
		if err != nil {
			if errors.Is(err, player.ErrInvalidToken) {
				writeHTTPError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(profile)
	}
}

func userUpdateHandler(players *player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserName     string `json:"user_name"`
			LeaderCardID int64  `json:"leader_card_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		err := players.Update(r.Context(), requestToken(r), body.UserName, body.LeaderCardID)
		if err != nil {
			switch {
			case errors.Is(err, player.ErrInvalidToken):
				writeHTTPError(w, http.StatusUnauthorized, "invalid_token")
			case errors.Is(err, player.ErrInvalidRequest):
				writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}
}
