package player

import (
	"context"
	"errors"
	"strings"

	"rhythm-lobby/internal/store"

	"github.com/rs/zerolog/log"
)

// Service is the player directory: it registers players and resolves session
// tokens to player records.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Register creates a player and returns their session token.
func (s *Service) Register(ctx context.Context, name string, leaderCardID int64) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidRequest
	}
	p, err := s.store.CreatePlayer(ctx, name, leaderCardID)
	if err != nil {
		return "", err
	}
	log.Info().Int64("player_id", p.ID).Msg("player registered")
	return p.Token, nil
}

// Resolve maps a session token to a player record.
func (s *Service) Resolve(ctx context.Context, token string) (*store.Player, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	p, err := s.store.GetPlayerByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return p, nil
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context, token string) (*Profile, error) {
	p, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Profile{ID: p.ID, Name: p.Name, LeaderCardID: p.LeaderCardID}, nil
}

// Update rewrites the caller's name and leader card.
func (s *Service) Update(ctx context.Context, token, name string, leaderCardID int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidRequest
	}
	err := s.store.UpdatePlayer(ctx, token, name, leaderCardID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidToken
	}
	return err
}
