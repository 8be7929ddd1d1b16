package store

import (
	"context"
)

func (s *Store) CreatePlayer(ctx context.Context, name string, leaderCardID int64) (*Player, error) {
	token := NewToken()
	var p Player
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO player (name, token, leader_card_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, token, leader_card_id, created_at
	`, name, token, leaderCardID).Scan(&p.ID, &p.Name, &p.Token, &p.LeaderCardID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetPlayerByToken(ctx context.Context, token string) (*Player, error) {
	var p Player
	err := s.Pool.QueryRow(ctx, `
		SELECT id, name, token, leader_card_id, created_at
		FROM player WHERE token = $1
	`, token).Scan(&p.ID, &p.Name, &p.Token, &p.LeaderCardID, &p.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *Store) UpdatePlayer(ctx context.Context, token, name string, leaderCardID int64) error {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE player SET name = $1, leader_card_id = $2 WHERE token = $3
	`, name, leaderCardID, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
