package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func recordRoomEvent(ctx context.Context, tx pgx.Tx, roomID int64, playerID *int64, eventType string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO room_event (room_id, player_id, event_type)
		VALUES ($1, $2, $3)
	`, roomID, playerID, eventType)
	return err
}

type RoomEventFilter struct {
	RoomID   int64
	PlayerID int64
}

func (s *Store) ListRoomEvents(ctx context.Context, f RoomEventFilter, limit, offset int) ([]RoomEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	where := "WHERE 1=1"
	args := []any{}
	if f.RoomID != 0 {
		args = append(args, f.RoomID)
		where += fmt.Sprintf(" AND room_id = $%d", len(args))
	}
	if f.PlayerID != 0 {
		args = append(args, f.PlayerID)
		where += fmt.Sprintf(" AND player_id = $%d", len(args))
	}
	args = append(args, limit, offset)
	q := `SELECT id, room_id, player_id, event_type, created_at FROM room_event ` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := s.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []RoomEvent{}
	for rows.Next() {
		var e RoomEvent
		if err := rows.Scan(&e.ID, &e.RoomID, &e.PlayerID, &e.EventType, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
