package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// CreateRoom inserts the room and the host's membership as one atomic unit.
// The creator is always join_order 1 with the room counted as one joined.
func (s *Store) CreateRoom(ctx context.Context, liveID, hostPlayerID int64, difficulty Difficulty, capacity int) (int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var roomID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO room (live_id, host_player_id, capacity, joined_count, status)
		VALUES ($1, $2, $3, 1, $4)
		RETURNING id
	`, liveID, hostPlayerID, capacity, StatusWaiting).Scan(&roomID)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO room_member (room_id, player_id, difficulty, join_order)
		VALUES ($1, $2, $3, 1)
	`, roomID, hostPlayerID, difficulty)
	if err != nil {
		return 0, err
	}
	if err := recordRoomEvent(ctx, tx, roomID, &hostPlayerID, EventRoomCreated); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return roomID, nil
}

// ListJoinableRooms returns Waiting rooms for the live with at least one
// member and at least one free slot. Each call re-queries current state.
func (s *Store) ListJoinableRooms(ctx context.Context, liveID int64) ([]RoomInfo, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, live_id, joined_count, capacity
		FROM room
		WHERE live_id = $1 AND status = $2 AND joined_count > 0 AND joined_count < capacity
	`, liveID, StatusWaiting)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []RoomInfo{}
	for rows.Next() {
		var r RoomInfo
		if err := rows.Scan(&r.RoomID, &r.LiveID, &r.JoinedCount, &r.Capacity); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AdmitMember decides and applies one join attempt in a single transaction.
// The room row is locked for the duration of the check-and-increment, so two
// racing admissions serialize and the capacity check can never be stale. The
// returned int is the assigned join_order, zero unless the outcome is
// Admitted. Unknown rooms return ErrNotFound.
func (s *Store) AdmitMember(ctx context.Context, roomID, playerID int64, difficulty Difficulty) (AdmissionOutcome, int, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	var (
		status      RoomStatus
		joinedCount int
		capacity    int
	)
	err = tx.QueryRow(ctx, `
		SELECT status, joined_count, capacity FROM room WHERE id = $1 FOR UPDATE
	`, roomID).Scan(&status, &joinedCount, &capacity)
	if err != nil {
		return 0, 0, mapNotFound(err)
	}

	switch status {
	case StatusDissolution:
		return AdmissionDisbanded, 0, nil
	case StatusLiveStart:
		// No longer accepting joins; reported as full.
		return AdmissionRoomFull, 0, nil
	case StatusWaiting:
	}

	var alreadyMember bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM room_member WHERE room_id = $1 AND player_id = $2)
	`, roomID, playerID).Scan(&alreadyMember)
	if err != nil {
		return 0, 0, err
	}
	if alreadyMember {
		return AdmissionAlreadyJoined, 0, nil
	}
	if joinedCount >= capacity {
		return AdmissionRoomFull, 0, nil
	}

	joinOrder := joinedCount + 1
	_, err = tx.Exec(ctx, `
		INSERT INTO room_member (room_id, player_id, difficulty, join_order)
		VALUES ($1, $2, $3, $4)
	`, roomID, playerID, difficulty, joinOrder)
	if err != nil {
		return 0, 0, err
	}
	_, err = tx.Exec(ctx, `
		UPDATE room SET joined_count = joined_count + 1 WHERE id = $1
	`, roomID)
	if err != nil {
		return 0, 0, err
	}
	if err := recordRoomEvent(ctx, tx, roomID, &playerID, EventMemberJoined); err != nil {
		return 0, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return Admitted, joinOrder, nil
}

func (s *Store) GetRoom(ctx context.Context, roomID int64) (*Room, error) {
	var r Room
	err := s.Pool.QueryRow(ctx, `
		SELECT id, live_id, host_player_id, capacity, joined_count, status, created_at
		FROM room WHERE id = $1
	`, roomID).Scan(&r.ID, &r.LiveID, &r.HostPlayerID, &r.Capacity, &r.JoinedCount, &r.Status, &r.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &r, nil
}

func (s *Store) GetRoomStatus(ctx context.Context, roomID int64) (RoomStatus, error) {
	var status RoomStatus
	err := s.Pool.QueryRow(ctx, `SELECT status FROM room WHERE id = $1`, roomID).Scan(&status)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return status, nil
}

// ListMembers returns the room's memberships joined with their player rows,
// ordered by join_order ascending.
func (s *Store) ListMembers(ctx context.Context, roomID int64) ([]Member, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT m.room_id, m.player_id, p.name, p.leader_card_id, m.difficulty, m.join_order, m.joined_at
		FROM room_member m
		JOIN player p ON p.id = m.player_id
		WHERE m.room_id = $1
		ORDER BY m.join_order ASC
	`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Member{}
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.RoomID, &m.PlayerID, &m.Name, &m.LeaderCardID, &m.Difficulty, &m.JoinOrder, &m.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateRoomStatus transitions exactly one room. Every status mutation is
// scoped to a single room id.
func (s *Store) UpdateRoomStatus(ctx context.Context, roomID int64, status RoomStatus) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE room SET status = $1 WHERE id = $2`, status, roomID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if err := recordRoomEvent(ctx, tx, roomID, nil, EventStatusChange+":"+status.String()); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
