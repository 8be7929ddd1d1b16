package lobby

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"rhythm-lobby/internal/app/player"
	"rhythm-lobby/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

const (
	defaultRoomCapacity = 4
	maxAdmitAttempts    = 3
)

// Service is the room membership coordinator. All room mutations go through
// the store's per-room atomic operations; the service resolves tokens,
// validates input and maps store outcomes to protocol results.
type Service struct {
	store    *store.Store
	players  *player.Service
	capacity int
}

func NewService(st *store.Store, players *player.Service, capacity int) *Service {
	if capacity <= 0 {
		capacity = defaultRoomCapacity
	}
	return &Service{store: st, players: players, capacity: capacity}
}

// CreateRoom creates a room hosted by the caller, who becomes its first
// member with join_order 1.
func (s *Service) CreateRoom(ctx context.Context, token string, liveID int64, difficulty store.Difficulty) (int64, error) {
	if !difficulty.Valid() {
		return 0, ErrInvalidRequest
	}
	p, err := s.players.Resolve(ctx, token)
	if err != nil {
		return 0, mapTokenErr(err)
	}
	roomID, err := s.store.CreateRoom(ctx, liveID, p.ID, difficulty, s.capacity)
	if err != nil {
		return 0, err
	}
	log.Info().Int64("room_id", roomID).Int64("live_id", liveID).Int64("host_player_id", p.ID).Msg("room created")
	return roomID, nil
}

// SearchRooms lists rooms for the live that are waiting and have a free
// slot. Ordering among joinable rooms is not stable across calls.
func (s *Service) SearchRooms(ctx context.Context, liveID int64) ([]RoomInfo, error) {
	items, err := s.store.ListJoinableRooms(ctx, liveID)
	if err != nil {
		return nil, err
	}
	out := make([]RoomInfo, 0, len(items))
	for _, it := range items {
		out = append(out, RoomInfo{
			RoomID:          it.RoomID,
			LiveID:          it.LiveID,
			JoinedUserCount: it.JoinedCount,
			MaxUserCount:    it.Capacity,
		})
	}
	return out, nil
}

// JoinRoom admits the caller into the room, recording their difficulty
// selection with the membership. Admission outcomes are values; only unknown
// tokens and unknown rooms use the error channel.
func (s *Service) JoinRoom(ctx context.Context, token string, roomID int64, difficulty store.Difficulty) (JoinResult, error) {
	if !difficulty.Valid() {
		return 0, ErrInvalidRequest
	}
	p, err := s.players.Resolve(ctx, token)
	if err != nil {
		return 0, mapTokenErr(err)
	}

	var (
		outcome   store.AdmissionOutcome
		joinOrder int
	)
	for attempt := 1; ; attempt++ {
		outcome, joinOrder, err = s.store.AdmitMember(ctx, roomID, p.ID, difficulty)
		if err == nil {
			break
		}
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrRoomNotFound
		}
		if attempt >= maxAdmitAttempts || !retryableAdmitError(err) {
			log.Error().Err(err).Int64("room_id", roomID).Int64("player_id", p.ID).Msg("admission failed")
			return JoinOtherError, nil
		}
		sleepJitter(attempt)
	}

	switch outcome {
	case store.Admitted:
		log.Info().Int64("room_id", roomID).Int64("player_id", p.ID).Int("join_order", joinOrder).Msg("member joined")
		return JoinOk, nil
	case store.AdmissionRoomFull:
		return JoinRoomFull, nil
	case store.AdmissionDisbanded:
		return JoinDisbanded, nil
	case store.AdmissionAlreadyJoined:
		return JoinAlreadyJoined, nil
	default:
		log.Error().Stringer("outcome", outcome).Int64("room_id", roomID).Msg("unhandled admission outcome")
		return JoinOtherError, nil
	}
}

// WaitRoom returns the room's status and its members in join order. Host
// identity comes from the room row, not from join_order.
func (s *Service) WaitRoom(ctx context.Context, roomID int64) (*WaitRoomView, error) {
	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	members, err := s.store.ListMembers(ctx, roomID)
	if err != nil {
		return nil, err
	}
	users := make([]RoomUser, 0, len(members))
	for _, m := range members {
		users = append(users, RoomUser{
			UserID:           m.PlayerID,
			Name:             m.Name,
			LeaderCardID:     m.LeaderCardID,
			SelectDifficulty: m.Difficulty,
			IsHost:           m.PlayerID == room.HostPlayerID,
		})
	}
	return &WaitRoomView{Status: room.Status, Users: users}, nil
}

// DissolveRoom marks a room terminal. Dissolved rooms reject every further
// join and drop out of search results.
func (s *Service) DissolveRoom(ctx context.Context, roomID int64) error {
	err := s.store.UpdateRoomStatus(ctx, roomID, store.StatusDissolution)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRoomNotFound
	}
	if err == nil {
		log.Info().Int64("room_id", roomID).Msg("room dissolved")
	}
	return err
}

// RoomEvents lists the audit trail of room mutations.
func (s *Service) RoomEvents(ctx context.Context, f store.RoomEventFilter, limit, offset int) ([]store.RoomEvent, error) {
	return s.store.ListRoomEvents(ctx, f, limit, offset)
}

func mapTokenErr(err error) error {
	if errors.Is(err, player.ErrInvalidToken) {
		return ErrInvalidToken
	}
	return err
}

// retryableAdmitError reports whether the admission transaction hit a
// transient conflict (serialization failure or deadlock) worth retrying.
func retryableAdmitError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	}
	return false
}

func sleepJitter(attempt int) {
	base := time.Duration(attempt) * 10 * time.Millisecond
	time.Sleep(base + time.Duration(rand.Intn(20))*time.Millisecond)
}
