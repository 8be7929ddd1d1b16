package store

import "time"

// Difficulty is the chart a member plays in a room. Wire values match the
// client protocol (1 = normal, 2 = hard).
type Difficulty int32

const (
	DifficultyNormal Difficulty = 1
	DifficultyHard   Difficulty = 2
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// RoomStatus is the room lifecycle state. Dissolution is terminal.
type RoomStatus int32

const (
	StatusWaiting     RoomStatus = 1
	StatusLiveStart   RoomStatus = 2
	StatusDissolution RoomStatus = 3
)

func (s RoomStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusLiveStart, StatusDissolution:
		return true
	}
	return false
}

func (s RoomStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusLiveStart:
		return "live_start"
	case StatusDissolution:
		return "dissolution"
	}
	return "unknown"
}

// AdmissionOutcome is the result of a single admission attempt against a
// room row. It is a value, not an error: every variant is a normal result.
type AdmissionOutcome int

const (
	Admitted AdmissionOutcome = iota + 1
	AdmissionRoomFull
	AdmissionDisbanded
	AdmissionAlreadyJoined
)

func (o AdmissionOutcome) String() string {
	switch o {
	case Admitted:
		return "admitted"
	case AdmissionRoomFull:
		return "room_full"
	case AdmissionDisbanded:
		return "disbanded"
	case AdmissionAlreadyJoined:
		return "already_joined"
	}
	return "unknown"
}

type Player struct {
	ID           int64
	Name         string
	Token        string
	LeaderCardID int64
	CreatedAt    time.Time
}

type Room struct {
	ID           int64
	LiveID       int64
	HostPlayerID int64
	Capacity     int
	JoinedCount  int
	Status       RoomStatus
	CreatedAt    time.Time
}

// RoomInfo is the joinable-room listing row.
type RoomInfo struct {
	RoomID      int64
	LiveID      int64
	JoinedCount int
	Capacity    int
}

// Member is one room membership joined with its player record, ordered by
// join_order in listings.
type Member struct {
	RoomID       int64
	PlayerID     int64
	Name         string
	LeaderCardID int64
	Difficulty   Difficulty
	JoinOrder    int
	JoinedAt     time.Time
}

// RoomEvent is one row of the append-only room audit trail. Events are
// written in the same transaction as the mutation they describe.
type RoomEvent struct {
	ID        int64
	RoomID    int64
	PlayerID  *int64
	EventType string
	CreatedAt time.Time
}

const (
	EventRoomCreated  = "room_created"
	EventMemberJoined = "member_joined"
	EventStatusChange = "status_change"
)
