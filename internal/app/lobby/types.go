package lobby

import "rhythm-lobby/internal/store"

// JoinResult is the typed outcome of a join attempt, sent to clients as a
// bare integer. AlreadyJoined extends the result set without renumbering.
type JoinResult int32

const (
	JoinOk            JoinResult = 1
	JoinRoomFull      JoinResult = 2
	JoinDisbanded     JoinResult = 3
	JoinOtherError    JoinResult = 4
	JoinAlreadyJoined JoinResult = 5
)

func (r JoinResult) String() string {
	switch r {
	case JoinOk:
		return "ok"
	case JoinRoomFull:
		return "room_full"
	case JoinDisbanded:
		return "disbanded"
	case JoinOtherError:
		return "other_error"
	case JoinAlreadyJoined:
		return "already_joined"
	}
	return "unknown"
}

// RoomInfo is one joinable room in a search listing.
type RoomInfo struct {
	RoomID          int64 `json:"room_id"`
	LiveID          int64 `json:"live_id"`
	JoinedUserCount int   `json:"joined_user_count"`
	MaxUserCount    int   `json:"max_user_count"`
}

// RoomUser is one member in a wait/poll view, in join order.
type RoomUser struct {
	UserID           int64            `json:"user_id"`
	Name             string           `json:"name"`
	LeaderCardID     int64            `json:"leader_card_id"`
	SelectDifficulty store.Difficulty `json:"select_difficulty"`
	IsHost           bool             `json:"is_host"`
}

// WaitRoomView is the poll snapshot of one room.
type WaitRoomView struct {
	Status store.RoomStatus `json:"status"`
	Users  []RoomUser       `json:"room_user_list"`
}
