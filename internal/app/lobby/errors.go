package lobby

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidToken   = errors.New("invalid_token")
	ErrRoomNotFound   = errors.New("room_not_found")
)
