package store

import "github.com/google/uuid"

// NewToken returns an opaque session token. Collisions are astronomically
// unlikely; the UNIQUE constraint on player.token is the backstop.
func NewToken() string {
	return uuid.NewString()
}
