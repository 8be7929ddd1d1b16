package player

// Profile is the player record without its token. Tokens never leave the
// directory except at registration time.
type Profile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LeaderCardID int64  `json:"leader_card_id"`
}
