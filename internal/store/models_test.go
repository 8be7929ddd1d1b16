package store

import "testing"

func TestDifficultyValid(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want bool
	}{
		{DifficultyNormal, true},
		{DifficultyHard, true},
		{Difficulty(0), false},
		{Difficulty(3), false},
	}
	for _, tt := range tests {
		if got := tt.d.Valid(); got != tt.want {
			t.Fatalf("Difficulty(%d).Valid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestRoomStatusString(t *testing.T) {
	tests := []struct {
		s    RoomStatus
		want string
	}{
		{StatusWaiting, "waiting"},
		{StatusLiveStart, "live_start"},
		{StatusDissolution, "dissolution"},
		{RoomStatus(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Fatalf("RoomStatus(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestNewTokenUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := NewToken()
		if tok == "" {
			t.Fatal("empty token")
		}
		if seen[tok] {
			t.Fatalf("token repeated: %s", tok)
		}
		seen[tok] = true
	}
}
