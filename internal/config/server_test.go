package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/lobby?sslmode=disable")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.RoomCapacity != 4 {
		t.Fatalf("RoomCapacity = %d, want 4", cfg.RoomCapacity)
	}
}

func TestLoadServerRequiresPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := LoadServer()
	if err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/lobby?sslmode=disable")
	t.Setenv("ROOM_CAPACITY", "8")
	t.Setenv("ADMIN_API_KEY", "admin-key")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.RoomCapacity != 8 {
		t.Fatalf("RoomCapacity = %d, want 8", cfg.RoomCapacity)
	}
	if cfg.AdminAPIKey != "admin-key" {
		t.Fatalf("AdminAPIKey = %q, want admin-key", cfg.AdminAPIKey)
	}
}
