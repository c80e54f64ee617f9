package config

import (
	"os"
	"path/filepath"
	"testing"

	"gasthof/internal/models"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
database:
  path: "test.db"
hotel:
  rooms:
    - name: "Smart Queen"
      category: "Smart"
      max_guests: 2
      base_price: 119
      extra_guest_price: 25
  meeting_rooms:
    - name: "Forum"
      max_capacity: 40
      full_day_price: 750
      catering_per_person: 35
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Database.Path != "test.db" {
		t.Errorf("expected database path test.db, got %s", cfg.Database.Path)
	}
	if len(cfg.Hotel.Rooms) != 1 || cfg.Hotel.Rooms[0].Name != "Smart Queen" {
		t.Errorf("expected 1 hotel room named Smart Queen")
	}
	if len(cfg.Hotel.MeetingRooms) != 1 || cfg.Hotel.MeetingRooms[0].MaxCapacity != 40 {
		t.Errorf("expected 1 meeting room with capacity 40")
	}
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("TEST_DB_PATH", "/var/lib/gasthof/ledger.db")

	yamlContent := `
database:
  path: "${TEST_DB_PATH}"
hotel:
  rooms:
    - name: "Smart Queen"
      max_guests: 2
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.Path != "/var/lib/gasthof/ledger.db" {
		t.Errorf("expected expanded database path, got %s", cfg.Database.Path)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Database: DatabaseConfig{Path: "path"},
				Hotel: HotelConfig{
					Rooms: []models.HotelRoom{{Name: "Smart Queen", MaxGuests: 2}},
				},
			},
			wantErr: false,
		},
		{
			name: "missing database path",
			cfg: Config{
				Hotel: HotelConfig{
					Rooms: []models.HotelRoom{{Name: "Smart Queen", MaxGuests: 2}},
				},
			},
			wantErr: true,
		},
		{
			name: "no rooms at all",
			cfg: Config{
				Database: DatabaseConfig{Path: "path"},
			},
			wantErr: true,
		},
		{
			name: "telegram enabled without token",
			cfg: Config{
				Database: DatabaseConfig{Path: "path"},
				Hotel: HotelConfig{
					Rooms: []models.HotelRoom{{Name: "Smart Queen", MaxGuests: 2}},
				},
				Telegram: TelegramConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{API: APIConfig{Enabled: true}}
	cfg.applyDefaults()

	if cfg.API.HTTP.Port != 8080 {
		t.Errorf("expected default HTTP port 8080, got %d", cfg.API.HTTP.Port)
	}
	if !cfg.API.HTTP.Enabled {
		t.Errorf("expected HTTP to be enabled when API is enabled")
	}
	if cfg.API.Auth.HeaderAPIKey != "x-api-key" {
		t.Errorf("expected default api key header, got %s", cfg.API.Auth.HeaderAPIKey)
	}
	if cfg.Search.TopK != 3 {
		t.Errorf("expected default top_k 3, got %d", cfg.Search.TopK)
	}
	if cfg.Search.SimilarityThreshold != 0.3 {
		t.Errorf("expected default similarity threshold 0.3, got %f", cfg.Search.SimilarityThreshold)
	}
	if cfg.Gemini.Model == "" {
		t.Errorf("expected default gemini model")
	}
}

func TestValidateRooms(t *testing.T) {
	tests := []struct {
		name         string
		rooms        []models.HotelRoom
		meetingRooms []models.MeetingRoom
		wantErr      bool
	}{
		{
			name: "valid rooms",
			rooms: []models.HotelRoom{
				{Name: "Smart Queen", MaxGuests: 2},
				{Name: "Family Loft", MaxGuests: 4},
			},
			meetingRooms: []models.MeetingRoom{{Name: "Forum", MaxCapacity: 40}},
			wantErr:      false,
		},
		{
			name: "duplicate name",
			rooms: []models.HotelRoom{
				{Name: "Smart Queen", MaxGuests: 2},
				{Name: "Smart Queen", MaxGuests: 4},
			},
			wantErr: true,
		},
		{
			name: "name shared between partitions",
			rooms: []models.HotelRoom{
				{Name: "Forum", MaxGuests: 2},
			},
			meetingRooms: []models.MeetingRoom{{Name: "Forum", MaxCapacity: 40}},
			wantErr:      true,
		},
		{
			name: "zero capacity",
			rooms: []models.HotelRoom{
				{Name: "Smart Queen", MaxGuests: 0},
			},
			wantErr: true,
		},
		{
			name: "negative price",
			rooms: []models.HotelRoom{
				{Name: "Smart Queen", MaxGuests: 2, BasePrice: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRooms(tt.rooms, tt.meetingRooms)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRooms() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
