package config

import (
	"errors"
	"fmt"
	"os"

	"gasthof/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Backup     BackupConfig     `yaml:"backup"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	API        APIConfig        `yaml:"api"`
	Hotel      HotelConfig      `yaml:"hotel"`
	Search     SearchConfig     `yaml:"search"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Google     GoogleConfig     `yaml:"google"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Exports    ExportConfig     `yaml:"exports"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type BackupConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Schedule      string `yaml:"schedule"`
	RetentionDays int    `yaml:"retention_days"`
	StoragePath   string `yaml:"storage_path"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool   `yaml:"prometheus_enabled"`
	PrometheusPort    int    `yaml:"prometheus_port"`
	HealthCheckPort   int    `yaml:"health_check_port"`
	LogLevel          string `yaml:"log_level"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type APIConfig struct {
	Enabled   bool               `yaml:"enabled"`
	HTTP      APIHTTPConfig      `yaml:"http"`
	Auth      APIAuthConfig      `yaml:"auth"`
	RateLimit APIRateLimitConfig `yaml:"rate_limit"`
}

type APIHTTPConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type APIAuthConfig struct {
	Enabled      bool           `yaml:"enabled"`
	HeaderAPIKey string         `yaml:"header_api_key"`
	HeaderExtra  string         `yaml:"header_extra"`
	APIKeys      []APIClientKey `yaml:"api_keys"`
}

type APIClientKey struct {
	Key         string   `yaml:"key"`
	Extra       string   `yaml:"extra"`
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
}

type APIRateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// HotelConfig is the bookable inventory plus the property profile the
// search index is built from.
type HotelConfig struct {
	Rooms        []models.HotelRoom   `yaml:"rooms"`
	MeetingRooms []models.MeetingRoom `yaml:"meeting_rooms"`
	ProfilePath  string               `yaml:"profile_path"`
}

type SearchConfig struct {
	TopK                int     `yaml:"top_k"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	CacheTTLMinutes     int     `yaml:"cache_ttl_minutes"`
}

type GeminiConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	EmbeddingModel string `yaml:"embedding_model"`
}

type GoogleConfig struct {
	GoogleCredentialsFile string `yaml:"credentials_file"`
	BookingSpreadSheetID  string `yaml:"bookings_spreadsheet_id"`
}

type TelegramConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BotToken    string `yaml:"bot_token"`
	StaffChatID int64  `yaml:"staff_chat_id"`
	Debug       bool   `yaml:"debug"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

func Load(configPath string) (*Config, error) {
	err := godotenv.Load(".env")
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if len(c.Hotel.Rooms) == 0 && len(c.Hotel.MeetingRooms) == 0 {
		return errors.New("at least one hotel room or meeting room is required")
	}
	if c.Telegram.Enabled && c.Telegram.BotToken == "" {
		return errors.New("telegram bot token is required when telegram is enabled")
	}
	return ValidateRooms(c.Hotel.Rooms, c.Hotel.MeetingRooms)
}

func ValidateRooms(rooms []models.HotelRoom, meetingRooms []models.MeetingRoom) error {
	names := make(map[string]bool)
	for _, room := range rooms {
		if room.Name == "" {
			return errors.New("hotel room with empty name")
		}
		if names[room.Name] {
			return fmt.Errorf("duplicate room name found: %s", room.Name)
		}
		names[room.Name] = true
		if room.MaxGuests < 1 {
			return fmt.Errorf("room '%s' has invalid max_guests %d", room.Name, room.MaxGuests)
		}
		if room.BasePrice < 0 || room.ExtraGuestPrice < 0 {
			return fmt.Errorf("room '%s' has negative pricing", room.Name)
		}
	}
	for _, room := range meetingRooms {
		if room.Name == "" {
			return errors.New("meeting room with empty name")
		}
		if names[room.Name] {
			return fmt.Errorf("duplicate room name found: %s", room.Name)
		}
		names[room.Name] = true
		if room.MaxCapacity < 1 {
			return fmt.Errorf("meeting room '%s' has invalid max_capacity %d", room.Name, room.MaxCapacity)
		}
		if room.FullDayPrice < 0 || room.CateringPerPerson < 0 {
			return fmt.Errorf("meeting room '%s' has negative pricing", room.Name)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.API.HTTP.Port == 0 {
		c.API.HTTP.Port = 8080
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	// auth enabled by default when API is enabled
	if !c.API.Auth.Enabled {
		c.API.Auth.Enabled = true
	}
	if !c.API.HTTP.Enabled && c.API.Enabled {
		c.API.HTTP.Enabled = true
	}
	if c.API.Auth.HeaderAPIKey == "" {
		c.API.Auth.HeaderAPIKey = "x-api-key"
	}
	if c.API.Auth.HeaderExtra == "" {
		c.API.Auth.HeaderExtra = "x-api-extra"
	}

	if c.Search.TopK == 0 {
		c.Search.TopK = 3
	}
	if c.Search.SimilarityThreshold == 0 {
		c.Search.SimilarityThreshold = 0.3
	}
	if c.Search.CacheTTLMinutes == 0 {
		c.Search.CacheTTLMinutes = 60
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "models/gemini-1.5-pro"
	}
	if c.Gemini.EmbeddingModel == "" {
		c.Gemini.EmbeddingModel = "text-embedding-004"
	}
}
