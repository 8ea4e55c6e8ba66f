package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"dconn.dev/showreel/internal/models"
	"dconn.dev/showreel/internal/portfolio"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string        `yaml:"server_addr"`
	PlayerHost string        `yaml:"player_host"`
	DataPath   string        `yaml:"data_path"`
	PagePath   string        `yaml:"page_path"`
	StaticDir  string        `yaml:"static_dir"`
	Logging    LoggingConfig `yaml:"logging"`

	Entries []models.PortfolioEntry `yaml:"-"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads the optional YAML file at path, applies environment overrides,
// and loads the portfolio entries
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: ":8080",
		PlayerHost: portfolio.DefaultPlayerHost,
		StaticDir:  "static",
		Logging:    LoggingConfig{Level: "info"},
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ServerAddr = getEnv("SERVER_ADDR", cfg.ServerAddr)
	cfg.PlayerHost = getEnv("PLAYER_HOST", cfg.PlayerHost)
	cfg.DataPath = getEnv("DATA_PATH", cfg.DataPath)
	cfg.PagePath = getEnv("PAGE_PATH", cfg.PagePath)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.File = getEnv("LOG_FILE", cfg.Logging.File)

	entries, err := loadEntries(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	cfg.Entries = entries

	return cfg, nil
}

// loadFile reads the YAML config file
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// loadEntries reads the portfolio YAML file, or returns the built-in entries
func loadEntries(path string) ([]models.PortfolioEntry, error) {
	if path == "" {
		return models.DefaultEntries(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries %s: %w", path, err)
	}

	var list models.EntryList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse entries %s: %w", path, err)
	}
	if len(list.Entries) == 0 {
		return nil, errors.New("entries file " + path + " has no entries")
	}
	if err := portfolio.ValidateEntries(list.Entries); err != nil {
		return nil, fmt.Errorf("invalid entries %s: %w", path, err)
	}

	return list.Entries, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
