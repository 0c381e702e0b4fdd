package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	SQLitePath      string
	IsProduction    bool
	FrontendBaseURL string
	RateLimit       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SQLITE_PATH", "data/ledger.db")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "data/ledger.db"
		log.Printf("Warning: SQLITE_PATH environment variable not set. Defaulting to %s\n", cfg.SQLitePath)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
