package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultRateLimit is the rate applied when RATE_LIMIT is unset or malformed.
const DefaultRateLimit = "100-M"

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string
	// RateLimit uses the limiter formatted notation, e.g. "100-M" for 100
	// requests per minute per client IP.
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", DefaultRateLimit)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  viper.GetString("PGSQL_URL"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if viper.GetString("JWT_SECRET") == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}
