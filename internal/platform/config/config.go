package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string // Postgres URL; when empty the embedded sqlite store is used
	SQLitePath   string
	Port         string
	IsProduction bool

	GeminiAPIKey string
	GeminiModel  string

	SummaryEntryLimit int
	AIRateLimit       string // ulule/limiter formatted rate, e.g. "10-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "./kokorolog.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash-latest")
	viper.SetDefault("SUMMARY_ENTRY_LIMIT", 30)
	viper.SetDefault("AI_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		SQLitePath:        viper.GetString("SQLITE_PATH"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		GeminiAPIKey:      viper.GetString("GEMINI_API_KEY"),
		GeminiModel:       viper.GetString("GEMINI_MODEL"),
		SummaryEntryLimit: viper.GetInt("SUMMARY_ENTRY_LIMIT"),
		AIRateLimit:       viper.GetString("AI_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Printf("PGSQL_URL not set, using embedded sqlite store at %s\n", cfg.SQLitePath)
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Commentary generation will fail.")
	}

	return cfg, nil
}
