package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ub-intelligence/dharmabot/stores"
)

// Config holds the process configuration, parsed from the environment.
type Config struct {
	// Gemini
	GeminiAPIKey string `env:"GEMINI_API_KEY,required"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Storage
	StoreType    string `env:"STORE_TYPE" envDefault:"sqlite"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"dharmabot.sqlite"`
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass string `env:"POSTGRES_PASSWORD"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"dharmabot"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`

	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Session retention. A cap of 0 disables pruning.
	MaxChatSessions   int    `env:"MAX_CHAT_SESSIONS" envDefault:"0"`
	RetentionSchedule string `env:"RETENTION_SCHEDULE" envDefault:"@hourly"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// StoreConfig maps the storage settings onto a store factory config.
func (c *Config) StoreConfig() *stores.StoreConfig {
	switch c.StoreType {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			c.PostgresHost, c.PostgresUser, c.PostgresPass, c.PostgresDB, c.PostgresPort)
		return stores.NewStoreConfig("postgres", dsn)
	case "memory":
		return stores.NewStoreConfig("memory", "")
	default:
		return stores.NewStoreConfig("sqlite", c.SQLitePath)
	}
}
