package config

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/readle-app/readle/internal/utils"
)

type Config struct {
	Addr          string
	Environment   string
	SQLitePath    string
	MigrationsDir string
}

// Load reads configuration from .env (when present) and the environment.
// An empty SQLitePath means runtime state stays in process memory.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}
	return &Config{
		Addr:          utils.Env("READLE_ADDR", ":8080"),
		Environment:   utils.Env("ENV", "development"),
		SQLitePath:    utils.Env("READLE_SQLITE_PATH", ""),
		MigrationsDir: utils.Env("READLE_MIGRATIONS_DIR", ""),
	}
}
