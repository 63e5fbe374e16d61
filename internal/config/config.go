// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBPath string // path to the sqlite database file
}

// Load reads configuration values from the environment. A .env file in the
// working directory is applied first when present. Missing required
// variables cause the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Env:    must("APP_ENV"),
		Port:   must("APP_PORT"),
		DBPath: must("DB_PATH"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
