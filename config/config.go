package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the demo application settings, read from the environment.
type Config struct {
	// RedisHost, when set, makes the demo also exercise the Redis-backed
	// store. Empty means in-memory only.
	RedisHost string `env:"REDIS_HOST"`
}

// SetupConfig initializes the application configuration.
//
// It loads environment variables from a .env file if the debug
// parameter is set to true.
// No return value.
func SetupConfig(debug bool) {
	if debug {
		err := godotenv.Load(".env")
		if err != nil {
			log.Printf("Error loading .env file")
		}
	}
}

// Load parses the environment into a Config.
//
// It returns an error if a variable cannot be parsed into its field.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
