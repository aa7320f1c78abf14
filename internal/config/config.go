package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the calculator service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API and monitoring server.
// - NavFile: Path of the NAV data file used for identifier lookups.
// - FixFile: Path of the FIX data file used for identifier lookups.
type Config struct {
	Env     string // Env is the current environment: local, development, production.
	Port    int    // Port is the HTTP API and monitoring server port.
	NavFile string // NavFile is the NAV data file path; empty disables NAV lookups.
	FixFile string // FixFile is the FIX data file path; empty disables FIX lookups.
}

// MustLoad loads the configuration from the environment (and an optional
// .env file) and returns a Config struct. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("VORFIX_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for the HTTP server from configuration")
	}

	return &Config{
		Env:     setDefaultEnv("VORFIX_ENV", "production"),
		Port:    port,
		NavFile: os.Getenv("VORFIX_NAV_FILE"),
		FixFile: os.Getenv("VORFIX_FIX_FILE"),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
