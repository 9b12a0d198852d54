package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Runtime holds the process-level settings that come from the environment
// rather than the run config file.
type Runtime struct {
	DBPath   string
	APIAddr  string
	LogLevel string
	LogJSON  bool
}

// LoadRuntime reads runtime settings from the environment, after loading a
// .env file when one exists.
func LoadRuntime() (*Runtime, error) {
	// Missing .env is fine; real environment variables may be set instead.
	_ = godotenv.Load()

	rt := &Runtime{
		DBPath:   getEnv("CELLARWORKS_DB", "cellarworks.db"),
		LogLevel: getEnv("CELLARWORKS_LOG_LEVEL", "info"),
	}

	port := getEnv("CELLARWORKS_PORT", "8080")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("invalid CELLARWORKS_PORT value %q: %w", port, err)
	}
	rt.APIAddr = ":" + port

	logJSON := getEnv("CELLARWORKS_LOG_JSON", "false")
	b, err := strconv.ParseBool(logJSON)
	if err != nil {
		return nil, fmt.Errorf("invalid CELLARWORKS_LOG_JSON value %q: %w", logJSON, err)
	}
	rt.LogJSON = b

	return rt, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
