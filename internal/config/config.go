// Package config loads the configuration from environment variables,
// optionally read from a .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the configuration of the backend.
type Config struct {
	GinMode   string // gin mode, defaults to release
	LogFormat string // "human" for console output, JSON otherwise

	APIURL  *url.URL // external URL of the API, used for links and docs
	Port    string   // port the HTTP server listens on
	DataDir string   // directory for the database file

	CORSAllowOrigins []string
	EnablePprof      bool

	NarratorURL     string
	NarratorTimeout time.Duration

	CategoryRulesFile string

	// RandomSeed makes placeholder categories and insight decorations
	// reproducible. Nil seeds from the current time.
	RandomSeed *int64

	problems []error
}

// Load reads the configuration.
//
// Variables already set in the environment take precedence over the .env
// file. A missing default .env file is not an error, a missing file given
// in envPath is.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	c := &Config{
		GinMode:           getEnvOrDefault("GIN_MODE", "release"),
		LogFormat:         os.Getenv("LOG_FORMAT"),
		Port:              getEnvOrDefault("PORT", "8080"),
		DataDir:           getEnvOrDefault("DATA_DIR", "data"),
		CORSAllowOrigins:  strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:       os.Getenv("ENABLE_PPROF") == "true",
		NarratorURL:       strings.TrimSpace(os.Getenv("NARRATOR_URL")),
		CategoryRulesFile: strings.TrimSpace(os.Getenv("CATEGORY_RULES_FILE")),
	}

	if value, ok := os.LookupEnv("API_URL"); ok && value != "" {
		u, err := url.Parse(value)
		if err != nil {
			c.problems = append(c.problems, fmt.Errorf("invalid API_URL %q: %w", value, err))
		} else {
			c.APIURL = u
		}
	}

	timeout, err := parseDurationEnv("NARRATOR_TIMEOUT", 10*time.Second)
	if err != nil {
		c.problems = append(c.problems, err)
	}
	c.NarratorTimeout = timeout

	if value := os.Getenv("RANDOM_SEED"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			c.problems = append(c.problems, fmt.Errorf("invalid integer value for RANDOM_SEED: %s", value))
		} else {
			c.RandomSeed = &seed
		}
	}

	return c, nil
}

// Validate reports all problems with the configuration at once.
func (c *Config) Validate() error {
	problems := append([]error{}, c.problems...)

	if c.APIURL == nil {
		problems = append(problems, errors.New("environment variable API_URL must be set"))
	} else if c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		problems = append(problems, fmt.Errorf("API_URL %q must be an absolute URL", c.APIURL))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Errorf("invalid GIN_MODE %q: must be one of debug, release, test", c.GinMode))
	}

	if c.NarratorURL != "" {
		if u, err := url.Parse(c.NarratorURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			problems = append(problems, fmt.Errorf("invalid NARRATOR_URL %q: must be an http or https URL", c.NarratorURL))
		}
	}

	if c.NarratorTimeout <= 0 {
		problems = append(problems, errors.New("NARRATOR_TIMEOUT must be positive"))
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", c.Port))
	}

	if c.DataDir == "" {
		problems = append(problems, errors.New("DATA_DIR must not be empty"))
	}

	return errors.Join(problems...)
}

// HumanLogs reports whether logs are written for humans instead of as JSON.
//
// Without an explicit LOG_FORMAT, logs are human readable in debug mode.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

// DatabasePath is the path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "gorm.db")
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDurationEnv parses a duration like "10s" from an environment variable.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid duration value for %s: %s", key, value)
	}

	return parsed, nil
}
