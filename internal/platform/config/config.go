// Package config loads process configuration from the environment. A local
// .env file is honoured for development; real environment variables win.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // zone database for distroless images

	"github.com/joho/godotenv"
)

// Config is the server's runtime configuration.
type Config struct {
	Port                         string
	FirebaseProjectID            string
	GoogleApplicationCredentials string
	CoachAPIURL                  string
	CoachAPIKey                  string
	// DefaultLocation is used when a prescription request names no time zone.
	DefaultLocation *time.Location
}

// Load reads an optional .env file (missing is fine) and then the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	tzName := getenv("DEFAULT_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", tzName, err)
	}

	return Config{
		Port: getenv("PORT", "8080"),
		FirebaseProjectID: firstNonEmpty(
			os.Getenv("FIREBASE_PROJECT_ID"),
			os.Getenv("GOOGLE_CLOUD_PROJECT"),
		),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CoachAPIURL:                  os.Getenv("COACH_API_URL"),
		CoachAPIKey:                  os.Getenv("COACH_API_KEY"),
		DefaultLocation:              loc,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
