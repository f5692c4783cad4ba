package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_TIMEZONE", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "fallback-project")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DefaultLocation.String() != "UTC" {
		t.Errorf("expected UTC, got %s", cfg.DefaultLocation)
	}
	if cfg.FirebaseProjectID != "fallback-project" {
		t.Errorf("expected project fallback, got %s", cfg.FirebaseProjectID)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "COACH_API_URL=http://coach.local\nDEFAULT_TIMEZONE=Europe/Helsinki\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("COACH_API_URL", "")
	t.Setenv("DEFAULT_TIMEZONE", "")
	// godotenv never overrides variables that are already set, even when empty.
	_ = os.Unsetenv("COACH_API_URL")
	_ = os.Unsetenv("DEFAULT_TIMEZONE")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CoachAPIURL != "http://coach.local" {
		t.Errorf("expected coach url from file, got %q", cfg.CoachAPIURL)
	}
	if cfg.DefaultLocation.String() != "Europe/Helsinki" {
		t.Errorf("expected Europe/Helsinki, got %s", cfg.DefaultLocation)
	}
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("DEFAULT_TIMEZONE", "Mars/Olympus")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for unknown time zone")
	}
}
