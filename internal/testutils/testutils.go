package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/lateslip-portal/internal/config"
)

// testDefaults are applied before .env.test, which may override them.
var testDefaults = map[string]string{
	"SESSION_SECRET":        "a-very-secret-key-for-testing-!",
	"BACKEND_ORIGIN":        "http://127.0.0.1:1",
	"SUBMIT_GUARD":          "reject",
	"FORM_VALIDATION":       "none",
	"RATE_LIMIT_PER_MINUTE": "1000",
	"LOG_LEVEL":             "error",
}

// ConfigForTests sets up a test environment and returns a valid config.
// Values from a .env.test file at the project root win over the defaults.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	for key, value := range testDefaults {
		t.Setenv(key, value)
	}

	if root, ok := projectRoot(); ok {
		if env, err := godotenv.Read(filepath.Join(root, ".env.test")); err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}

	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("failed to parse test config: %v", err)
	}
	return cfg
}

// projectRoot walks up from the working directory to the directory holding go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
