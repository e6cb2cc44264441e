package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")

		cfg, err := Parse()
		require.NoError(t, err)

		assert.Equal(t, ":3000", cfg.AppAddr)
		assert.Equal(t, "http://localhost:8000", cfg.BackendOrigin)
		assert.Equal(t, "reject", cfg.SubmitGuard)
		assert.Equal(t, "none", cfg.FormValidation)
		assert.Equal(t, 10, cfg.RateLimitPerMinute)
		assert.False(t, cfg.ClearOnSuccess)
	})

	t.Run("requires a session secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")

		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("rejects an unknown guard policy", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("SUBMIT_GUARD", "sometimes")

		_, err := Parse()
		assert.ErrorContains(t, err, "SUBMIT_GUARD")
	})

	t.Run("rejects an unknown validation policy", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("FORM_VALIDATION", "strict")

		_, err := Parse()
		assert.ErrorContains(t, err, "FORM_VALIDATION")
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("BACKEND_ORIGIN", "http://backend:9000")
		t.Setenv("SUBMIT_GUARD", "ignore")
		t.Setenv("CLEAR_ON_SUCCESS", "true")

		cfg, err := Parse()
		require.NoError(t, err)
		assert.Equal(t, "http://backend:9000", cfg.BackendOrigin)
		assert.Equal(t, "ignore", cfg.SubmitGuard)
		assert.True(t, cfg.ClearOnSuccess)
	})
}

func TestParseCLI(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("BACKEND_ORIGIN", "http://api.internal:9000")
	t.Setenv("TOKEN_FILE", "/tmp/portal-token")

	cfg, err := ParseCLI()
	require.NoError(t, err, "the CLI does not need a session secret")
	assert.Equal(t, "http://api.internal:9000", cfg.BackendOrigin)
	assert.Equal(t, "/tmp/portal-token", cfg.TokenFile)
	assert.Equal(t, "none", cfg.FormValidation)

	t.Run("rejects an unknown validation policy", func(t *testing.T) {
		t.Setenv("FORM_VALIDATION", "strict")

		_, err := ParseCLI()
		assert.ErrorContains(t, err, "FORM_VALIDATION")
	})
}
