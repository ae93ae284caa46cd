package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_URL", "")
	t.Setenv("AI_SERVER_URL", "")
	t.Setenv("SEED_TEST_BUSINESS", "")

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, DefaultAIServerURL, cfg.AIServerURL)
	assert.True(t, cfg.SeedTestBusiness, "seeding defaults on")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_URL", "postgres://app:secret@db:5432/mantleflow")
	t.Setenv("AI_SERVER_URL", "http://ai:5000")
	t.Setenv("SEED_TEST_BUSINESS", "true")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/mantleflow", cfg.DatabaseURL)
	assert.Equal(t, "http://ai:5000", cfg.AIServerURL)
	assert.True(t, cfg.SeedTestBusiness)
}
