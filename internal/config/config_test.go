package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MONGODB_URI", "REDIS_URI", "SESSION_SECRET", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017/dailyjournal", cfg.MongoURI)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURI)
	assert.Equal(t, "3000", cfg.Port)
	assert.Empty(t, cfg.SessionSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017/journal")
	t.Setenv("SESSION_SECRET", "hunter2")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("PORT", "8080")

	cfg := Load()
	assert.Equal(t, "mongodb://db:27017/journal", cfg.MongoURI)
	assert.Equal(t, "hunter2", cfg.SessionSecret)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
	assert.Equal(t, "8080", cfg.Port)
}
