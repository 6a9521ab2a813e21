package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 900, cfg.CacheTTLSeconds)
	assert.False(t, cfg.HasTavily())
	assert.False(t, cfg.HasGemini())
	assert.False(t, cfg.HasRedis())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-123")
	t.Setenv("GEMINI_API_KEY", "g-456")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg := Load()

	assert.True(t, cfg.HasTavily())
	assert.True(t, cfg.HasGemini())
	assert.True(t, cfg.HasRedis())
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
}

func TestCacheTTLRejectsGarbage(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "soon")
	assert.Equal(t, 900, Load().CacheTTLSeconds)

	t.Setenv("CACHE_TTL_SECONDS", "-5")
	assert.Equal(t, 900, Load().CacheTTLSeconds)
}
