package config

import (
	"os"
	"strconv"
)

// Config holds all service configuration loaded from environment variables.
// Provider credentials are optional: a missing key disables the feature it
// guards instead of failing at startup.
type Config struct {
	Port               string
	TavilyAPIKey       string
	GeminiAPIKey       string
	GeminiModel        string
	FeedbackWebhookURL string
	RedisAddr          string
	RedisPassword      string
	CacheTTLSeconds    int
	LogLevel           string
	StaticDir          string
}

func Load() *Config {
	return &Config{
		Port:               getenv("PORT", "8080"),
		TavilyAPIKey:       getenv("TAVILY_API_KEY", ""),
		GeminiAPIKey:       getenv("GEMINI_API_KEY", ""),
		GeminiModel:        getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		FeedbackWebhookURL: getenv("FEEDBACK_WEBHOOK_URL", ""),
		RedisAddr:          getenv("REDIS_ADDR", ""),
		RedisPassword:      getenv("REDIS_PASSWORD", ""),
		CacheTTLSeconds:    getenvInt("CACHE_TTL_SECONDS", 900),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		StaticDir:          getenv("STATIC_DIR", "web/static"),
	}
}

// HasTavily reports whether the search provider is configured.
func (c *Config) HasTavily() bool { return c.TavilyAPIKey != "" }

// HasGemini reports whether the generation provider is configured.
func (c *Config) HasGemini() bool { return c.GeminiAPIKey != "" }

// HasRedis reports whether the search cache is configured.
func (c *Config) HasRedis() bool { return c.RedisAddr != "" }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
