package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// PolicyFile is a local conventions document used instead of the
	// cache/fetch pipeline when set.
	PolicyFile string

	// PolicyRepo and PolicyPath locate the conventions document on GitHub.
	PolicyRepo string
	PolicyPath string

	// CachePath overrides where the fetched document is cached.
	CachePath string

	// NoFetch disables fetching; only the cache or PolicyFile can serve.
	NoFetch bool

	// FetchTimeout bounds one fetch through the gh CLI.
	FetchTimeout time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CONVTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		PolicyFile:   os.Getenv("CONVTOOLS_POLICY_FILE"),
		PolicyRepo:   envString("CONVTOOLS_POLICY_REPO", ""),
		PolicyPath:   envString("CONVTOOLS_POLICY_PATH", ""),
		CachePath:    envString("CONVTOOLS_CACHE_PATH", ""),
		NoFetch:      envBool("CONVTOOLS_NO_FETCH", false),
		FetchTimeout: envDuration("CONVTOOLS_FETCH_TIMEOUT", 30*time.Second),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
