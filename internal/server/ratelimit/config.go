package ratelimit

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults used when the environment leaves a setting unset
const (
	DefaultLimit           = 300
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Trusted         map[string]bool // client IPs that bypass limiting
	EndpointConfigs []EndpointConfig
}

// EndpointConfig is the limit for one method and path prefix.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig reads RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT, RATE_LIMIT_DEFAULT_WINDOW,
// RATE_LIMIT_CLEANUP_INTERVAL, RATE_LIMIT_LOGIN_LIMIT and RATE_LIMIT_TRUSTED.
// Unparseable values are logged and replaced by their defaults.
func LoadConfig() *Config {
	if !envValue("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	endpoints := DefaultEndpointConfigs()
	if loginLimit := envValue("RATE_LIMIT_LOGIN_LIMIT", 0, strconv.Atoi); loginLimit > 0 {
		endpoints[0].Limit = loginLimit
		endpoints[0].Burst = min(endpoints[0].Burst, loginLimit)
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envValue("RATE_LIMIT_DEFAULT_LIMIT", DefaultLimit, strconv.Atoi),
		DefaultWindow:   envValue("RATE_LIMIT_DEFAULT_WINDOW", DefaultWindow, time.ParseDuration),
		CleanupInterval: envValue("RATE_LIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval, time.ParseDuration),
		Trusted:         parseClientList(os.Getenv("RATE_LIMIT_TRUSTED")),
		EndpointConfigs: endpoints,
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. The /login entry comes first.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Credential checks are bcrypt-bound and brute-forceable
		{Path: "/login", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},

		// Scoring and file generation
		{Path: "/recommendations", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/recommendations/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Reads use the default limit; /health and /examples are unlimited
	}
}

func envValue[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		log.Printf("[rate-limit] ignoring invalid %s=%q: %v", key, raw, err)
		return fallback
	}
	return value
}

// parseClientList splits a comma-separated list of client IPs
func parseClientList(list string) map[string]bool {
	clients := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			clients[ip] = true
		}
	}
	return clients
}
