package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the response cache middleware.
// Methods lists the HTTP methods to cache (e.g. GET, HEAD).  TTL defines
// the lifetime of cache entries.  KeyStrategy determines which parts of
// the request contribute to the cache key.  Prefix and MaxBodyBytes
// control namespacing and the maximum size of responses to cache.
// CleanupInterval only applies to the in-process store used when Redis
// is not reachable.
type CacheConfig struct {
	Enabled         bool
	Methods         map[string]bool
	TTL             time.Duration
	KeyStrategy     string
	Prefix          string
	MaxBodyBytes    int
	CleanupInterval time.Duration
}

// LoadCacheConfig reads CACHE_* variables.  All methods are upper-cased.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:         envBool("CACHE_ENABLED", true),
		Methods:         parseMethods(envStr("CACHE_METHODS", "GET")),
		TTL:             envDur("CACHE_TTL", 30*time.Second),
		KeyStrategy:     envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:          envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes:    envInt("CACHE_MAX_BODY_BYTES", 1048576),
		CleanupInterval: envDur("CACHE_CLEANUP_INTERVAL", time.Minute),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
