package config

import (
	"fmt"
	"time"
)

const (
	minAPIKeyLength  = 16
	maxTaxonomyDepth = 10
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.APIKey) < minAPIKeyLength {
		return fmt.Errorf("auth.api_key must be at least %d characters (got %d)", minAPIKeyLength, len(c.Auth.APIKey))
	}

	if c.Taxonomy.MaxDepth < 0 || c.Taxonomy.MaxDepth > maxTaxonomyDepth {
		return fmt.Errorf("taxonomy.max_depth must be in [0, %d] (got %d)", maxTaxonomyDepth, c.Taxonomy.MaxDepth)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when redis is enabled")
		}
		if c.Redis.TTL < time.Second {
			return fmt.Errorf("redis.ttl must be at least 1s (got %v)", c.Redis.TTL)
		}
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (s SearchConfig) validate() error {
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit <= 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, max_limit] (got %d)", s.DefaultLimit)
	}
	return nil
}
