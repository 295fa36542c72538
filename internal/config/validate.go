package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Mongo.validate(); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.GraphQL.MaxDepth < 1 {
		return fmt.Errorf("graphql.max_depth must be >= 1 (got %d)", c.GraphQL.MaxDepth)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be positive when limiting is enabled (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (m *MongoConfig) validate() error {
	if !strings.HasPrefix(m.URI, "mongodb://") && !strings.HasPrefix(m.URI, "mongodb+srv://") {
		return fmt.Errorf("uri must use the mongodb:// or mongodb+srv:// scheme")
	}
	if strings.TrimSpace(m.Database) == "" {
		return fmt.Errorf("database is required")
	}
	if strings.TrimSpace(m.Collection) == "" {
		return fmt.Errorf("collection is required")
	}
	if m.MinPoolSize > m.MaxPoolSize {
		return fmt.Errorf("min_pool_size (%d) exceeds max_pool_size (%d)", m.MinPoolSize, m.MaxPoolSize)
	}
	return nil
}
