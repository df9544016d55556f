package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Tracker.MaxRecordsPageSize <= 0 {
		return fmt.Errorf("tracker.max_records_page_size must be > 0 (got %d)", c.Tracker.MaxRecordsPageSize)
	}
	if c.Tracker.DefaultRecordsPageSize <= 0 || c.Tracker.DefaultRecordsPageSize > c.Tracker.MaxRecordsPageSize {
		return fmt.Errorf("tracker.default_records_page_size must be in 1..%d (got %d)",
			c.Tracker.MaxRecordsPageSize, c.Tracker.DefaultRecordsPageSize)
	}

	if c.RateLimit.Enabled && c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 when enabled (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}
