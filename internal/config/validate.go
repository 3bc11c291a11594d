package config

import (
	"fmt"
	"slices"
	"strings"
)

// KnownSources lists the provider identities this build can dispatch to.
var KnownSources = []string{"cambridge", "merriam-webster", "gemini"}

var knownBackends = []string{CacheBackendMemory, CacheBackendSQLite, CacheBackendPostgres}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
//
// Provider credentials are deliberately NOT validated here: a missing
// credential is a per-request configuration error reported by the lookup
// service, never a startup crash.
func (c *Config) Validate() error {
	if !slices.Contains(KnownSources, c.Lookup.PreferredSource) {
		return fmt.Errorf("lookup.preferred_source %q must be one of %s",
			c.Lookup.PreferredSource, strings.Join(KnownSources, ", "))
	}

	if c.Lookup.DefinitionScope != "relevant" && c.Lookup.DefinitionScope != "all" {
		return fmt.Errorf("lookup.definition_scope %q must be \"relevant\" or \"all\"", c.Lookup.DefinitionScope)
	}

	if c.Lookup.ExampleCount < 0 {
		return fmt.Errorf("lookup.example_count must be >= 0 (got %d)", c.Lookup.ExampleCount)
	}

	if !slices.Contains(knownBackends, c.Cache.Backend) {
		return fmt.Errorf("cache.backend %q must be one of %s",
			c.Cache.Backend, strings.Join(knownBackends, ", "))
	}

	if c.Cache.Backend == CacheBackendPostgres && c.Cache.DSN == "" {
		return fmt.Errorf("cache.dsn is required when cache.backend is %q", CacheBackendPostgres)
	}

	if c.Cache.RetentionDays < 1 {
		return fmt.Errorf("cache.retention_days must be positive (got %d)", c.Cache.RetentionDays)
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	return nil
}
