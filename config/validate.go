package config

import (
	"fmt"
	"strings"
)

// Validate rejects settings that are present but unusable. Load calls it.
func (c *Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"DB_URL", c.DBURL},
		{"PUBLIC_API_KEY", c.PublicAPIKey},
		{"JWT_SECRET", c.JWTSecret},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s must not be empty", r.name)
		}
	}

	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters (got %d)", len(c.JWTSecret))
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be > 0 (got %d)", c.UploadMaxBytes)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0 (got %s)", c.TokenTTL)
	}
	return nil
}
