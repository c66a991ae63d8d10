package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (c *ImportConfig) validate() error {
	if c.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", c.MaxRows)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", c.MaxUploadBytes)
	}
	if !strings.Contains(c.AdminEmail, "@") {
		return fmt.Errorf("admin_email %q is not a valid email", c.AdminEmail)
	}
	return nil
}
