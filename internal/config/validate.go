package config

import (
	"fmt"
	"strings"

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
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Bootstrap.validate(); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if strings.TrimSpace(c.Storage.LocalDir) == "" {
		return fmt.Errorf("storage.local_dir is required")
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage.max_upload_bytes must be > 0 (got %d)", c.Storage.MaxUploadBytes)
	}

	if c.Kafka.Enabled() && strings.TrimSpace(c.Kafka.Topic) == "" {
		return fmt.Errorf("kafka.topic is required when brokers are set")
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	if c.Notifications.RetentionDays <= 0 {
		return fmt.Errorf("notifications.retention_days must be > 0 (got %d)", c.Notifications.RetentionDays)
	}

	return nil
}

func (b *BootstrapConfig) validate() error {
	passwords := map[string]string{
		"admin_password":    b.AdminPassword,
		"reviewer_password": b.ReviewerPassword,
		"operator_password": b.OperatorPassword,
	}
	for field, pw := range passwords {
		if pw != "" && len(pw) < 6 {
			return fmt.Errorf("%s must be at least 6 characters", field)
		}
	}
	return nil
}
