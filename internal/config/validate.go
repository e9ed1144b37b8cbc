package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// MinChunkSize is the smallest multipart part object storage accepts.
const MinChunkSize = 5 * 1024 * 1024

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Webhook.validate(); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}

	if c.Activity.DefaultLimit <= 0 || c.Activity.DefaultLimit > c.Activity.MaxLimit {
		return fmt.Errorf("activity.default_limit must be in [1, %d] (got %d)", c.Activity.MaxLimit, c.Activity.DefaultLimit)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.ResumableThreshold <= 0 {
		return fmt.Errorf("resumable_threshold must be > 0 (got %d)", s.ResumableThreshold)
	}
	if s.ChunkSize < MinChunkSize {
		return fmt.Errorf("chunk_size must be >= %d (got %d)", MinChunkSize, s.ChunkSize)
	}

	delays, err := ParseDurations(s.RetryDelaysRaw)
	if err != nil {
		return fmt.Errorf("retry_delays: %w", err)
	}
	if len(delays) == 0 {
		return fmt.Errorf("retry_delays must contain at least one attempt")
	}
	s.RetryDelays = delays

	return nil
}

func (w *WebhookConfig) validate() error {
	for name, raw := range map[string]string{"generate_url": w.GenerateURL, "file_url": w.FileURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}
	if w.GenerateTimeout <= 0 {
		return fmt.Errorf("generate_timeout must be > 0 (got %v)", w.GenerateTimeout)
	}
	return nil
}

// ParseDurations parses a comma-separated string of durations (e.g. "0s,1s,3s")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseDurations(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("negative duration %q", p)
		}
		steps = append(steps, d)
	}

	return steps, nil
}
