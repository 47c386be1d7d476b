package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session.secret must be at least 32 characters (got %d)", len(c.Session.Secret))
	}
	if c.Session.TokenTTL <= 0 {
		return fmt.Errorf("session.token_ttl must be > 0 (got %v)", c.Session.TokenTTL)
	}

	if err := c.Realtime.validate(); err != nil {
		return fmt.Errorf("realtime: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (r *RealtimeConfig) validate() error {
	r.Broker = strings.ToLower(strings.TrimSpace(r.Broker))
	if !IsBrokerSupported(r.Broker) {
		return fmt.Errorf("broker must be one of %s (got %q)", strings.Join(Brokers(), ", "), r.Broker)
	}
	if r.Broker == BrokerRedis && r.RedisURL == "" {
		return fmt.Errorf("redis_url is required when broker is %q", BrokerRedis)
	}
	if r.Broker == BrokerPostgres && r.PostgresChannel == "" {
		return fmt.Errorf("postgres_channel is required when broker is %q", BrokerPostgres)
	}
	if r.BrokerBuffer <= 0 {
		return fmt.Errorf("broker_buffer must be > 0 (got %d)", r.BrokerBuffer)
	}
	if r.ClientBuffer <= 0 {
		return fmt.Errorf("client_buffer must be > 0 (got %d)", r.ClientBuffer)
	}
	if r.PingInterval <= 0 {
		return fmt.Errorf("ping_interval must be > 0 (got %v)", r.PingInterval)
	}
	return nil
}
