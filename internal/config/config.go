package config

import (
	"slices"
	"time"
)

// Broker names accepted by RealtimeConfig.Broker.
const (
	BrokerLocal    = "local"
	BrokerRedis    = "redis"
	BrokerPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Session   SessionConfig   `yaml:"session"`
	Realtime  RealtimeConfig  `yaml:"realtime"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// SessionConfig holds settings for display-name session tokens.
type SessionConfig struct {
	Secret   string        `yaml:"secret"    env:"SESSION_SECRET"    env-required:"true"`
	Issuer   string        `yaml:"issuer"    env:"SESSION_ISSUER"    env-default:"retroboard"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"SESSION_TOKEN_TTL" env-default:"168h"`
}

// RealtimeConfig holds settings for the change notification channel.
type RealtimeConfig struct {
	Broker          string        `yaml:"broker"           env:"REALTIME_BROKER"           env-default:"local"`
	BrokerBuffer    int           `yaml:"broker_buffer"    env:"REALTIME_BROKER_BUFFER"    env-default:"1024"`
	ClientBuffer    int           `yaml:"client_buffer"    env:"REALTIME_CLIENT_BUFFER"    env-default:"64"`
	PingInterval    time.Duration `yaml:"ping_interval"    env:"REALTIME_PING_INTERVAL"    env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"REALTIME_WRITE_TIMEOUT"    env-default:"10s"`
	RestartDelay    time.Duration `yaml:"restart_delay"    env:"REALTIME_RESTART_DELAY"    env-default:"2s"`
	RedisURL        string        `yaml:"redis_url"        env:"REALTIME_REDIS_URL"`
	RedisPrefix     string        `yaml:"redis_prefix"     env:"REALTIME_REDIS_PREFIX"     env-default:"retro:"`
	PostgresChannel string        `yaml:"postgres_channel" env:"REALTIME_POSTGRES_CHANNEL" env-default:"retro_events"`
}

// CacheConfig holds settings for the retrospective lookup cache.
type CacheConfig struct {
	RetroTTL        time.Duration `yaml:"retro_ttl"        env:"CACHE_RETRO_TTL"        env-default:"5m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" env-default:"10m"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"600"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Brokers returns the accepted broker names.
func Brokers() []string {
	return []string{BrokerLocal, BrokerRedis, BrokerPostgres}
}

// IsBrokerSupported checks if the given broker name is known.
func IsBrokerSupported(name string) bool {
	return slices.Contains(Brokers(), name)
}
