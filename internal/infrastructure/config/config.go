package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	RateLimit   RateLimitConfig
	Session     SessionConfig
	Settings    SettingsConfig
	Geolocation GeolocationConfig
	Locale      LocaleConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"relief"`
	Password        string        `envconfig:"DB_PASSWORD" default:""`
	Name            string        `envconfig:"DB_NAME" default:"relief_map"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host        string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port        int           `envconfig:"REDIS_PORT" default:"6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize    int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"120"`
}

// SessionConfig selects where session-scoped values live: "memory" or "redis".
type SessionConfig struct {
	Backend         string        `envconfig:"SESSION_BACKEND" default:"memory"`
	TTL             time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	CleanupInterval time.Duration `envconfig:"SESSION_CLEANUP_INTERVAL" default:"10m"`
	IdleTimeout     time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`
}

// SettingsConfig selects where durable profile settings live: "memory" or "postgres".
type SettingsConfig struct {
	Backend string `envconfig:"SETTINGS_BACKEND" default:"memory"`
}

type GeolocationConfig struct {
	CurrentTimeout   time.Duration `envconfig:"GEO_CURRENT_TIMEOUT" default:"15s"`
	CurrentMaxAge    time.Duration `envconfig:"GEO_CURRENT_MAX_AGE" default:"5m"`
	WatchTimeout     time.Duration `envconfig:"GEO_WATCH_TIMEOUT" default:"30s"`
	WatchMaxAge      time.Duration `envconfig:"GEO_WATCH_MAX_AGE" default:"5m"`
	WatchStartDelay  time.Duration `envconfig:"GEO_WATCH_START_DELAY" default:"2s"`
	MinDistance      float64       `envconfig:"GEO_MIN_DISTANCE_METERS" default:"50"`
	MinInterval      time.Duration `envconfig:"GEO_MIN_INTERVAL" default:"10s"`
	LocaleCheckDelay time.Duration `envconfig:"GEO_LOCALE_CHECK_DELAY" default:"1s"`
}

type LocaleConfig struct {
	BaseURL      string        `envconfig:"LOCALE_BASE_URL" default:"http://ip-api.com/json"`
	DomesticCode string        `envconfig:"LOCALE_DOMESTIC_COUNTRY" default:"VN"`
	Timeout      time.Duration `envconfig:"LOCALE_TIMEOUT" default:"5s"`
	CacheTTL     time.Duration `envconfig:"LOCALE_CACHE_TTL" default:"1h"`
}

func (c Config) Validate() error {
	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	switch c.Settings.Backend {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown settings backend %q", c.Settings.Backend)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
