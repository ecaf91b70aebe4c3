package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application-wide configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig holds the cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// CatalogConfig selects where term course data comes from.
//
// Source is either "file" (term JSON files under TermsDir, the default)
// or "postgres" (the course_meetings table, see internal/repository).
type CatalogConfig struct {
	Source   string `mapstructure:"source"`
	TermsDir string `mapstructure:"terms_dir"`
}

// DatabaseConfig holds the PostgreSQL settings, used when catalog.source
// is "postgres".
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// RedisConfig holds the Redis settings. Redis backs the per-endpoint rate
// limiter; the server degrades to unlimited when it is unreachable.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SchedulerConfig holds the schedule-generation engine limits.
type SchedulerConfig struct {
	// MaxCombinations caps the number of section combinations the engine
	// may explore for one request. Exceeding it fails the request instead
	// of letting an adversarial course list run unbounded.
	MaxCombinations int `mapstructure:"max_combinations"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file and environment variables.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors.allow_origins", []string{"*"})

	v.SetDefault("catalog.source", "file")
	v.SetDefault("catalog.terms_dir", ".")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "yuscheduler")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("scheduler.max_combinations", 10000)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("YUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file: defaults and environment variables only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the critical settings.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be within 1-65535")
	}
	switch c.Catalog.Source {
	case "file", "postgres":
	default:
		return fmt.Errorf("config: catalog.source must be %q or %q, got %q", "file", "postgres", c.Catalog.Source)
	}
	if c.Catalog.Source == "file" && c.Catalog.TermsDir == "" {
		return fmt.Errorf("config: catalog.terms_dir must not be empty")
	}
	if c.Scheduler.MaxCombinations <= 0 {
		return fmt.Errorf("config: scheduler.max_combinations must be positive")
	}
	return nil
}
