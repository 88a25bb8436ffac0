package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bnema/conanhost/internal/adapters/out/telemetry"
	"github.com/bnema/conanhost/internal/domain"
	"github.com/bnema/conanhost/internal/logging"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// EnvPrefix prefixes every environment override, e.g. CONANHOST_SERVER_ADDR.
const EnvPrefix = "CONANHOST"

// Config holds the application configuration.
type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr" yaml:"addr"`
		BaseURL         string        `mapstructure:"base_url" yaml:"base_url"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
		BodyLimit       string        `mapstructure:"body_limit" yaml:"body_limit"`
		TLS             struct {
			Auto     bool   `mapstructure:"auto" yaml:"auto"`
			Domain   string `mapstructure:"domain" yaml:"domain"`
			CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
		} `mapstructure:"tls" yaml:"tls"`
	} `mapstructure:"server" yaml:"server"`

	Storage struct {
		Backend string `mapstructure:"backend" yaml:"backend"` // "sqlite" or "memory"
		DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	} `mapstructure:"storage" yaml:"storage"`

	Auth struct {
		Enabled       bool          `mapstructure:"enabled" yaml:"enabled"`
		AnonymousRead bool          `mapstructure:"anonymous_read" yaml:"anonymous_read"`
		Username      string        `mapstructure:"username" yaml:"username"`
		PasswordHash  string        `mapstructure:"password_hash" yaml:"password_hash"` // bcrypt, see `conanhost hashpw`
		TokenSecret   string        `mapstructure:"token_secret" yaml:"token_secret"`
		TokenTTL      time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
	} `mapstructure:"auth" yaml:"auth"`

	RateLimit struct {
		Enabled        bool     `mapstructure:"enabled" yaml:"enabled"`
		GlobalRPS      float64  `mapstructure:"global_rps" yaml:"global_rps"`
		GlobalBurst    int      `mapstructure:"global_burst" yaml:"global_burst"`
		IPRPS          float64  `mapstructure:"ip_rps" yaml:"ip_rps"`
		IPBurst        int      `mapstructure:"ip_burst" yaml:"ip_burst"`
		TrustedProxies []string `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
	} `mapstructure:"ratelimit" yaml:"ratelimit"`

	Logging   logging.Config   `mapstructure:"logging" yaml:"logging"`
	Telemetry telemetry.Config `mapstructure:"telemetry" yaml:"telemetry"`
}

// minTokenSecretLength is the shortest accepted HS256 signing secret.
const minTokenSecretLength = 32

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server.base_url %q must be an absolute URL", domain.ErrInvalidConfig, c.Server.BaseURL)
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("%w: storage.data_dir is required for the sqlite backend", domain.ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", domain.ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Auth.Enabled {
		if c.Auth.Username == "" || c.Auth.PasswordHash == "" {
			return fmt.Errorf("%w: auth.username and auth.password_hash are required when auth is enabled", domain.ErrInvalidConfig)
		}
		if len(c.Auth.TokenSecret) < minTokenSecretLength {
			return fmt.Errorf("%w: auth.token_secret must be at least %d characters", domain.ErrInvalidConfig, minTokenSecretLength)
		}
	}

	if c.Server.TLS.Auto && c.Server.TLS.Domain == "" {
		return fmt.Errorf("%w: server.tls.domain is required with server.tls.auto", domain.ErrInvalidConfig)
	}
	return nil
}

// initConfig loads, unmarshals and validates the configuration.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Server.BaseURL = strings.TrimSuffix(cfg.Server.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, Config{}, err
	}
	return v, cfg, nil
}

// setDefaults registers every configuration key with its default value.
// Keys must be known to viper for environment overrides to reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":9300")
	v.SetDefault("server.base_url", "http://localhost:9300")
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "10m")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.body_limit", "2G")
	v.SetDefault("server.tls.auto", false)
	v.SetDefault("server.tls.domain", "")
	v.SetDefault("server.tls.cache_dir", "")
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.data_dir", DefaultDataDir())
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.anonymous_read", true)
	v.SetDefault("auth.username", "")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_ttl", "720h")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.global_rps", 500)
	v.SetDefault("ratelimit.global_burst", 1000)
	v.SetDefault("ratelimit.ip_rps", 50)
	v.SetDefault("ratelimit.ip_burst", 100)
	v.SetDefault("ratelimit.trusted_proxies", []string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)
	v.SetDefault("telemetry.service_name", telemetry.DefaultServiceName)
	v.SetDefault("telemetry.environment", "")
}

// loadConfig loads configuration from file and environment and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	setDefaults(v)

	// A .env file in the working directory feeds the environment overrides.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// DefaultConfig returns the configuration produced by the defaults alone.
func DefaultConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal defaults: %w", err)
	}
	return cfg, nil
}
