package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv   string
	LogLevel string

	DBDriver       string
	DBPath         string
	DBQueryTimeout time.Duration
	DBAutoMigrate  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheEnabled  bool
	CacheTTL      time.Duration

	GRPCPort              int
	GRPCReflectionEnabled bool
	GRPCLoggingEnabled    bool

	MetricsAddr  string
	OTLPEndpoint string

	ScoringScaleFactor float64

	// Level is shared with every logger built by NewLogger and follows
	// LOG_LEVEL changes picked up by Watch.
	Level zap.AtomicLevel

	v *viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("db_driver", "sqlite3")
	v.SetDefault("db_path", "./data/database.db")
	v.SetDefault("db_query_timeout", time.Second)
	v.SetDefault("db_auto_migrate", false)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_enabled", true)
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("grpc_reflection_enabled", false)
	v.SetDefault("grpc_logging_enabled", true)
	v.SetDefault("metrics_addr", ":9090")
	v.SetDefault("otlp_endpoint", "")
	v.SetDefault("scoring_scale_factor", 20.0)
}

// Load resolves the configuration from defaults, an optional qa-scoring.yaml
// (or the file named by CONFIG_FILE) and environment variables, in
// increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	file := os.Getenv("CONFIG_FILE")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("qa-scoring")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/qa-scoring")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppEnv:                v.GetString("app_env"),
		LogLevel:              v.GetString("log_level"),
		DBDriver:              v.GetString("db_driver"),
		DBPath:                v.GetString("db_path"),
		DBQueryTimeout:        v.GetDuration("db_query_timeout"),
		DBAutoMigrate:         v.GetBool("db_auto_migrate"),
		RedisAddr:             v.GetString("redis_addr"),
		RedisPassword:         v.GetString("redis_password"),
		RedisDB:               v.GetInt("redis_db"),
		CacheEnabled:          v.GetBool("cache_enabled"),
		CacheTTL:              v.GetDuration("cache_ttl"),
		GRPCPort:              v.GetInt("grpc_port"),
		GRPCReflectionEnabled: v.GetBool("grpc_reflection_enabled"),
		GRPCLoggingEnabled:    v.GetBool("grpc_logging_enabled"),
		MetricsAddr:           v.GetString("metrics_addr"),
		OTLPEndpoint:          v.GetString("otlp_endpoint"),
		ScoringScaleFactor:    v.GetFloat64("scoring_scale_factor"),
		v:                     v,
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid GRPC_PORT %d: must be between 1 and 65535", c.GRPCPort)
	}
	if c.DBQueryTimeout <= 0 {
		return fmt.Errorf("invalid DB_QUERY_TIMEOUT %s: must be positive", c.DBQueryTimeout)
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		return fmt.Errorf("invalid CACHE_TTL %s: must be positive", c.CacheTTL)
	}
	if c.ScoringScaleFactor <= 0 {
		return fmt.Errorf("invalid SCORING_SCALE_FACTOR %v: must be positive", c.ScoringScaleFactor)
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Watch re-applies log_level whenever the config file changes. It returns
// false when no config file was loaded.
func (c *Config) Watch(logger *zap.Logger) bool {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return false
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		raw := c.v.GetString("log_level")
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			logger.Warn("invalid log level ignored",
				zap.String("file", e.Name),
				zap.String("log_level", raw))
			return
		}
		if level == c.Level.Level() {
			return
		}
		c.Level.SetLevel(level)
		logger.Info("log level reloaded",
			zap.String("file", e.Name),
			zap.Stringer("level", level))
	})
	c.v.WatchConfig()
	return true
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	if cfg.Level == (zap.AtomicLevel{}) {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg.Level = cfg.Level
	return zcfg.Build()
}
