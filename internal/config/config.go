package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full service configuration. Everything is overridable via
// environment variables (SERVER_HOST, SERVER_PORT, LOG_LEVEL, ...).
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: release or debug
}

// Addr returns the bind address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type CORSConfig struct {
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
	AllowOrigins    []string `mapstructure:"allow_origins"`
}

// Load reads configuration from the environment. A .env file is applied
// first if present, matching how the rest of the stack is run locally.
func Load() (*Config, error) {
	_ = godotenv.Load() // best effort, env vars may already be set

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("cors.allow_all_origins", true)

	// Explicit env bindings: SERVER_PORT=9000 etc.
	_ = v.BindEnv("server.host", "SERVER_HOST")
	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("server.mode", "SERVER_MODE")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")
	_ = v.BindEnv("cors.allow_all_origins", "CORS_ALLOW_ALL_ORIGINS")
	_ = v.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", cfg.Server.Port)
	}
	if !cfg.CORS.AllowAllOrigins && len(cfg.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("cors: allow_all_origins disabled but no allow_origins set")
	}
	return nil
}
