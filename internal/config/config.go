package config

import (
	"errors"
	"fmt"
	"priority-task-list/internal/service"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "TASKLIST"

type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	DeadlineLayouts []string      `mapstructure:"deadline_layouts"`
}

func New() Config {
	return Config{
		HTTPAddr:        ":8080",
		ShutdownTimeout: time.Second * 10,
		SessionTTL:      time.Minute * 30,
		SweepInterval:   time.Minute,
		LogLevel:        "info",
		LogFormat:       "text",
		DeadlineLayouts: append([]string(nil), service.DefaultDeadlineLayouts...),
	}
}

// Load reads defaults, then the optional file at path, then TASKLIST_*
// environment variables. The file type follows its extension.
func Load(path string) (Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (Config, error) {
	def := New()
	v.SetDefault("http_addr", def.HTTPAddr)
	v.SetDefault("shutdown_timeout", def.ShutdownTimeout)
	v.SetDefault("session_ttl", def.SessionTTL)
	v.SetDefault("sweep_interval", def.SweepInterval)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("deadline_layouts", def.DeadlineLayouts)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	ErrNoAddr            = errors.New("http_addr is empty")
	ErrBadLogFormat      = errors.New("log_format must be text or json")
	ErrNoDeadlineLayouts = errors.New("deadline_layouts is empty")
)

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return ErrNoAddr
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}
	if len(c.DeadlineLayouts) == 0 {
		return ErrNoDeadlineLayouts
	}
	return nil
}
