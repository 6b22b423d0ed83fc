package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type Memo struct {
	Timezone string `mapstructure:"timezone"`
}

type Config struct {
	Server    *Server    `mapstructure:"server"`
	CORS      *CORS      `mapstructure:"cors"`
	RateLimit *RateLimit `mapstructure:"rate_limit"`
	Memo      *Memo      `mapstructure:"memo"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("cors", c.CORS),
		slog.Any("rate_limit", c.RateLimit),
		slog.Any("memo", c.Memo),
	)
}

var defaults = map[string]any{
	"server.port":             3333,
	"server.read_timeout":     "10s",
	"server.write_timeout":    "10s",
	"server.idle_timeout":     "60s",
	"server.shutdown_timeout": "10s",
	"server.max_body_bytes":   1 << 20,
	"cors.allowed_origins":    []string{"*"},
	"rate_limit.rps":          0,
	"rate_limit.burst":        0,
	"memo.timezone":           "Local",
}

// Load reads cfgFile on top of the defaults, then applies environment
// overrides. A key such as server.port is read from SERVER_PORT; PORT is
// accepted for it as well. A missing cfgFile is not an error.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if cfgFile != "" {
		if err := readConfigFile(v, cfgFile); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Server.Port <= 0 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", &cfg))
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, cfgFile string) error {
	cfgFile = filepath.Clean(cfgFile)
	if _, err := os.Stat(cfgFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Config file not found, using defaults.", "config_file", cfgFile)
			return nil
		}
		return fmt.Errorf("stat config file %s: %w", cfgFile, err)
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType(strings.TrimLeft(filepath.Ext(cfgFile), "."))
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	return nil
}
