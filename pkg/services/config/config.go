package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/spendlens/spendlens/pkg/services/period"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Source struct {
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url"`
}

type Config struct {
	Server    Server `mapstructure:"server"`
	Source    Source `mapstructure:"source"`
	WeekStart string `mapstructure:"week_start"`
}

// Load reads the config file at path. An empty path skips the file and uses
// defaults plus SPENDLENS_* environment variables only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	// Empty defaults register the keys so environment variables bind to them.
	v.SetDefault("source.path", "")
	v.SetDefault("source.url", "")
	v.SetDefault("week_start", time.Sunday.String())

	v.SetEnvPrefix("SPENDLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// CSVSource picks the configured transactions source, preferring a URL over
// a local path.
func (c *Config) CSVSource() string {
	if c.Source.URL != "" {
		return c.Source.URL
	}
	return c.Source.Path
}

// Calendar resolves the configured week-start name into a period calendar.
func (c *Config) Calendar() (period.Calendar, error) {
	if c.WeekStart == "" {
		return period.Calendar{}, nil
	}
	wd, err := period.ParseWeekday(c.WeekStart)
	if err != nil {
		return period.Calendar{}, fmt.Errorf("invalid week_start: %w", err)
	}
	return period.Calendar{WeekStart: wd}, nil
}

// Addr joins the configured host and port for the HTTP listener.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}
