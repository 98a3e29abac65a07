// Package config loads server settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath    = "config.yaml"
	defaultPort          = "8080"
	defaultDBPath        = "data/rangepicker.db"
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepSchedule = "@every 5m"
	defaultMaxSessions   = 1000
	defaultLogLevel      = "info"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Sessions SessionsConfig `yaml:"sessions"`
	Defaults DefaultsConfig `yaml:"defaults"`
	LogLevel string         `yaml:"log_level"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	SecretKey string `yaml:"secret_key"`
	DBPath    string `yaml:"db_path"`
}

type SessionsConfig struct {
	TTL                time.Duration `yaml:"ttl"`
	SweepSchedule      string        `yaml:"sweep_schedule"`
	MaxSessions        int           `yaml:"max_sessions"`
	ReportIntermediate *bool         `yaml:"report_intermediate"`
}

// DefaultsConfig seeds sessions created without explicit parameters.
// Horizon bounds are YYYY-MM-DD; empty means "derive from today".
type DefaultsConfig struct {
	Panes        int    `yaml:"panes"`
	HorizonStart string `yaml:"horizon_start"`
	HorizonEnd   string `yaml:"horizon_end"`
}

// Load reads path when it exists, applies defaults and then environment
// overrides from getenv. A missing file is not an error.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if getenv != nil {
		if err := cfg.applyEnv(getenv); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}
	if c.Server.DBPath == "" {
		c.Server.DBPath = defaultDBPath
	}
	if c.Sessions.TTL <= 0 {
		c.Sessions.TTL = defaultSessionTTL
	}
	if c.Sessions.SweepSchedule == "" {
		c.Sessions.SweepSchedule = defaultSweepSchedule
	}
	if c.Sessions.MaxSessions <= 0 {
		c.Sessions.MaxSessions = defaultMaxSessions
	}
	if c.Sessions.ReportIntermediate == nil {
		enabled := true
		c.Sessions.ReportIntermediate = &enabled
	}
	if c.Defaults.Panes == 0 {
		c.Defaults.Panes = models.DefaultPaneCount
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(key string, target *string) {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			*target = value
		}
	}

	setString("PORT", &c.Server.Port)
	setString("SECRET_KEY", &c.Server.SecretKey)
	setString("DB_PATH", &c.Server.DBPath)
	setString("SWEEP_SCHEDULE", &c.Sessions.SweepSchedule)
	setString("DEFAULT_HORIZON_START", &c.Defaults.HorizonStart)
	setString("DEFAULT_HORIZON_END", &c.Defaults.HorizonEnd)
	setString("LOG_LEVEL", &c.LogLevel)

	if raw := strings.TrimSpace(getenv("SESSION_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return fmt.Errorf("invalid SESSION_TTL %q", raw)
		}
		c.Sessions.TTL = ttl
	}
	if raw := strings.TrimSpace(getenv("MAX_SESSIONS")); raw != "" {
		maxSessions, err := strconv.Atoi(raw)
		if err != nil || maxSessions <= 0 {
			return fmt.Errorf("invalid MAX_SESSIONS %q", raw)
		}
		c.Sessions.MaxSessions = maxSessions
	}
	if raw := strings.TrimSpace(getenv("DEFAULT_PANES")); raw != "" {
		panes, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid DEFAULT_PANES %q", raw)
		}
		c.Defaults.Panes = panes
	}
	return nil
}

// ReportIntermediateEnabled reports the effective intermediate-reporting default.
func (c *Config) ReportIntermediateEnabled() bool {
	return c.Sessions.ReportIntermediate == nil || *c.Sessions.ReportIntermediate
}

// DefaultHorizon resolves the configured default horizon. Unset bounds fall
// back to January 1st of today's year and December 31st of the next year.
func (c *Config) DefaultHorizon(today models.CalendarDate) (models.Horizon, error) {
	start := models.CalendarDate{Year: today.Year, Month: 0, Day: 1}
	end := models.CalendarDate{Year: today.Year + 1, Month: 11, Day: 31}

	if raw := c.Defaults.HorizonStart; raw != "" {
		parsed, err := models.ParseCalendarDate(raw)
		if err != nil {
			return models.Horizon{}, fmt.Errorf("parse default horizon start: %w", err)
		}
		start = parsed
	}
	if raw := c.Defaults.HorizonEnd; raw != "" {
		parsed, err := models.ParseCalendarDate(raw)
		if err != nil {
			return models.Horizon{}, fmt.Errorf("parse default horizon end: %w", err)
		}
		end = parsed
	}
	return models.NewHorizon(start, end)
}

// UnmarshalYAML accepts ttl as a duration string such as "45m".
func (s *SessionsConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		TTL                string `yaml:"ttl"`
		SweepSchedule      string `yaml:"sweep_schedule"`
		MaxSessions        int    `yaml:"max_sessions"`
		ReportIntermediate *bool  `yaml:"report_intermediate"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.TTL != "" {
		ttl, err := time.ParseDuration(raw.TTL)
		if err != nil {
			return fmt.Errorf("parse ttl: %w", err)
		}
		s.TTL = ttl
	}
	s.SweepSchedule = raw.SweepSchedule
	s.MaxSessions = raw.MaxSessions
	s.ReportIntermediate = raw.ReportIntermediate
	return nil
}
