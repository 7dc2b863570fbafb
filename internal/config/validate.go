package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.URL) == "" {
		return fmt.Errorf("url is required (DATABASE_URL)")
	}
	if !strings.HasPrefix(d.URL, "mongodb://") && !strings.HasPrefix(d.URL, "mongodb+srv://") {
		return fmt.Errorf("url must start with mongodb:// or mongodb+srv://")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required (DATABASE_NAME)")
	}
	if strings.TrimSpace(d.Collection) == "" {
		return fmt.Errorf("collection is required (DATABASE_COLLECTION)")
	}
	if d.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be > 0 (got %v)", d.ConnectTimeout)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %v)", s.ShutdownTimeout)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}

	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
