package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port           string `yaml:"port" env:"PANEL_HTTP_PORT"`
		AllowedOrigins string `yaml:"allowedOrigins" env:"PANEL_CORS_ORIGINS"`
	} `yaml:"http"`
	Assistant struct {
		APIKey         string `yaml:"apiKey" env:"GEMINI_API_KEY"`
		Model          string `yaml:"model" env:"PANEL_ASSISTANT_MODEL"`
		TimeoutSeconds int    `yaml:"timeoutSeconds" env:"PANEL_ASSISTANT_TIMEOUT_SECONDS"`
	} `yaml:"assistant"`
}

// Load reads configuration using the shared loader and applies defaults.
// The assistant API key may be empty, in which case the chat endpoint reports
// itself unavailable; every other page keeps working.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Assistant.Model = "gemini-2.0-flash"
	cfg.Assistant.TimeoutSeconds = 60

	if err := hydrate(cfg); err != nil {
		return nil, err
	}

	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = "gemini-2.0-flash"
	}
	if cfg.Assistant.TimeoutSeconds <= 0 {
		cfg.Assistant.TimeoutSeconds = 60
	}

	return cfg, nil
}

// HTTPAddress ensures we always return a host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// Origins splits the configured comma-separated CORS origin list.
func (c *Config) Origins() []string {
	raw := strings.TrimSpace(c.HTTP.AllowedOrigins)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// AssistantTimeout converts the configured timeout to a duration.
func (c *Config) AssistantTimeout() time.Duration {
	if c.Assistant.TimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.Assistant.TimeoutSeconds) * time.Second
}
