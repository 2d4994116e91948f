package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings, typically loaded from config.yaml.
type Config struct {
	ServerAddr string          `yaml:"server_addr"`
	LogLevel   string          `yaml:"log_level"`
	LLM        LLMConfig       `yaml:"llm"`
	Analytics  AnalyticsConfig `yaml:"analytics"`
	Server     ServerConfig    `yaml:"server"`
}

// LLMConfig selects and configures the generative-language backend.
type LLMConfig struct {
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model"`
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AnalyticsConfig is optional; an empty measurement id disables analytics.
type AnalyticsConfig struct {
	MeasurementID string `yaml:"measurement_id"`
	APISecret     string `yaml:"api_secret"`
	Endpoint      string `yaml:"endpoint"`
}

type ServerConfig struct {
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`
}

// Environment overrides. The VITE_ names are accepted as fallbacks.
const (
	EnvAPIKey        = "GEMINI_API_KEY"
	EnvMeasurementID = "GA_MEASUREMENT_ID"
	EnvAPISecret     = "GA_API_SECRET"
	EnvLogLevel      = "REMINDER_LOG_LEVEL"
)

var fallbackEnv = map[string]string{
	EnvAPIKey:        "VITE_GEMINI_API_KEY",
	EnvMeasurementID: "VITE_GA_MEASUREMENT_ID",
}

// Providers lists the accepted llm.provider values.
var Providers = []string{"gemini", "genai", "openai", "mock"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ServerAddr: ":8080",
		LLM: LLMConfig{
			Provider:       "gemini",
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 60,
		},
		Server: ServerConfig{SessionTTLMinutes: 60},
	}
}

// Load reads the YAML file at path on top of Default and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := lookup(EnvAPIKey); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := lookup(EnvMeasurementID); v != "" {
		cfg.Analytics.MeasurementID = v
	}
	if v := lookup(EnvAPISecret); v != "" {
		cfg.Analytics.APISecret = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func lookup(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	if alt, ok := fallbackEnv[name]; ok {
		return os.Getenv(alt)
	}
	return ""
}

// Validate checks values that cannot be defaulted. A missing API key is not an error here;
// the revise action reports it.
func (c Config) Validate() error {
	known := false
	for _, p := range Providers {
		if c.LLM.Provider == p {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("llm provider %q not supported", c.LLM.Provider)
	}
	if c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("llm.timeout_seconds must not be negative")
	}
	if c.Server.SessionTTLMinutes < 0 {
		return fmt.Errorf("server.session_ttl_minutes must not be negative")
	}
	return nil
}

// Timeout returns the LLM request timeout.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionTTL returns how long an idle web session is kept.
func (c ServerConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
