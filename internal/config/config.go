package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port          string `yaml:"port"`
	Environment   string `yaml:"environment"`
	AllowedOrigin string `yaml:"allowed_origin"`

	Dataset struct {
		Path  string `yaml:"path"`  // optional .xlsx dataset, seed data when empty
		Sheet string `yaml:"sheet"` // defaults to first sheet
	} `yaml:"dataset"`

	Groq struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"groq"`

	Summary struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"summary"`

	TableRowCap int `yaml:"table_row_cap"`
}

// Load reads config from a YAML file (missing file is fine), then applies
// environment variable overrides, then defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}
	if v := os.Getenv("DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("DATASET_SHEET"); v != "" {
		cfg.Dataset.Sheet = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Groq.APIKey = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		cfg.Groq.Model = v
	}
	if v := os.Getenv("GROQ_BASE_URL"); v != "" {
		cfg.Groq.BaseURL = v
	}
	if v := os.Getenv("SUMMARY_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Summary.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("TABLE_ROW_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TableRowCap = n
		}
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = "llama-3.3-70b-versatile"
	}
	if cfg.Groq.BaseURL == "" {
		cfg.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Summary.TimeoutSeconds <= 0 {
		cfg.Summary.TimeoutSeconds = 8
	}
	if cfg.TableRowCap <= 0 {
		cfg.TableRowCap = 200
	}

	return cfg, nil
}

// SummaryTimeout returns the bounded timeout for the external summary call.
func (c *Config) SummaryTimeout() time.Duration {
	return time.Duration(c.Summary.TimeoutSeconds) * time.Second
}
