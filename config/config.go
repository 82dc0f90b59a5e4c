// Package config loads runtime configuration from an optional YAML file
// with environment variable overrides. Credentials only ever come from the
// environment so they stay out of checked-in files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"stackdigest"
)

// Defaults applied when neither the file nor the environment says otherwise.
const (
	DefaultSearchURL      = "https://substack.com/search/artificial%20intelligence?searching=all_posts"
	DefaultMaxArticles    = 80
	DefaultDBPath         = "article_summaries.db"
	DefaultSMTPAddr       = "smtp.gmail.com:587"
	DefaultConcurrency    = 10
	DefaultTimeoutSeconds = 60
)

// Config holds everything a run needs.
type Config struct {
	SearchURL   string `yaml:"search_url"`
	MaxArticles int    `yaml:"max_articles"`
	DBPath      string `yaml:"db_path"`
	Concurrency int    `yaml:"concurrency"`

	// PageTimeoutSeconds bounds each page fetch. The derived duration is
	// exposed through PageTimeout.
	PageTimeoutSeconds int `yaml:"page_timeout_seconds"`

	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Mail       MailConfig       `yaml:"mail"`
}

// PageTimeout returns the per-page fetch timeout as a duration.
func (c *Config) PageTimeout() time.Duration {
	return time.Duration(c.PageTimeoutSeconds) * time.Second
}

// OpenRouterConfig configures the completion API client. The key is never
// read from the file.
type OpenRouterConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"-"`
}

// MailConfig configures digest delivery. Credentials are never read from
// the file.
type MailConfig struct {
	SMTPAddr  string `yaml:"smtp_addr"`
	From      string `yaml:"-"`
	Password  string `yaml:"-"`
	Recipient string `yaml:"-"`
}

// Configured reports whether all three mail settings are present. A run
// without them still scrapes and summarizes; only delivery is skipped.
func (m MailConfig) Configured() bool {
	return m.From != "" && m.Password != "" && m.Recipient != ""
}

// Load reads the config file at path (if path is empty, the file named by
// STACKDIGEST_CONFIG, if any), then applies environment overrides and
// defaults. A missing file is not an error; only credentials are required.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv("STACKDIGEST_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STACKDIGEST_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("STACKDIGEST_SEARCH_URL"); v != "" {
		c.SearchURL = v
	}
	c.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	c.Mail.From = os.Getenv("EMAIL_ADDRESS")
	c.Mail.Password = os.Getenv("EMAIL_PASSWORD")
	c.Mail.Recipient = os.Getenv("RECIPIENT_EMAIL")
}

func (c *Config) applyDefaults() {
	if c.SearchURL == "" {
		c.SearchURL = DefaultSearchURL
	}
	if c.MaxArticles <= 0 {
		c.MaxArticles = DefaultMaxArticles
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.PageTimeoutSeconds <= 0 {
		c.PageTimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Mail.SMTPAddr == "" {
		c.Mail.SMTPAddr = DefaultSMTPAddr
	}
}

// Validate checks the settings a run cannot proceed without.
func (c *Config) Validate() error {
	if c.OpenRouter.APIKey == "" {
		return stackdigest.Errorf(stackdigest.EINVALID, "OPENROUTER_API_KEY is required")
	}
	return nil
}
