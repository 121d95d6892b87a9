package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for skillscout.
type Config struct {
	Vocabulary   []string
	RecencyDays  int
	Sources      SourcesConfig
	RateLimit    RateLimitConfig
	Notification NotificationConfig
	Storage      StorageConfig
	Server       ServerConfig
}

// SourcesConfig controls which job boards are queried and the per-call budget.
type SourcesConfig struct {
	Timeout        time.Duration
	MaxConcurrent  int // 0 = unbounded
	Remotive       SourceToggle
	Arbeitnow      SourceToggle
	HackerNews     SourceToggle
	WeWorkRemotely SourceToggle
	RSS            RSSConfig
}

// SourceToggle enables or disables a single job-board source.
type SourceToggle struct {
	Enabled bool `yaml:"enabled"`
}

// RSSConfig lists job feeds polled through the generic RSS source.
type RSSConfig struct {
	Feeds []string `yaml:"feeds"`
}

// RateLimitConfig bounds outbound request rate per job-board host.
type RateLimitConfig struct {
	PerHostRPS float64 `yaml:"per_host_rps"`
	Burst      int     `yaml:"burst"`
}

// NotificationConfig controls which notifier is used and its settings.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

// StorageConfig locates the scan-history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultVocabulary is the skill list used when the config does not supply one.
var DefaultVocabulary = []string{
	"Go", "Python", "Java", "JavaScript", "TypeScript", "Rust",
	"C++", "C#", "Ruby", "PHP", "Kotlin", "Swift",
	"React", "Node.js", "Django", "Kubernetes", "Docker", "Terraform",
	"AWS", "GCP", "Azure", "PostgreSQL", "MySQL", "Redis", "Kafka",
	"Machine Learning", "DevOps", "SRE",
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Vocabulary   []string           `yaml:"vocabulary"`
	RecencyDays  int                `yaml:"recency_days"`
	Sources      rawSourcesConfig   `yaml:"sources"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Notification NotificationConfig `yaml:"notification"`
	Storage      StorageConfig      `yaml:"storage"`
	Server       ServerConfig       `yaml:"server"`
}

type rawSourcesConfig struct {
	Timeout        string        `yaml:"timeout"`
	MaxConcurrent  int           `yaml:"max_concurrent"`
	Remotive       *SourceToggle `yaml:"remotive"`
	Arbeitnow      *SourceToggle `yaml:"arbeitnow"`
	HackerNews     *SourceToggle `yaml:"hackernews"`
	WeWorkRemotely *SourceToggle `yaml:"weworkremotely"`
	RSS            RSSConfig     `yaml:"rss"`
}

// Load reads and parses the YAML config file at path, validates it, and
// returns Config. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if len(raw.Vocabulary) > 0 {
		cfg.Vocabulary = raw.Vocabulary
	}
	if raw.RecencyDays != 0 {
		cfg.RecencyDays = raw.RecencyDays
	}

	if raw.Sources.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Sources.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse sources.timeout %q: %w", raw.Sources.Timeout, err)
		}
		cfg.Sources.Timeout = timeout
	}
	if raw.Sources.MaxConcurrent != 0 {
		cfg.Sources.MaxConcurrent = raw.Sources.MaxConcurrent
	}
	if raw.Sources.Remotive != nil {
		cfg.Sources.Remotive = *raw.Sources.Remotive
	}
	if raw.Sources.Arbeitnow != nil {
		cfg.Sources.Arbeitnow = *raw.Sources.Arbeitnow
	}
	if raw.Sources.HackerNews != nil {
		cfg.Sources.HackerNews = *raw.Sources.HackerNews
	}
	if raw.Sources.WeWorkRemotely != nil {
		cfg.Sources.WeWorkRemotely = *raw.Sources.WeWorkRemotely
	}
	cfg.Sources.RSS = raw.Sources.RSS

	if raw.RateLimit.PerHostRPS != 0 {
		cfg.RateLimit.PerHostRPS = raw.RateLimit.PerHostRPS
	}
	if raw.RateLimit.Burst != 0 {
		cfg.RateLimit.Burst = raw.RateLimit.Burst
	}
	if raw.Notification.Type != "" {
		cfg.Notification = raw.Notification
	}
	if raw.Storage.Path != "" {
		cfg.Storage = raw.Storage
	}
	if raw.Server.Addr != "" {
		cfg.Server = raw.Server
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Vocabulary:  DefaultVocabulary,
		RecencyDays: 7,
		Sources: SourcesConfig{
			Timeout:        20 * time.Second,
			MaxConcurrent:  8,
			Remotive:       SourceToggle{Enabled: true},
			Arbeitnow:      SourceToggle{Enabled: true},
			HackerNews:     SourceToggle{Enabled: true},
			WeWorkRemotely: SourceToggle{Enabled: true},
		},
		RateLimit:    RateLimitConfig{PerHostRPS: 2, Burst: 1},
		Notification: NotificationConfig{Type: "log"},
		Storage:      StorageConfig{Path: "skillscout.db"},
		Server:       ServerConfig{Addr: ":8080"},
	}
}

// RecencyWindow returns the recency cutoff as a duration.
func (c *Config) RecencyWindow() time.Duration {
	return time.Duration(c.RecencyDays) * 24 * time.Hour
}

func validate(cfg *Config) error {
	if len(cfg.Vocabulary) == 0 {
		return fmt.Errorf("vocabulary must not be empty")
	}
	for _, term := range cfg.Vocabulary {
		if strings.TrimSpace(term) == "" {
			return fmt.Errorf("vocabulary must not contain blank terms")
		}
	}

	if cfg.RecencyDays < 1 || cfg.RecencyDays > 90 {
		return fmt.Errorf("recency_days must be between 1 and 90, got %d", cfg.RecencyDays)
	}

	if cfg.Sources.Timeout <= 0 {
		return fmt.Errorf("sources.timeout must be positive, got %v", cfg.Sources.Timeout)
	}
	if cfg.Sources.MaxConcurrent < 0 {
		return fmt.Errorf("sources.max_concurrent must not be negative, got %d", cfg.Sources.MaxConcurrent)
	}

	enabled := 0
	if cfg.Sources.Remotive.Enabled {
		enabled++
	}
	if cfg.Sources.Arbeitnow.Enabled {
		enabled++
	}
	if cfg.Sources.HackerNews.Enabled {
		enabled++
	}
	if cfg.Sources.WeWorkRemotely.Enabled {
		enabled++
	}
	enabled += len(cfg.Sources.RSS.Feeds)
	if enabled == 0 {
		return fmt.Errorf("at least one source must be enabled")
	}

	if cfg.RateLimit.PerHostRPS < 0 {
		return fmt.Errorf("rate_limit.per_host_rps must not be negative, got %v", cfg.RateLimit.PerHostRPS)
	}

	if cfg.Notification.Type == "slack" {
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	}

	return nil
}
