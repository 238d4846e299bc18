// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Books         BooksConfig         `yaml:"books"`
	Describe      DescribeConfig      `yaml:"describe"`
	Pricing       PricingConfig       `yaml:"pricing"`
	Batch         BatchConfig         `yaml:"batch"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	AppID        string          `yaml:"app_id"`
	CertID       string          `yaml:"cert_id"`
	TokenURL     string          `yaml:"token_url"`
	BrowseURL    string          `yaml:"browse_url"`
	AnalyticsURL string          `yaml:"analytics_url"`
	Marketplace  string          `yaml:"marketplace"`
	MaxPages     int             `yaml:"max_pages"`
	MaxComps     int             `yaml:"max_comps"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// BooksConfig defines bibliographic lookup settings.
type BooksConfig struct {
	GoogleBooks GoogleBooksConfig `yaml:"google_books"`
	OpenLibrary OpenLibraryConfig `yaml:"open_library"`
	UPCDB       UPCDBConfig       `yaml:"upcdb"`
}

// GoogleBooksConfig defines Google Books API settings.
type GoogleBooksConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// OpenLibraryConfig defines Open Library API settings.
type OpenLibraryConfig struct {
	BaseURL    string `yaml:"base_url"`
	UserAgent  string `yaml:"user_agent"`
	RPS        int    `yaml:"rps"`
	MaxRetries int    `yaml:"max_retries"`
}

// UPCDBConfig defines generic UPC lookup settings.
type UPCDBConfig struct {
	BaseURL string `yaml:"base_url"`
}

// DescribeConfig defines LLM description backend settings.
type DescribeConfig struct {
	Backend      string             `yaml:"backend"` // openai_compat, none
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	MaxTokens    int                `yaml:"max_tokens"`
	Temperature  float64            `yaml:"temperature"`
	Timeout      time.Duration      `yaml:"timeout"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// PricingConfig defines comps engine settings.
type PricingConfig struct {
	IncludeShipping    bool          `yaml:"include_shipping"`
	SuggestionQuantile float64       `yaml:"suggestion_quantile"`
	FallbackPrice      float64       `yaml:"fallback_price"`
	CacheTTL           time.Duration `yaml:"cache_ttl"`
}

// BatchConfig defines bulk listing generation settings.
type BatchConfig struct {
	StaggerDelay time.Duration `yaml:"stagger_delay"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	CacheSweepInterval time.Duration `yaml:"cache_sweep_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyBooksDefaults(&cfg.Books)
	applyDescribeDefaults(&cfg.Describe)
	applyPricingDefaults(&cfg.Pricing)
	applyBatchDefaults(&cfg.Batch)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	}
	if e.AnalyticsURL == "" {
		e.AnalyticsURL = "https://api.ebay.com/developer/analytics/v1_beta/rate_limit/"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.MaxPages == 0 {
		e.MaxPages = 4
	}
	if e.MaxComps == 0 {
		e.MaxComps = 100
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyBooksDefaults(b *BooksConfig) {
	if b.GoogleBooks.BaseURL == "" {
		b.GoogleBooks.BaseURL = "https://www.googleapis.com/books/v1/volumes"
	}
	if b.OpenLibrary.BaseURL == "" {
		b.OpenLibrary.BaseURL = "https://openlibrary.org"
	}
	if b.OpenLibrary.UserAgent == "" {
		b.OpenLibrary.UserAgent = "relister"
	}
	if b.OpenLibrary.RPS == 0 {
		b.OpenLibrary.RPS = 2
	}
	if b.OpenLibrary.MaxRetries == 0 {
		b.OpenLibrary.MaxRetries = 2
	}
	if b.UPCDB.BaseURL == "" {
		b.UPCDB.BaseURL = "https://api.upcitemdb.com/prod/trial/lookup"
	}
}

func applyDescribeDefaults(d *DescribeConfig) {
	if d.Backend == "" {
		d.Backend = "none"
	}
	if d.MaxTokens == 0 {
		d.MaxTokens = 512
	}
	if d.Temperature == 0 {
		d.Temperature = 0.4
	}
	if d.Timeout == 0 {
		d.Timeout = 60 * time.Second
	}
}

func applyPricingDefaults(p *PricingConfig) {
	if p.SuggestionQuantile == 0 {
		p.SuggestionQuantile = 0.5
	}
	if p.FallbackPrice == 0 {
		p.FallbackPrice = 7.99
	}
	if p.CacheTTL == 0 {
		p.CacheTTL = 6 * time.Hour
	}
}

func applyBatchDefaults(b *BatchConfig) {
	if b.StaggerDelay == 0 {
		b.StaggerDelay = 2 * time.Second
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CacheSweepInterval == 0 {
		s.CacheSweepInterval = time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Ebay.AppID == "" {
		errs = append(errs, fmt.Errorf("ebay.app_id is required"))
	}
	if cfg.Ebay.CertID == "" {
		errs = append(errs, fmt.Errorf("ebay.cert_id is required"))
	}

	switch cfg.Describe.Backend {
	case "none":
	case "openai_compat":
		if cfg.Describe.OpenAICompat.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("describe.openai_compat.endpoint is required when backend is openai_compat"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf("describe.backend must be one of: none, openai_compat (got %q)", cfg.Describe.Backend),
		)
	}

	if q := cfg.Pricing.SuggestionQuantile; q < 0 || q > 1 {
		errs = append(errs, fmt.Errorf("pricing.suggestion_quantile must be in [0, 1] (got %v)", q))
	}

	if cfg.Notifications.Webhook.Enabled && cfg.Notifications.Webhook.URL == "" {
		errs = append(errs, fmt.Errorf("notifications.webhook.url is required when webhook is enabled"))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}

	return errors.Join(errs...)
}
