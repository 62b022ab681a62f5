// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// Catalog source names.
const (
	CatalogPokemonTCG = "pokemontcg"
	CatalogScryfall   = "scryfall"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Mapping       MappingConfig       `yaml:"mapping"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Tracing       TracingConfig       `yaml:"tracing"`
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
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// EbayConfig defines eBay API settings. AppID and CertID are the OAuth
// client id and secret used for both the application token and user token
// refreshes.
type EbayConfig struct {
	AppID         string          `yaml:"app_id"`
	CertID        string          `yaml:"cert_id"`
	TokenURL      string          `yaml:"token_url"`
	APIBaseURL    string          `yaml:"api_base_url"`
	AnalyticsURL  string          `yaml:"analytics_url"`
	Marketplace   string          `yaml:"marketplace"`
	RefreshWindow time.Duration   `yaml:"refresh_window"`
	MaxRetries    int             `yaml:"max_retries"`
	Timeout       time.Duration   `yaml:"timeout"`
	PageSize      int             `yaml:"page_size"`
	MaxPages      int             `yaml:"max_pages"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// CatalogConfig defines the public card catalog sources.
type CatalogConfig struct {
	DefaultSource string           `yaml:"default_source"` // pokemontcg, scryfall
	Timeout       time.Duration    `yaml:"timeout"`
	PageSize      int              `yaml:"page_size"`
	PokemonTCG    PokemonTCGConfig `yaml:"pokemontcg"`
	Scryfall      ScryfallConfig   `yaml:"scryfall"`
}

// PokemonTCGConfig defines Pokémon TCG API settings. The API key is optional
// and only raises the rate limit.
type PokemonTCGConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// ScryfallConfig defines Scryfall API settings.
type ScryfallConfig struct {
	BaseURL string `yaml:"base_url"`
}

// MappingConfig defines listing-to-inventory mapping behavior.
type MappingConfig struct {
	DefaultCondition string `yaml:"default_condition"`
}

// AlertsConfig defines the price alert pass.
type AlertsConfig struct {
	Enabled       bool          `yaml:"enabled"`
	CheckInterval time.Duration `yaml:"check_interval"`
	SampleSize    int           `yaml:"sample_size"` // Browse results used for the median
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Email   EmailConfig   `yaml:"email"`
	Discord DiscordConfig `yaml:"discord"`
}

// EmailConfig defines the email function endpoint.
type EmailConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	APIKey  string `yaml:"api_key"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// TracingConfig defines OpenTelemetry trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
	// ExportMetrics also exports OpenTelemetry metrics to Endpoint.
	ExportMetrics bool `yaml:"export_metrics"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

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
	applyCatalogDefaults(&cfg.Catalog)
	applyMappingDefaults(&cfg.Mapping)
	applyAlertsDefaults(&cfg.Alerts)
	applyLoggingDefaults(&cfg.Logging)
	applyTracingDefaults(&cfg.Tracing)
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
	if e.APIBaseURL == "" {
		e.APIBaseURL = "https://api.ebay.com"
	}
	if e.AnalyticsURL == "" {
		e.AnalyticsURL = "https://api.ebay.com/developer/analytics/v1_beta/rate_limit/"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.RefreshWindow == 0 {
		e.RefreshWindow = 5 * time.Minute
	}
	if e.MaxRetries == 0 {
		e.MaxRetries = 3
	}
	if e.Timeout == 0 {
		e.Timeout = 15 * time.Second
	}
	if e.PageSize == 0 {
		e.PageSize = 100
	}
	if e.MaxPages == 0 {
		e.MaxPages = 10
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

func applyCatalogDefaults(c *CatalogConfig) {
	if c.DefaultSource == "" {
		c.DefaultSource = CatalogPokemonTCG
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.PageSize == 0 {
		c.PageSize = 20
	}
	if c.PokemonTCG.BaseURL == "" {
		c.PokemonTCG.BaseURL = "https://api.pokemontcg.io/v2"
	}
	if c.Scryfall.BaseURL == "" {
		c.Scryfall.BaseURL = "https://api.scryfall.com"
	}
}

func applyMappingDefaults(m *MappingConfig) {
	if m.DefaultCondition == "" {
		m.DefaultCondition = string(domain.ConditionNearMint)
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.CheckInterval == 0 {
		a.CheckInterval = time.Hour
	}
	if a.SampleSize == 0 {
		a.SampleSize = 20
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

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "card-ledger"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
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
	if cfg.Ebay.RefreshWindow < 0 {
		errs = append(errs, fmt.Errorf("ebay.refresh_window must not be negative"))
	}
	if cfg.Ebay.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("ebay.max_retries must not be negative"))
	}
	if cfg.Ebay.PageSize < 1 || cfg.Ebay.PageSize > 200 {
		errs = append(errs, fmt.Errorf("ebay.page_size must be between 1 and 200"))
	}

	switch cfg.Catalog.DefaultSource {
	case CatalogPokemonTCG, CatalogScryfall:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"catalog.default_source must be one of: pokemontcg, scryfall (got %q)",
				cfg.Catalog.DefaultSource,
			),
		)
	}

	if !domain.Condition(cfg.Mapping.DefaultCondition).Valid() {
		errs = append(
			errs,
			fmt.Errorf("mapping.default_condition %q is not a known condition", cfg.Mapping.DefaultCondition),
		)
	}

	if cfg.Alerts.CheckInterval < time.Minute {
		errs = append(errs, fmt.Errorf("alerts.check_interval must be at least 1m"))
	}

	if cfg.Notifications.Email.Enabled && cfg.Notifications.Email.URL == "" {
		errs = append(errs, fmt.Errorf("notifications.email.url is required when email is enabled"))
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, fmt.Errorf("tracing.endpoint is required when tracing is enabled"))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}
