// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type FixturesConfig struct {
	MinRosterSize          int `yaml:"min_roster_size"`
	RoundCadenceDays       int `yaml:"round_cadence_days"`
	DefaultIntervalMinutes int `yaml:"default_interval_minutes"`
}

type JobsConfig struct {
	ReconcileStandings      string `yaml:"reconcile_standings"`
	NotificationDispatch    string `yaml:"notification_dispatch"`
	NotificationBatchSize   int    `yaml:"notification_batch_size"`
	NotificationMaxAttempts int    `yaml:"notification_max_attempts"`
}

type HTTPConfig struct {
	AllowedOrigins         []string `yaml:"allowed_origins"`
	WriteRequestsPerMinute int      `yaml:"write_requests_per_minute"`
	TrustProxy             bool     `yaml:"trust_proxy"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
}

type EmailConfig struct {
	Region          string `yaml:"region"`
	Sender          string `yaml:"sender"`
	AccessKeyID     string `yaml:"-"` // Loaded from environment
	SecretAccessKey string `yaml:"-"` // Loaded from environment
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		Timezone    string `yaml:"timezone"`
		PhoneRegion string `yaml:"phone_region"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Jobs     JobsConfig     `yaml:"jobs"`
	HTTP     HTTPConfig     `yaml:"http"`
	Email    EmailConfig    `yaml:"email"`

	Auth struct {
		ClerkSecretKey string `yaml:"-"` // Loaded from environment
	} `yaml:"-"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// Load sensitive values from environment
	cfg.Auth.ClerkSecretKey = os.Getenv("CLERK_SECRET_KEY")
	cfg.Email.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Email.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Parse decodes YAML config and fills defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.App.Timezone == "" {
		c.App.Timezone = "UTC"
	}
	if c.App.PhoneRegion == "" {
		c.App.PhoneRegion = "US"
	}
	if c.Fixtures.MinRosterSize == 0 {
		c.Fixtures.MinRosterSize = 7
	}
	if c.Fixtures.RoundCadenceDays == 0 {
		c.Fixtures.RoundCadenceDays = 7
	}
	if c.Fixtures.DefaultIntervalMinutes == 0 {
		c.Fixtures.DefaultIntervalMinutes = 120
	}
	if c.Jobs.ReconcileStandings == "" {
		c.Jobs.ReconcileStandings = "0 3 * * *"
	}
	if c.Jobs.NotificationDispatch == "" {
		c.Jobs.NotificationDispatch = "*/5 * * * *"
	}
	if c.Jobs.NotificationBatchSize == 0 {
		c.Jobs.NotificationBatchSize = 50
	}
	if c.Jobs.NotificationMaxAttempts == 0 {
		c.Jobs.NotificationMaxAttempts = 5
	}
	if c.HTTP.WriteRequestsPerMinute == 0 {
		c.HTTP.WriteRequestsPerMinute = 60
	}
	if c.HTTP.ShutdownTimeoutSeconds == 0 {
		c.HTTP.ShutdownTimeoutSeconds = 30
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid app timezone %q: %w", c.App.Timezone, err)
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Fixtures.MinRosterSize < 1 {
		return fmt.Errorf("fixtures min_roster_size must be at least 1")
	}
	if c.Fixtures.RoundCadenceDays < 1 {
		return fmt.Errorf("fixtures round_cadence_days must be at least 1")
	}
	if c.Fixtures.DefaultIntervalMinutes < 1 {
		return fmt.Errorf("fixtures default_interval_minutes must be at least 1")
	}

	for name, expr := range map[string]string{
		"reconcile_standings":   c.Jobs.ReconcileStandings,
		"notification_dispatch": c.Jobs.NotificationDispatch,
	} {
		if _, err := cron.ParseStandard(expr); err != nil {
			return fmt.Errorf("invalid cron expression for jobs.%s: %w", name, err)
		}
	}
	if c.Jobs.NotificationBatchSize < 1 {
		return fmt.Errorf("jobs notification_batch_size must be at least 1")
	}
	if c.Jobs.NotificationMaxAttempts < 1 {
		return fmt.Errorf("jobs notification_max_attempts must be at least 1")
	}

	if c.HTTP.WriteRequestsPerMinute < 1 {
		return fmt.Errorf("http write_requests_per_minute must be at least 1")
	}
	for _, origin := range c.HTTP.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("http allowed_origins must not contain empty entries")
		}
	}

	return nil
}

// Location returns the configured league timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EmailEnabled reports whether SES credentials and a sender are configured.
func (c *Config) EmailEnabled() bool {
	return c.Email.AccessKeyID != "" && c.Email.SecretAccessKey != "" &&
		c.Email.Region != "" && c.Email.Sender != ""
}
