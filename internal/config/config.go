package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"materi/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Catalog       CatalogConfig       `yaml:"catalog"`
	Progress      ProgressConfig      `yaml:"progress"`
	Server        ServerConfig        `yaml:"server"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Report        ReportConfig        `yaml:"report"`
	Version       int                 `yaml:"version"`
}

// CatalogConfig describes where week files live and how they are reloaded
type CatalogConfig struct {
	Dir         string        `yaml:"dir"`
	Include     []string      `yaml:"include"`
	Ignore      []string      `yaml:"ignore"`
	Watch       bool          `yaml:"watch"`
	Debounce    time.Duration `yaml:"debounce"`
	InitialWeek int           `yaml:"initial_week" mapstructure:"initial_week"`
}

// ProgressConfig selects and configures the progress store
type ProgressConfig struct {
	Driver  string        `yaml:"driver"`
	DSN     string        `yaml:"dsn"`
	User    string        `yaml:"user"`
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig configures the HTTP host
type ServerConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	ReloadWorkers   int           `yaml:"reload_workers" mapstructure:"reload_workers"`
}

// NotificationsConfig configures the banner surface
type NotificationsConfig struct {
	Lifetime time.Duration `yaml:"lifetime"`
}

// LoggingConfig configures the application logger
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig configures error reporting
type ReportConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Catalog.Dir = DefaultCatalogDir
	cfg.Catalog.Include = append([]string(nil), DefaultInclude...)
	cfg.Catalog.Ignore = append([]string(nil), DefaultIgnore...)
	cfg.Catalog.Watch = true
	cfg.Catalog.Debounce = DefaultDebounce
	cfg.Catalog.InitialWeek = DefaultInitialWeek

	cfg.Progress.Driver = DriverMemory
	cfg.Progress.User = DefaultProgressUser
	cfg.Progress.Timeout = DefaultProgressTimeout

	cfg.Server.Address = DefaultAddress
	cfg.Server.ReadTimeout = DefaultReadTimeout
	cfg.Server.WriteTimeout = DefaultWriteTimeout
	cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	cfg.Server.ReloadWorkers = DefaultReloadWorkers

	cfg.Notifications.Lifetime = DefaultNotificationLifetime

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load loads the configuration from materi.yaml in the working directory
func Load() (*Config, error) {
	return LoadFrom(FileName)
}

// LoadFrom loads the configuration from the given file, then applies .env and MATERI_* overrides
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v, cfg)

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()

		if err := v.ReadConfig(file); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// registerDefaults makes every key known to viper so environment overrides apply
func registerDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.dir", cfg.Catalog.Dir)
	v.SetDefault("catalog.include", cfg.Catalog.Include)
	v.SetDefault("catalog.ignore", cfg.Catalog.Ignore)
	v.SetDefault("catalog.watch", cfg.Catalog.Watch)
	v.SetDefault("catalog.debounce", cfg.Catalog.Debounce)
	v.SetDefault("catalog.initial_week", cfg.Catalog.InitialWeek)

	v.SetDefault("progress.driver", cfg.Progress.Driver)
	v.SetDefault("progress.dsn", cfg.Progress.DSN)
	v.SetDefault("progress.user", cfg.Progress.User)
	v.SetDefault("progress.timeout", cfg.Progress.Timeout)

	v.SetDefault("server.address", cfg.Server.Address)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("server.reload_workers", cfg.Server.ReloadWorkers)

	v.SetDefault("notifications.lifetime", cfg.Notifications.Lifetime)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	v.SetDefault("report.dsn", cfg.Report.DSN)
	v.SetDefault("report.environment", cfg.Report.Environment)

	v.SetDefault("version", cfg.Version)
}

// ApplyDefaults fills fields left empty by the config file
func (c *Config) ApplyDefaults() {
	if c.Catalog.Dir == "" {
		c.Catalog.Dir = DefaultCatalogDir
	}

	if len(c.Catalog.Include) == 0 {
		c.Catalog.Include = append([]string(nil), DefaultInclude...)
	}

	if c.Catalog.Debounce == 0 {
		c.Catalog.Debounce = DefaultDebounce
	}

	c.Progress.Driver = strings.ToLower(strings.TrimSpace(c.Progress.Driver))
	if c.Progress.Driver == "" {
		c.Progress.Driver = DriverMemory
	}

	if c.Progress.User == "" {
		c.Progress.User = DefaultProgressUser
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateProgress(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if c.Notifications.Lifetime <= 0 {
		return errors.ErrInvalidLifetime
	}

	return nil
}

// validateCatalog validates catalog settings
func (c *Config) validateCatalog() error {
	if c.Catalog.InitialWeek <= 0 {
		return errors.ErrInvalidInitialWeek
	}

	if c.Catalog.Debounce < 0 {
		return errors.ErrInvalidTimeout
	}

	return nil
}

// validateProgress validates the progress store settings
func (c *Config) validateProgress() error {
	switch c.Progress.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Progress.DSN == "" {
			return errors.ErrProgressDSNRequired
		}
	default:
		return fmt.Errorf("%w: '%s' (must be 'memory' or 'sqlite')", errors.ErrInvalidProgressDriver, c.Progress.Driver)
	}

	if strings.TrimSpace(c.Progress.User) == "" {
		return errors.ErrInvalidProgressUser
	}

	if c.Progress.Timeout <= 0 {
		return errors.ErrInvalidTimeout
	}

	return nil
}

// validateServer validates the HTTP host settings
func (c *Config) validateServer() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.ErrServerAddressRequired
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return errors.ErrInvalidTimeout
	}

	if c.Server.ReloadWorkers <= 0 {
		return errors.ErrInvalidWorkers
	}

	return nil
}
