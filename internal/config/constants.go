package config

import "time"

// app constants
const (
	AppName        = "materi"
	AppDescription = "Browse asynchronous course materials week by week and track completion"
	FileName       = "materi.yaml"
	EnvFile        = ".env"
	EnvPrefix      = "MATERI"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"
)

// catalog constants
const (
	DefaultCatalogDir  = "content"
	DefaultInitialWeek = 1
	DefaultDebounce    = 300 * time.Millisecond
)

// progress constants
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	DefaultProgressUser    = "default"
	DefaultProgressTimeout = 5 * time.Second
)

// server constants
const (
	DefaultAddress         = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultReloadWorkers   = 4

	SessionCookie = "materi_session"
)

// notification constants
const (
	DefaultNotificationLifetime = 3 * time.Second
)

// DefaultInclude lists the catalog file patterns picked up when none are configured
var DefaultInclude = []string{"*.yaml", "*.yml", "*.toml"}

// DefaultIgnore lists the catalog file patterns skipped when none are configured
var DefaultIgnore = []string{"_*", ".*"}
