package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"materi/internal/app"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := createApp(cfg, isInteractive(os.Args[1:]))
	application.Run()
}

// isInteractive reports whether args start the terminal browser, which owns the screen
func isInteractive(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "browse", "b":
		return true
	default:
		return false
	}
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, interactive bool) *fx.App {
	var logOutput io.Writer
	if interactive {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		logger.Module(logOutput),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
