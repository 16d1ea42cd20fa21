package logger

import (
	"io"

	"go.uber.org/fx"

	"materi/internal/config"
)

// Module provides a logger writing to output, a nil output keeps the configured format's writer
func Module(output io.Writer) fx.Option {
	return fx.Provide(func(cfg *config.Config) Logger {
		return NewLoggerWithOutput(cfg, output)
	})
}
