package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"materi/internal/app/cli"
	"materi/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli        cli.CLI
	shutdowner fx.Shutdowner
	log        logger.Logger
	done       chan struct{}
	cancel     context.CancelFunc
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, shutdowner fx.Shutdowner, log logger.Logger) *App {
	return &App{
		cli:        cli,
		shutdowner: shutdowner,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Run executes the command line and shuts the fx app down with its exit code
func (a *App) Run(ctx context.Context) {
	exitCode := 0
	if err := a.execute(ctx, os.Args[1:]); err != nil {
		exitCode = 1
	}

	close(a.done)

	if err := a.shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
		a.log.Error().Err(err).Msg("Failed to shut down")
	}
}

// execute runs the CLI with args, extracted for testing
func (a *App) execute(ctx context.Context, args []string) error {
	if err := a.cli.Run(ctx, args); err != nil {
		a.log.Error().Err(err).Msg("Application error")
		return err
	}

	return nil
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runCtx, cancel := context.WithCancel(context.Background())
			app.cancel = cancel

			go app.Run(runCtx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if app.cancel != nil {
				app.cancel()
			}

			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
