//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/errors"
	"materi/internal/app/progress"
	"materi/internal/app/server"
	"materi/internal/app/ui/browse"
	"materi/internal/app/view"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// renderViewID names the controller used for one-shot page renders
const renderViewID = "render"

// CLI defines the interface for cli operations
type CLI interface {
	Run(ctx context.Context, args []string) error
}

// Params contains dependencies for the cli
type Params struct {
	fx.In

	Config   *config.Config
	Provider catalog.Provider
	Watcher  catalog.Watcher
	Store    progress.Store
	Factory  *view.Factory
	Server   server.Server
	UI       browse.UI
	Logger   logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	cfg        *config.Config
	provider   catalog.Provider
	watcher    catalog.Watcher
	store      progress.Store
	factory    *view.Factory
	server     server.Server
	ui         browse.UI
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(params Params) CLI {
	return &cli{
		cfg:        params.Config,
		provider:   params.Provider,
		watcher:    params.Watcher,
		store:      params.Store,
		factory:    params.Factory,
		server:     params.Server,
		ui:         params.UI,
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: func() bool { return term.IsTerminal(os.Stdout.Fd()) },
		log:        params.Logger,
	}
}

// Run parses args and executes the selected command, failures are reported on stderr
func (c *cli) Run(ctx context.Context, args []string) error {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintf(c.errOut, "%s %v\n", errorText.Render("Error:"), err)
		fmt.Fprintf(c.errOut, "Use '%s' for more information.\n", commandName.Render(config.AppName+" help"))

		return err
	}

	if err := c.execute(ctx, opts); err != nil {
		fmt.Fprintf(c.errOut, "%s %v\n", errorText.Render("Error:"), err)
		return err
	}

	return nil
}

func (c *cli) execute(ctx context.Context, opts *Options) error {
	switch opts.Type {
	case CommandBrowse:
		return c.handleBrowse(ctx)
	case CommandServe:
		return c.handleServe(ctx, opts.Address)
	case CommandRender:
		return c.handleRender(ctx, opts.Week, opts.Fragment)
	case CommandComplete:
		return c.handleComplete(ctx, opts.Week, opts.Title)
	case CommandMigrate:
		return c.handleMigrate(ctx, opts.Down)
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	default:
		return errors.ErrUnknownCommand
	}
}

// handleServe loads the catalog and serves the page, watching the catalog when enabled
func (c *cli) handleServe(ctx context.Context, addr string) error {
	if _, err := c.provider.Reload(); err != nil {
		return err
	}

	if addr == "" {
		addr = c.cfg.Server.Address
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	c.log.Info().Msgf("Serving materials on http://%s", ln.Addr())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.server.Serve(ctx, ln)
	})

	if c.cfg.Catalog.Watch {
		g.Go(func() error {
			return c.watcher.Start(ctx)
		})
	}

	return g.Wait()
}

// handleBrowse runs the terminal browser until the user quits
func (c *cli) handleBrowse(ctx context.Context) error {
	if !c.isTerminal() {
		return errors.ErrNotATerminal
	}

	if _, err := c.provider.Reload(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if c.cfg.Catalog.Watch {
		go func() {
			if err := c.watcher.Start(ctx); err != nil {
				c.log.Warn().Err(err).Msg("Catalog watcher stopped")
			}
		}()
	}

	p, err := c.ui(ctx)
	if err != nil {
		return err
	}

	if _, err := p.Run(); err != nil {
		c.log.Error().Err(err).Msg("Terminal UI failed")
		return err
	}

	return nil
}

// handleRender prints the page of a week as a standalone HTML document, or only the
// contents of the page container when fragment is set
func (c *cli) handleRender(ctx context.Context, week int, fragment bool) error {
	cat, err := c.provider.Reload()
	if err != nil {
		return err
	}

	if _, ok := cat.Lookup(week); week > 0 && !ok {
		return fmt.Errorf("%w: %d", errors.ErrWeekNotFound, week)
	}

	shell, err := c.factory.Renderer().Shell()
	if err != nil {
		return err
	}

	doc, err := dom.Parse(shell)
	if err != nil {
		return err
	}

	controller := c.factory.New(renderViewID, doc)
	if err := controller.Mount(ctx); err != nil {
		return err
	}
	defer controller.Dispose()

	if week > 0 && week != controller.State().Week {
		if err := controller.Dispatch(ctx, view.ActionWeekTab, strconv.Itoa(week)); err != nil {
			return err
		}
	}

	if !fragment {
		fmt.Fprintln(c.out, doc.HTML())
		return nil
	}

	markup, ok := doc.InnerHTML(dom.ContentID)
	if !ok {
		return fmt.Errorf("%w: #%s", errors.ErrContainerNotFound, dom.ContentID)
	}

	fmt.Fprintln(c.out, markup)

	return nil
}

// handleComplete records a completion and prints the week summary
func (c *cli) handleComplete(ctx context.Context, week int, title string) error {
	cat, err := c.provider.Reload()
	if err != nil {
		return err
	}

	w, ok := cat.Lookup(week)
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrWeekNotFound, week)
	}

	found := false

	for _, t := range w.Titles() {
		if t == title {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("%w: '%s' in week %d", errors.ErrCourseNotFound, title, week)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Progress.Timeout)
	defer cancel()

	if err := c.store.RecordCourseCompletion(ctx, week, title); err != nil {
		return err
	}

	c.log.Debug().Msgf("Recorded completion of '%s' in week %d", title, week)

	done := 0

	if p, err := c.store.GetCourseProgress(ctx); err == nil {
		done = p.Completed(week, w.Titles())
	}

	fmt.Fprintf(c.out, "%s %s\n", successText.Render("Selesai:"), title)
	fmt.Fprintln(c.out, mutedText.Render(fmt.Sprintf("%s: %d/%d selesai", w.Title, done, len(w.Materials))))

	return nil
}

// handleMigrate applies pending progress migrations, or reverts the latest one when down is set
func (c *cli) handleMigrate(ctx context.Context, down bool) error {
	if c.cfg.Progress.Driver != config.DriverSQLite {
		return fmt.Errorf("%w: '%s' has no schema to migrate", errors.ErrInvalidProgressDriver, c.cfg.Progress.Driver)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Progress.Timeout)
	defer cancel()

	version, err := progress.MigrateDatabase(ctx, c.cfg.Progress.DSN, down)
	if err != nil {
		return err
	}

	c.log.Info().Msgf("Progress schema at version %d", version)

	verb := "Migrated:"
	if down {
		verb = "Rolled back:"
	}

	fmt.Fprintf(c.out, "%s %s\n", successText.Render(verb), mutedText.Render(fmt.Sprintf("schema version %d", version)))

	return nil
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())

	return nil
}

// handleHelp displays help information
func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())

	return nil
}
