package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"materi/internal/app/errors"
	"materi/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandBrowse CommandType = iota
	CommandServe
	CommandRender
	CommandComplete
	CommandMigrate
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	Week     int
	Title    string
	Address  string
	Fragment bool
	Down     bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandBrowse}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildBrowseCommand(result),
		buildServeCommand(result),
		buildRenderCommand(result),
		buildCompleteCommand(result),
		buildMigrateCommand(result),
		buildVersionCommand(result),
	)

	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandBrowse
		},
	}

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildBrowseCommand creates the browse subcommand
func buildBrowseCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Browse the materials in the terminal",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandBrowse
		},
	}
}

// buildServeCommand creates the serve subcommand
func buildServeCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the materials page over HTTP",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandServe
		},
	}

	cmd.Flags().StringVarP(&result.Address, "addr", "a", "", "Listen address, overrides server.address")

	return cmd
}

// buildRenderCommand creates the render subcommand
func buildRenderCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"r"},
		Short:   "Print the materials page of a week as HTML",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if result.Week < 0 {
				return fmt.Errorf("%w: week %d", errors.ErrInvalidArgument, result.Week)
			}

			result.Type = CommandRender

			return nil
		},
	}

	cmd.Flags().IntVarP(&result.Week, "week", "w", 0, "Week to render, defaults to catalog.initial_week")
	cmd.Flags().BoolVarP(&result.Fragment, "fragment", "f", false, "Print only the contents of the page container")

	return cmd
}

// buildCompleteCommand creates the complete subcommand
func buildCompleteCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <week> <course title>",
		Aliases: []string{"c"},
		Short:   "Mark a course as completed",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil || week <= 0 {
				return fmt.Errorf("%w: week '%s'", errors.ErrInvalidArgument, args[0])
			}

			result.Type = CommandComplete
			result.Week = week
			result.Title = args[1]

			return nil
		},
	}
}

// buildMigrateCommand creates the migrate subcommand
func buildMigrateCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert progress database migrations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandMigrate
		},
	}

	cmd.Flags().BoolVar(&result.Down, "down", false, "Revert the latest migration")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
