package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"materi/internal/app/errors"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{name: "No args browse", args: []string{}, expected: Options{Type: CommandBrowse}},
		{name: "Browse command", args: []string{"browse"}, expected: Options{Type: CommandBrowse}},
		{name: "Browse alias", args: []string{"b"}, expected: Options{Type: CommandBrowse}},
		{name: "Serve command", args: []string{"serve"}, expected: Options{Type: CommandServe}},
		{name: "Serve with address", args: []string{"serve", "--addr", ":9000"}, expected: Options{Type: CommandServe, Address: ":9000"}},
		{name: "Serve alias short flag", args: []string{"s", "-a", "127.0.0.1:0"}, expected: Options{Type: CommandServe, Address: "127.0.0.1:0"}},
		{name: "Render command", args: []string{"render"}, expected: Options{Type: CommandRender}},
		{name: "Render week", args: []string{"render", "--week", "2"}, expected: Options{Type: CommandRender, Week: 2}},
		{name: "Render alias", args: []string{"r", "-w", "3"}, expected: Options{Type: CommandRender, Week: 3}},
		{name: "Render fragment", args: []string{"render", "--fragment"}, expected: Options{Type: CommandRender, Fragment: true}},
		{name: "Render fragment short flag", args: []string{"r", "-f", "-w", "2"}, expected: Options{Type: CommandRender, Week: 2, Fragment: true}},
		{name: "Complete command", args: []string{"complete", "1", "Pengenalan Go"}, expected: Options{Type: CommandComplete, Week: 1, Title: "Pengenalan Go"}},
		{name: "Complete alias", args: []string{"c", "2", "Konkurensi"}, expected: Options{Type: CommandComplete, Week: 2, Title: "Konkurensi"}},
		{name: "Migrate command", args: []string{"migrate"}, expected: Options{Type: CommandMigrate}},
		{name: "Migrate down", args: []string{"migrate", "--down"}, expected: Options{Type: CommandMigrate, Down: true}},
		{name: "Version command", args: []string{"version"}, expected: Options{Type: CommandVersion}},
		{name: "Version long flag", args: []string{"--version"}, expected: Options{Type: CommandVersion}},
		{name: "Version short flag", args: []string{"-v"}, expected: Options{Type: CommandVersion}},
		{name: "Help command", args: []string{"help"}, expected: Options{Type: CommandHelp}},
		{name: "Help flag", args: []string{"--help"}, expected: Options{Type: CommandHelp}},
		{name: "Help short flag", args: []string{"-h"}, expected: Options{Type: CommandHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *opts)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{name: "Unknown command", args: []string{"deploy"}},
		{name: "Unknown flag", args: []string{"--bogus"}},
		{name: "Complete missing title", args: []string{"complete", "1"}},
		{name: "Complete non numeric week", args: []string{"complete", "satu", "A"}, target: errors.ErrInvalidArgument},
		{name: "Complete zero week", args: []string{"complete", "0", "A"}, target: errors.ErrInvalidArgument},
		{name: "Render negative week", args: []string{"render", "--week", "-1"}, target: errors.ErrInvalidArgument},
		{name: "Serve extra args", args: []string{"serve", "extra"}},
		{name: "Migrate extra args", args: []string{"migrate", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			require.Error(t, err)
			assert.Nil(t, opts)

			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
