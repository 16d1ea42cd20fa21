package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"materi/internal/app/bus"
	"materi/internal/app/dom"
	"materi/internal/app/render"
	"materi/internal/app/view"
	"materi/internal/config/logger"
)

// ViewID names the single controller driven by the terminal UI
const ViewID = "terminal"

// UI creates a Bubble Tea program for the materials browser
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Bus     bus.Bus
	Factory *view.Factory
	Logger  logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		controller := params.Factory.New(ViewID, dom.New(render.PageTitle))

		if err := controller.Mount(ctx); err != nil {
			return nil, err
		}

		model := NewModel(ctx, controller, params.Bus, params.Logger)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
