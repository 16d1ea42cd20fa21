package browse

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"materi/internal/app/bus"
	"materi/internal/app/render"
	"materi/internal/app/ui/components"
	"materi/internal/app/view"
	"materi/internal/config/logger"
)

// Model represents the Bubble Tea model for browsing materials in a terminal
type Model struct {
	ctx        context.Context
	controller *view.Controller
	msgChan    <-chan bus.Message

	state struct {
		page    render.PageModel
		notices []view.Notice
		ready   bool
		busy    bool
		err     error
		quit    bool
	}

	ui struct {
		height      int
		width       int
		keys        KeyMap
		tickCounter int
		showTips    bool
		tipOffset   int
		help        help.Model
		detail      viewport.Model
		meter       *components.Meter
		loader      *Loader
	}

	log logger.Logger
}

// NewModel creates a model driving a mounted controller
func NewModel(ctx context.Context, controller *view.Controller, b bus.Bus, log logger.Logger) Model {
	log = log.WithComponent("UI")

	m := Model{
		ctx:        ctx,
		controller: controller,
		msgChan:    b.Subscribe(ctx),
		log:        log,
	}

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.detail = viewport.New(components.DefaultViewportWidth, components.MinPanelHeight)
	m.ui.meter = components.NewMeter(components.MeterWidth)
	m.ui.loader = NewLoader()
	m.ui.showTips = true
	//nolint:gosec // weak random is fine for tip rotation
	m.ui.tipOffset = rand.IntN(len(components.Tips))

	m.refresh()
	m.ui.meter.Jump()

	log.Debug().Msg("Created model and subscribed to events")

	return m
}

// Init starts the tick loop and event subscription
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		waitForMsgCmd(m.msgChan),
		m.ui.loader.Model.Tick,
	)
}

// refresh pulls the page model and live banners from the controller
func (m *Model) refresh() {
	page, err := m.controller.Model(m.ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("Failed to build page model")
		m.state.err = err

		return
	}

	m.state.page = page
	m.state.notices = m.controller.Notifications()
	m.ui.meter.Set(page.Completed, page.Total)
	m.ui.detail.SetContent(m.renderDetail())
}

// weekAfter returns the tab delta steps away from the active week, wrapping around
func (m Model) weekAfter(delta int) (int, bool) {
	tabs := m.state.page.Tabs
	if len(tabs) == 0 {
		return 0, false
	}

	current := -1

	for i, tab := range tabs {
		if tab.Active {
			current = i
			break
		}
	}

	if current < 0 {
		return tabs[0].Week, true
	}

	next := ((current+delta)%len(tabs) + len(tabs)) % len(tabs)
	if next == current {
		return 0, false
	}

	return tabs[next].Week, true
}
