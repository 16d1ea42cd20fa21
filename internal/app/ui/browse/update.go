package browse

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"materi/internal/app/bus"
	"materi/internal/app/ui/components"
	"materi/internal/app/view"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

const completeOperation = "complete"

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// actionDoneMsg reports a finished dispatch
type actionDoneMsg struct {
	action view.Action
	err    error
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		panelHeight := msg.Height - components.PanelHeightPadding
		if panelHeight < components.MinPanelHeight {
			panelHeight = components.MinPanelHeight
		}

		detailWidth := msg.Width - components.CourseListWidth - components.PanelInnerPadding
		if detailWidth < components.CourseTitleMinWidth {
			detailWidth = components.CourseTitleMinWidth
		}

		m.ui.detail.Width = detailWidth
		m.ui.detail.Height = panelHeight - components.PanelBorderHeight
		m.state.ready = true
		m.ui.detail.SetContent(m.renderDetail())

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.ui.loader.Model, cmd = m.ui.loader.Model.Update(msg)

		return m, cmd

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.ui.meter.Update()
		m.state.notices = m.controller.Notifications()

		return m, tickCmd()

	case actionDoneMsg:
		return m.handleActionDone(msg), nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("TUI: Event channel closed, quitting")
		m.ui.loader.StopAll()

		return m.quit()
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		return m.quit()

	case key.Matches(msg, keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips
		return m, nil
	}

	if m.state.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.NextWeek):
		return m.switchWeek(1)
	case key.Matches(msg, keys.PrevWeek):
		return m.switchWeek(-1)
	case key.Matches(msg, keys.Up):
		return m.dispatch(view.ActionCoursePrev, "")
	case key.Matches(msg, keys.Down):
		return m.dispatch(view.ActionCourseNext, "")
	case key.Matches(msg, keys.PrevVideo):
		return m.dispatch(view.ActionVideoPrev, "")
	case key.Matches(msg, keys.NextVideo):
		return m.dispatch(view.ActionVideoNext, "")
	case key.Matches(msg, keys.Complete):
		m.ui.loader.Start(completeOperation, "menandai course…")
		return m.dispatch(view.ActionMarkComplete, "")
	}

	var cmd tea.Cmd

	m.ui.detail, cmd = m.ui.detail.Update(msg)

	return m, cmd
}

func (m Model) switchWeek(delta int) (tea.Model, tea.Cmd) {
	week, ok := m.weekAfter(delta)
	if !ok {
		return m, nil
	}

	return m.dispatch(view.ActionWeekTab, strconv.Itoa(week))
}

func (m Model) dispatch(action view.Action, arg string) (tea.Model, tea.Cmd) {
	m.state.busy = true

	return m, dispatchCmd(m.ctx, m.controller, action, arg)
}

func (m Model) handleActionDone(msg actionDoneMsg) Model {
	m.state.busy = false
	m.state.err = msg.err
	m.ui.loader.Stop(completeOperation)

	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msgf("Action '%s' failed", msg.action)
	}

	m.refresh()

	return m
}

// handleMessage reacts to bus events and keeps listening
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventCatalogReloaded:
		if err := m.controller.Reload(m.ctx); err != nil {
			m.log.Warn().Err(err).Msg("Failed to reload view after catalog change")
		}

		m.refresh()
	case bus.EventNotification, bus.EventCourseCompleted, bus.EventProgressFallback:
		m.state.notices = m.controller.Notifications()
	}

	return m, waitForMsgCmd(m.msgChan)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.state.quit = true
	m.controller.Dispose()

	return m, tea.Quit
}

func dispatchCmd(ctx context.Context, controller *view.Controller, action view.Action, arg string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: controller.Dispatch(ctx, action, arg)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForMsgCmd(ch <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}
