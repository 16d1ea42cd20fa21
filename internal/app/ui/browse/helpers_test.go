package browse

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"materi/internal/app/bus"
	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/progress"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/app/view"
	"materi/internal/config/logger"
)

func testCatalog() catalog.WeekCatalog {
	links := catalog.Download{Materi: "https://example.com/materi.pdf", Notulensi: catalog.Placeholder}

	return catalog.WeekCatalog{
		1: {ID: 1, Title: "Pekan 1: Pengenalan", Materials: []catalog.Course{
			{Title: "A", Description: "Dasar", Videos: []catalog.Video{{Title: "A1", URL: "https://example.com/a1"}}, Download: links},
			{Title: "B", Videos: []catalog.Video{{Title: "B1", URL: "https://example.com/b1"}, {Title: "B2", URL: "https://example.com/b2"}}, Download: links},
		}},
		2: {ID: 2, Title: "Pekan 2: Lanjutan", Materials: []catalog.Course{
			{Title: "C", Download: links},
		}},
	}
}

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithView(gomock.Any()).Return(log).AnyTimes()

	return log
}

func newTestModel(t *testing.T, ctrl *gomock.Controller, cat catalog.WeekCatalog, store progress.Store, b bus.Bus) Model {
	t.Helper()

	renderer, err := render.NewRenderer(render.ActionPath)
	require.NoError(t, err)

	log := newTestLogger(ctrl)
	factory := view.NewFactory(
		view.Options{InitialWeek: 1, Timeout: time.Second, Lifetime: time.Minute},
		catalog.Static(cat),
		store,
		renderer,
		b,
		report.NoOp(),
		log,
	)

	controller := factory.New(ViewID, dom.New(render.PageTitle))
	require.NoError(t, controller.Mount(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return NewModel(ctx, controller, b, log)
}

// press sends a key and runs the resulting dispatch to completion
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()

	next, cmd := m.Update(msg)
	m = next.(Model)

	if cmd == nil {
		return m
	}

	done, ok := cmd().(actionDoneMsg)
	if !ok {
		return m
	}

	next, _ = m.Update(done)

	return next.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}
