package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/html"

	"materi/internal/app/bus"
	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/progress"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/config/logger"
)

func scenarioCatalog() catalog.WeekCatalog {
	return catalog.WeekCatalog{
		1: {ID: 1, Title: "Pekan 1: Pengenalan", Materials: []catalog.Course{
			{
				Title:    "A",
				Videos:   []catalog.Video{{Title: "A1", URL: "https://www.youtube.com/embed/a1"}},
				Download: catalog.Download{Materi: catalog.Placeholder, Notulensi: catalog.Placeholder},
			},
			{
				Title: "B",
				Videos: []catalog.Video{
					{Title: "B1", URL: "https://www.youtube.com/embed/b1"},
					{Title: "B2", URL: "https://www.youtube.com/embed/b2"},
				},
				Download: catalog.Download{Materi: catalog.Placeholder, Notulensi: catalog.Placeholder},
			},
		}},
		2: {ID: 2, Title: "Pekan 2"},
	}
}

func quietLogger(ctrl *gomock.Controller) logger.Logger {
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithView(gomock.Any()).Return(log).AnyTimes()

	return log
}

type fixture struct {
	controller *Controller
	doc        *dom.Document
	reporter   *report.MockReporter
}

type fixtureOptions struct {
	catalog  catalog.WeekCatalog
	store    progress.Store
	week     int
	lifetime time.Duration
	bus      bus.Bus
}

func newFixture(t *testing.T, ctrl *gomock.Controller, o fixtureOptions) *fixture {
	t.Helper()

	if o.catalog == nil {
		o.catalog = scenarioCatalog()
	}

	if o.store == nil {
		o.store = progress.NewMemoryStore()
	}

	if o.week == 0 {
		o.week = 1
	}

	if o.lifetime == 0 {
		o.lifetime = time.Minute
	}

	if o.bus == nil {
		o.bus = bus.NoOp()
	}

	renderer, err := render.NewRenderer(render.ActionPath)
	require.NoError(t, err)

	reporter := report.NewMockReporter(ctrl)

	f := NewFactory(
		Options{InitialWeek: o.week, Timeout: time.Second, Lifetime: o.lifetime},
		catalog.Static(o.catalog),
		o.store,
		renderer,
		o.bus,
		reporter,
		quietLogger(ctrl),
	)

	doc := dom.New(render.PageTitle)

	return &fixture{controller: f.New("test-view", doc), doc: doc, reporter: reporter}
}

// find returns the first element matching in the fixture document
func (f *fixture) find(match func(*html.Node) bool) *html.Node {
	var found *html.Node

	f.doc.Update(func(root *html.Node) {
		found = dom.Find(root, match)
	})

	return found
}

func (f *fixture) findAll(match func(*html.Node) bool) []*html.Node {
	var found []*html.Node

	f.doc.Update(func(root *html.Node) {
		found = dom.FindAll(root, match)
	})

	return found
}

func (f *fixture) text(match func(*html.Node) bool) string {
	n := f.find(match)
	if n == nil {
		return ""
	}

	return dom.Text(n)
}

func (f *fixture) disabled(class string) bool {
	n := f.find(dom.ByClass(class))
	if n == nil {
		return false
	}

	_, ok := dom.Attr(n, "disabled")

	return ok
}
