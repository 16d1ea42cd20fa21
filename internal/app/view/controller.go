package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"
	"golang.org/x/net/html"

	"materi/internal/app/bus"
	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/errors"
	"materi/internal/app/navigation"
	"materi/internal/app/progress"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/config/logger"
)

// Messages shown to the learner
const (
	completedMessage = "\"%s\" berhasil ditandai selesai!"
	failedMessage    = "Gagal menandai course: %s"
)

// Options tunes a controller
type Options struct {
	InitialWeek int
	Timeout     time.Duration
	Lifetime    time.Duration
}

// Controller owns the navigation state of one materials page and keeps its document in sync
type Controller struct {
	id        string
	opts      Options
	provider  catalog.Provider
	store     progress.Store
	renderer  *render.Renderer
	doc       *dom.Document
	notifier  *Notifier
	nav       navigation.Navigator
	actions   map[Action]route
	lifecycle *fsm.FSM
	bus       bus.Bus
	reporter  report.Reporter
	log       logger.Logger
	mu        sync.Mutex
}

// Mount installs the action table, resets the selection and renders the full page, repeated calls are no-ops
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.lifecycle.Current() {
	case Mounted, Busy:
		return nil
	case Disposed:
		return errors.ErrNotMounted
	}

	if err := c.lifecycle.Event(ctx, Mount); err != nil {
		return err
	}

	c.publish(bus.EventViewMounted, bus.ViewEvent{View: c.id})

	return c.render(ctx)
}

// Dispose stops the controller, later dispatches are ignored
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lifecycle.Is(Disposed) {
		return
	}

	if err := c.lifecycle.Event(context.Background(), Dispose); err != nil {
		c.log.Warn().Err(err).Msgf("Failed to dispose view '%s'", c.id)
	}
}

// Dispatch runs action with its argument and re-renders the affected fragment
func (c *Controller) Dispatch(ctx context.Context, action Action, arg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lifecycle.Is(Mounted) {
		c.log.Debug().Msgf("Ignoring '%s' on view '%s' in state %s", action, c.id, c.lifecycle.Current())
		return errors.ErrNotMounted
	}

	r, ok := c.actions[action]
	if !ok {
		c.log.Warn().Msgf("Ignoring unknown action '%s'", action)
		return fmt.Errorf("%w: %s", errors.ErrUnknownAction, action)
	}

	if err := c.lifecycle.Event(context.Background(), Begin); err != nil {
		return err
	}

	defer func() {
		if err := c.lifecycle.Event(context.Background(), End); err != nil {
			c.log.Warn().Err(err).Msgf("View '%s' did not return to %s", c.id, Mounted)
		}
	}()

	moved, err := r.run(ctx, arg)
	if err != nil {
		c.log.Warn().Err(err).Msgf("Ignoring '%s' with argument '%s'", action, arg)
		return err
	}

	if !moved {
		return nil
	}

	switch r.scope {
	case ScopePage:
		return c.render(ctx)
	case ScopePane:
		return c.refreshCourseDetailPane(ctx)
	}

	return nil
}

// Render re-renders the full page into the content container
func (c *Controller) Render(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lifecycle.Is(Mounted) {
		return errors.ErrNotMounted
	}

	return c.render(ctx)
}

// RefreshCourseDetailPane re-renders only the course detail pane and resynchronises the course list
func (c *Controller) RefreshCourseDetailPane(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lifecycle.Is(Mounted) {
		return errors.ErrNotMounted
	}

	return c.refreshCourseDetailPane(ctx)
}

// MarkAsComplete records the active course as completed and reports the outcome as a notification
func (c *Controller) MarkAsComplete(ctx context.Context) error {
	return c.Dispatch(ctx, ActionMarkComplete, "")
}

// Reload pulls the selection back inside a changed catalog and re-renders the page
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lifecycle.Is(Mounted) {
		return errors.ErrNotMounted
	}

	if c.nav.Clamp() {
		c.log.Info().Msgf("Selection of view '%s' moved to %s after catalog reload", c.id, c.nav.State())
	}

	return c.render(ctx)
}

// Model builds the page model for hosts that draw the page themselves
func (c *Controller) Model(ctx context.Context) (render.PageModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nav == nil || c.lifecycle.Is(Disposed) {
		return render.PageModel{}, errors.ErrNotMounted
	}

	return render.Page(c.provider.Catalog(), c.loadProgress(ctx), c.nav.State()), nil
}

// State returns the current selection
func (c *Controller) State() navigation.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nav == nil {
		return navigation.State{Week: c.opts.InitialWeek}
	}

	return c.nav.State()
}

// ID returns the view identifier
func (c *Controller) ID() string {
	return c.id
}

// Lifecycle returns the current lifecycle state
func (c *Controller) Lifecycle() string {
	return c.lifecycle.Current()
}

// Document returns the host document the controller renders into
func (c *Controller) Document() *dom.Document {
	return c.doc
}

// PaneHTML renders the course detail column, the synchronised page chrome and the live banners
func (c *Controller) PaneHTML() string {
	return c.doc.OuterHTML(isPaneFragment)
}

// Notifications returns the banners still on screen
func (c *Controller) Notifications() []Notice {
	return c.notifier.Active()
}

// install runs once, on the first mount
func (c *Controller) install() {
	c.nav = navigation.NewNavigator(c.provider, c.opts.InitialWeek)
	c.actions = c.routes()

	c.log.Debug().Msgf("View '%s' mounted at %s", c.id, c.nav.State())
}

func (c *Controller) teardown() {
	c.notifier.Close()
	c.publish(bus.EventViewDisposed, bus.ViewEvent{View: c.id})
}

func (c *Controller) render(ctx context.Context) error {
	if !c.doc.Exists(dom.ContentID) {
		c.log.Debug().Msgf("View '%s' has no #%s container, skipping render", c.id, dom.ContentID)
		return nil
	}

	markup, err := c.renderer.RenderPage(c.provider.Catalog(), c.loadProgress(ctx), c.nav.State())
	if err != nil {
		return err
	}

	_, err = c.doc.ReplaceInner(dom.ContentID, markup)

	return err
}

func (c *Controller) refreshCourseDetailPane(ctx context.Context) error {
	p := c.loadProgress(ctx)
	cat := c.provider.Catalog()
	st := c.nav.State()

	var (
		markup string
		err    error
	)

	week, ok := cat.Lookup(st.Week)
	course, hasCourse := week.Course(st.Course)

	if ok && hasCourse {
		markup, err = c.renderer.RenderCourseDetail(course, p.Week(st.Week), st, len(week.Materials))
	} else {
		markup, err = c.renderer.RenderEmptyDetail()
	}

	if err != nil {
		return err
	}

	found, err := c.doc.ReplaceDetail(markup)
	if err != nil {
		return err
	}

	if !found {
		c.log.Debug().Msgf("View '%s' has no detail container, skipping pane refresh", c.id)
		return nil
	}

	c.doc.Update(func(root *html.Node) {
		syncCourseList(root, cat, p, st)
	})

	return nil
}

func (c *Controller) markAsComplete(ctx context.Context) {
	st := c.nav.State()

	week, _ := c.provider.Catalog().Lookup(st.Week)

	course, ok := week.Course(st.Course)
	if !ok {
		c.notifier.Show(KindInfo, render.NoCourse)
		return
	}

	tctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	if err := c.store.RecordCourseCompletion(tctx, st.Week, course.Title); err != nil {
		c.log.Error().Err(err).Msgf("Failed to mark '%s' in week %d as complete", course.Title, st.Week)
		c.reporter.Capture(err, map[string]string{"view": c.id, "operation": "record_completion"})
		c.publish(bus.EventCompletionFailed, bus.CompletionFailed{
			ViewEvent: bus.ViewEvent{View: c.id},
			Week:      st.Week,
			Title:     course.Title,
			Error:     err,
		})
		c.notifier.Show(KindError, fmt.Sprintf(failedMessage, err.Error()))

		return
	}

	c.log.Info().Msgf("Marked '%s' in week %d as complete", course.Title, st.Week)
	c.publish(bus.EventCourseCompleted, bus.CourseCompleted{ViewEvent: bus.ViewEvent{View: c.id}, Week: st.Week, Title: course.Title})
	c.notifier.Show(KindSuccess, fmt.Sprintf(completedMessage, course.Title))

	if err := c.refreshCourseDetailPane(ctx); err != nil {
		c.log.Warn().Err(err).Msg("Failed to refresh course pane after completion")
	}
}

// loadProgress fetches progress, a failing store degrades to no progress at all
func (c *Controller) loadProgress(ctx context.Context) progress.Map {
	tctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	p, err := c.store.GetCourseProgress(tctx)
	if err != nil {
		c.log.Warn().Err(err).Msgf("Progress unavailable for view '%s', rendering without it", c.id)
		c.reporter.Capture(err, map[string]string{"view": c.id, "operation": "load_progress"})
		c.publish(bus.EventProgressFallback, bus.ProgressFallback{ViewEvent: bus.ViewEvent{View: c.id}, Error: err})

		return progress.Map{}
	}

	if p == nil {
		return progress.Map{}
	}

	return p
}

func (c *Controller) publishSelection(event bus.MessageType) {
	st := c.nav.State()
	base := bus.ViewEvent{View: c.id}

	var data interface{}

	switch event {
	case bus.EventWeekSwitched:
		data = bus.WeekSwitched{ViewEvent: base, Week: st.Week}
	case bus.EventCourseSwitched:
		data = bus.CourseSwitched{ViewEvent: base, Week: st.Week, Course: st.Course}
	default:
		data = bus.VideoSwitched{ViewEvent: base, Week: st.Week, Course: st.Course, Video: st.Video}
	}

	c.publish(event, data)
}

func (c *Controller) publish(t bus.MessageType, data interface{}) {
	c.bus.Publish(bus.Message{Type: t, Data: data})
}
