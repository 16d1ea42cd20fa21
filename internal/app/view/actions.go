package view

import (
	"context"
	"fmt"
	"strconv"

	"materi/internal/app/bus"
	"materi/internal/app/errors"
)

// Action identifies a control on the page
type Action string

// Actions understood by the dispatcher
const (
	ActionWeekTab      Action = "week-tab"
	ActionCourseItem   Action = "course-item"
	ActionVideoPrev    Action = "video-prev"
	ActionVideoNext    Action = "video-next"
	ActionCoursePrev   Action = "course-prev"
	ActionCourseNext   Action = "course-next"
	ActionMarkComplete Action = "mark-complete"
)

// Scope is the part of the page re-rendered after an action
type Scope int

const (
	ScopeNone Scope = iota
	ScopePane
	ScopePage
)

// String returns the name hosts use for the scope
func (s Scope) String() string {
	switch s {
	case ScopePane:
		return "pane"
	case ScopePage:
		return "page"
	default:
		return "none"
	}
}

// Scope returns the part of the page a host refreshes after a successful dispatch of a,
// mark-complete refreshes the course pane on its own and so reports pane
func (a Action) Scope() Scope {
	switch a {
	case ActionWeekTab:
		return ScopePage
	case ActionCourseItem, ActionVideoPrev, ActionVideoNext, ActionCoursePrev, ActionCourseNext, ActionMarkComplete:
		return ScopePane
	default:
		return ScopeNone
	}
}

// route runs an action and reports whether the selection changed
type route struct {
	run   func(ctx context.Context, arg string) (bool, error)
	scope Scope
}

// Actions lists every action in the order controls appear on the page
func Actions() []Action {
	return []Action{
		ActionWeekTab,
		ActionCourseItem,
		ActionVideoPrev,
		ActionVideoNext,
		ActionCoursePrev,
		ActionCourseNext,
		ActionMarkComplete,
	}
}

// routes builds the dispatch table of c
func (c *Controller) routes() map[Action]route {
	return map[Action]route{
		ActionWeekTab:      {run: c.switchWeek, scope: ScopePage},
		ActionCourseItem:   {run: c.switchCourse, scope: ScopePane},
		ActionVideoPrev:    {run: c.step(c.nav.PreviousVideo, bus.EventVideoSwitched), scope: ScopePane},
		ActionVideoNext:    {run: c.step(c.nav.NextVideo, bus.EventVideoSwitched), scope: ScopePane},
		ActionCoursePrev:   {run: c.step(c.nav.PreviousCourse, bus.EventCourseSwitched), scope: ScopePane},
		ActionCourseNext:   {run: c.step(c.nav.NextCourse, bus.EventCourseSwitched), scope: ScopePane},
		ActionMarkComplete: {run: c.markComplete, scope: ScopeNone},
	}
}

func (c *Controller) switchWeek(ctx context.Context, arg string) (bool, error) {
	week, err := strconv.Atoi(arg)
	if err != nil {
		return false, fmt.Errorf("%w: week '%s'", errors.ErrInvalidArgument, arg)
	}

	c.nav.SwitchWeek(week)
	c.publishSelection(bus.EventWeekSwitched)

	return true, nil
}

func (c *Controller) switchCourse(ctx context.Context, arg string) (bool, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return false, fmt.Errorf("%w: course '%s'", errors.ErrInvalidArgument, arg)
	}

	st := c.nav.State()
	if index < 0 || index >= c.provider.Catalog().CourseCount(st.Week) {
		return false, fmt.Errorf("%w: course %d not in week %d", errors.ErrInvalidArgument, index, st.Week)
	}

	c.nav.SwitchCourse(index)
	c.publishSelection(bus.EventCourseSwitched)

	return true, nil
}

// step adapts a bounded navigator move, a move refused at the boundary renders nothing
func (c *Controller) step(move func() bool, event bus.MessageType) func(context.Context, string) (bool, error) {
	return func(ctx context.Context, arg string) (bool, error) {
		if !move() {
			return false, nil
		}

		c.publishSelection(event)

		return true, nil
	}
}

func (c *Controller) markComplete(ctx context.Context, arg string) (bool, error) {
	c.markAsComplete(ctx)
	return false, nil
}
