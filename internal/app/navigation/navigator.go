package navigation

import "materi/internal/app/catalog"

// Navigator moves the selection through the catalog, it is not safe for concurrent use
type Navigator interface {
	// State returns a snapshot of the selection
	State() State
	// SwitchWeek selects a week and resets course and video
	SwitchWeek(week int)
	// SwitchCourse selects a course of the active week and resets the video
	SwitchCourse(index int)
	// SwitchVideo selects a video of the active course
	SwitchVideo(index int)
	// PreviousCourse steps back one course, reports false at the first course
	PreviousCourse() bool
	// NextCourse steps forward one course, reports false at the last course
	NextCourse() bool
	// PreviousVideo steps back one video, reports false at the first video
	PreviousVideo() bool
	// NextVideo steps forward one video, reports false at the last video
	NextVideo() bool
	// Clamp pulls course and video back inside the current catalog
	Clamp() bool
}

type navigator struct {
	provider catalog.Provider
	state    State
}

// NewNavigator creates a navigator positioned at the first course and video of week
func NewNavigator(provider catalog.Provider, week int) Navigator {
	return &navigator{
		provider: provider,
		state:    State{Week: week},
	}
}

func (n *navigator) State() State {
	return n.state
}

func (n *navigator) SwitchWeek(week int) {
	n.state = State{Week: week}
}

func (n *navigator) SwitchCourse(index int) {
	n.state.Course = index
	n.state.Video = 0
}

func (n *navigator) SwitchVideo(index int) {
	n.state.Video = index
}

func (n *navigator) PreviousCourse() bool {
	if n.state.Course <= 0 || n.courseCount() == 0 {
		return false
	}

	n.SwitchCourse(n.state.Course - 1)

	return true
}

func (n *navigator) NextCourse() bool {
	if n.state.Course >= n.courseCount()-1 {
		return false
	}

	n.SwitchCourse(n.state.Course + 1)

	return true
}

func (n *navigator) PreviousVideo() bool {
	if n.state.Video <= 0 || n.videoCount() == 0 {
		return false
	}

	n.state.Video--

	return true
}

func (n *navigator) NextVideo() bool {
	if n.state.Video >= n.videoCount()-1 {
		return false
	}

	n.state.Video++

	return true
}

func (n *navigator) Clamp() bool {
	before := n.state

	if n.state.Course < 0 || n.state.Course >= n.courseCount() {
		n.state.Course = 0
		n.state.Video = 0
	}

	if n.state.Video < 0 || n.state.Video >= n.videoCount() {
		n.state.Video = 0
	}

	return before != n.state
}

func (n *navigator) courseCount() int {
	return n.provider.Catalog().CourseCount(n.state.Week)
}

func (n *navigator) videoCount() int {
	return n.provider.Catalog().VideoCount(n.state.Week, n.state.Course)
}
