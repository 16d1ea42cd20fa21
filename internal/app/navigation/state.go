package navigation

import "fmt"

// State is the active week, course and video selection
type State struct {
	Week   int
	Course int
	Video  int
}

// String returns the state in a human readable form
func (s State) String() string {
	return fmt.Sprintf("week %d, course %d, video %d", s.Week, s.Course, s.Video)
}
