package browse

import "github.com/charmbracelet/bubbles/spinner"

// LoaderItem represents a single pending operation
type LoaderItem struct {
	Operation string
	Message   string
}

// Loader holds loader state for loading indicators
type Loader struct {
	Model  spinner.Model
	Active bool
	queue  []LoaderItem
}

// NewLoader creates an idle Loader
func NewLoader() *Loader {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &Loader{Model: s}
}

// Start adds an operation to the loader queue or updates its message
func (l *Loader) Start(operation, msg string) {
	for i := range l.queue {
		if l.queue[i].Operation == operation {
			l.queue[i].Message = msg
			return
		}
	}

	l.queue = append(l.queue, LoaderItem{Operation: operation, Message: msg})
	l.Active = true
}

// Stop removes an operation from the queue
func (l *Loader) Stop(operation string) {
	for i := 0; i < len(l.queue); i++ {
		if l.queue[i].Operation == operation {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			break
		}
	}

	if len(l.queue) == 0 {
		l.Active = false
	}
}

// StopAll clears the entire loader queue
func (l *Loader) StopAll() {
	l.queue = nil
	l.Active = false
}

// Message returns the message at the front of the queue
func (l *Loader) Message() string {
	if len(l.queue) == 0 {
		return ""
	}

	return l.queue[0].Message
}

// Has checks if an operation is already queued
func (l *Loader) Has(operation string) bool {
	for _, item := range l.queue {
		if item.Operation == operation {
			return true
		}
	}

	return false
}
