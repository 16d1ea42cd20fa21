package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"materi/internal/config/logger"
)

// BufferSize is the per-subscriber channel capacity
const BufferSize = 32

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventCatalogReloaded  MessageType = "catalog_reloaded"
	EventViewMounted      MessageType = "view_mounted"
	EventViewDisposed     MessageType = "view_disposed"
	EventWeekSwitched     MessageType = "week_switched"
	EventCourseSwitched   MessageType = "course_switched"
	EventVideoSwitched    MessageType = "video_switched"
	EventCourseCompleted  MessageType = "course_completed"
	EventCompletionFailed MessageType = "completion_failed"
	EventProgressFallback MessageType = "progress_fallback"
	EventNotification     MessageType = "notification"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// CatalogReloaded indicates the week catalog was re-read from disk
type CatalogReloaded struct {
	Weeks        int
	ChangedFiles []string
	RemovedFiles []string
}

// ViewEvent identifies the view a message originates from
type ViewEvent struct {
	View string
}

// WeekSwitched indicates the active week changed
type WeekSwitched struct {
	ViewEvent
	Week int
}

// CourseSwitched indicates the active course changed
type CourseSwitched struct {
	ViewEvent
	Week   int
	Course int
}

// VideoSwitched indicates the active video changed
type VideoSwitched struct {
	ViewEvent
	Week   int
	Course int
	Video  int
}

// CourseCompleted indicates a completion was recorded by the progress store
type CourseCompleted struct {
	ViewEvent
	Week  int
	Title string
}

// CompletionFailed indicates the progress store rejected a completion
type CompletionFailed struct {
	ViewEvent
	Week  int
	Title string
	Error error
}

// ProgressFallback indicates a render fell back to empty progress
type ProgressFallback struct {
	ViewEvent
	Error error
}

// Notification carries a banner shown to the user
type Notification struct {
	ViewEvent
	Kind    string
	Message string
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	buffer      int
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(buffer int, log logger.Logger) Bus {
	if buffer <= 0 {
		buffer = BufferSize
	}

	return &bus{
		buffer:      buffer,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.buffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case CatalogReloaded:
		return fmt.Sprintf("{weeks: %d, files: %v, removed: %v}", d.Weeks, d.ChangedFiles, d.RemovedFiles)
	case WeekSwitched:
		return fmt.Sprintf("{view: %s, week: %d}", d.View, d.Week)
	case CourseSwitched:
		return fmt.Sprintf("{view: %s, week: %d, course: %d}", d.View, d.Week, d.Course)
	case VideoSwitched:
		return fmt.Sprintf("{view: %s, week: %d, course: %d, video: %d}", d.View, d.Week, d.Course, d.Video)
	case CourseCompleted:
		return fmt.Sprintf("{view: %s, week: %d, title: %q}", d.View, d.Week, d.Title)
	case CompletionFailed:
		return fmt.Sprintf("{view: %s, week: %d, title: %q, error: %v}", d.View, d.Week, d.Title, d.Error)
	case ProgressFallback:
		return fmt.Sprintf("{view: %s, error: %v}", d.View, d.Error)
	case Notification:
		return fmt.Sprintf("{view: %s, kind: %s, message: %q}", d.View, d.Kind, d.Message)
	case ViewEvent:
		return fmt.Sprintf("{view: %s}", d.View)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
