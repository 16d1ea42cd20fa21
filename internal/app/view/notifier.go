package view

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"materi/internal/app/bus"
	"materi/internal/app/dom"
	"materi/internal/app/render"
	"materi/internal/config/logger"
)

// Kind is the visual style of a notification
type Kind string

// Notification kinds
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is a banner currently on screen
type Notice struct {
	ID      string
	Kind    Kind
	Message string
	Expires time.Time
	seq     int
}

// Notifier appends banners to the document body and removes them after a fixed lifetime
type Notifier struct {
	view     string
	doc      *dom.Document
	renderer *render.Renderer
	lifetime time.Duration
	bus      bus.Bus
	log      logger.Logger
	seq      int
	live     map[string]Notice
	timers   map[string]*time.Timer
	closed   bool
	mu       sync.Mutex
}

// NewNotifier creates a Notifier for one view
func NewNotifier(view string, doc *dom.Document, renderer *render.Renderer, lifetime time.Duration, b bus.Bus, log logger.Logger) *Notifier {
	return &Notifier{
		view:     view,
		doc:      doc,
		renderer: renderer,
		lifetime: lifetime,
		bus:      b,
		log:      log,
		live:     make(map[string]Notice),
		timers:   make(map[string]*time.Timer),
	}
}

// Show displays a banner and schedules its removal
func (n *Notifier) Show(kind Kind, message string) Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	notice := Notice{
		ID:      fmt.Sprintf("notification-%d", n.seq),
		Kind:    kind,
		Message: message,
		Expires: time.Now().Add(n.lifetime),
		seq:     n.seq,
	}

	if n.closed {
		return notice
	}

	markup, err := n.renderer.NotificationHTML(notice.ID, string(kind), message, notice.Expires)
	if err != nil {
		n.log.Error().Err(err).Msg("Failed to render notification")
		return notice
	}

	if err := n.doc.AppendBody(markup); err != nil {
		n.log.Debug().Err(err).Msg("No body to attach notification to")
		return notice
	}

	n.live[notice.ID] = notice
	n.timers[notice.ID] = time.AfterFunc(n.lifetime, func() { n.dismiss(notice.ID) })

	n.bus.Publish(bus.Message{
		Type: bus.EventNotification,
		Data: bus.Notification{ViewEvent: bus.ViewEvent{View: n.view}, Kind: string(kind), Message: message},
	})

	return notice
}

// Active returns the banners still on screen, oldest first
func (n *Notifier) Active() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notice, 0, len(n.live))
	for _, notice := range n.live {
		out = append(out, notice)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// Close cancels pending removals, banners already shown stay in the document
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true

	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
}

func (n *Notifier) dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.live, id)
	delete(n.timers, id)
	n.doc.Remove(id)
}
