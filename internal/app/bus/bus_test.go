package bus

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"materi/internal/config"
	"materi/internal/config/logger"
)

func Test_New(t *testing.T) {
	b := New(10, nil)

	assert.NotNil(t, b)
	assert.Equal(t, 10, b.(*bus).buffer)
}

func Test_New_DefaultBuffer(t *testing.T) {
	b := New(0, nil)

	assert.Equal(t, BufferSize, b.(*bus).buffer)
}

func Test_Bus_PublishSubscribe(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{
		Type: EventCourseCompleted,
		Data: CourseCompleted{ViewEvent: ViewEvent{View: "v1"}, Week: 1, Title: "A"},
	})

	select {
	case msg := <-ch:
		assert.Equal(t, EventCourseCompleted, msg.Type)
		assert.False(t, msg.Timestamp.IsZero())
		data, ok := msg.Data.(CourseCompleted)
		assert.True(t, ok)
		assert.Equal(t, "A", data.Title)
		assert.Equal(t, 1, data.Week)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected message")
	}
}

func Test_Bus_MultipleSubscribers(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)

	b.Publish(Message{Type: EventCatalogReloaded, Data: CatalogReloaded{Weeks: 3}})

	for _, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, EventCatalogReloaded, msg.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Expected message on subscriber")
		}
	}
}

func Test_Bus_Unsubscribe_OnContextCancel(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "Channel should be closed after context cancel")
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected channel to close")
	}
}

func Test_Bus_Close(t *testing.T) {
	b := New(10, nil)

	ch := b.Subscribe(context.Background())

	b.Close()

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed")

	b.Publish(Message{Type: EventViewDisposed})
	b.Close()
}

func Test_Bus_SubscribeAfterClose(t *testing.T) {
	b := New(10, nil)
	b.Close()

	_, ok := <-b.Subscribe(context.Background())
	assert.False(t, ok)
}

func Test_Bus_CriticalMessage_BlockingSubscriber(t *testing.T) {
	b := New(1, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventVideoSwitched, Critical: false})
	b.Publish(Message{Type: EventCatalogReloaded, Critical: true})

	received := 0
	timeout := time.After(100 * time.Millisecond)

loop:
	for {
		select {
		case <-ch:
			received++
			if received >= 2 {
				break loop
			}
		case <-timeout:
			break loop
		}
	}

	assert.Equal(t, 2, received)
}

func Test_Bus_Publish_WithLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.DebugLevel

	b := New(10, logger.NewLoggerWithOutput(cfg, &buf))
	defer b.Close()

	b.Publish(Message{Type: EventWeekSwitched, Data: WeekSwitched{ViewEvent: ViewEvent{View: "v1"}, Week: 2}})

	assert.Contains(t, buf.String(), "week_switched {view: v1, week: 2}")
}

func Test_NoOp(t *testing.T) {
	b := NoOp()

	assert.NotNil(t, b)

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventViewMounted})

	select {
	case <-ch:
		t.Fatal("NoOp should not deliver messages")
	case <-time.After(10 * time.Millisecond):
	}

	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	b.Close()
}

func Test_FormatData(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		contains string
	}{
		{name: "catalog reloaded", data: CatalogReloaded{Weeks: 2, ChangedFiles: []string{"week-1.yaml"}}, contains: "weeks: 2"},
		{name: "course switched", data: CourseSwitched{ViewEvent: ViewEvent{View: "v"}, Week: 1, Course: 3}, contains: "course: 3"},
		{name: "video switched", data: VideoSwitched{ViewEvent: ViewEvent{View: "v"}, Video: 4}, contains: "video: 4"},
		{name: "completion failed", data: CompletionFailed{Title: "A", Error: errors.New("boom")}, contains: "error: boom"},
		{name: "progress fallback", data: ProgressFallback{Error: errors.New("offline")}, contains: "offline"},
		{name: "notification", data: Notification{Kind: "success", Message: "ok"}, contains: "kind: success"},
		{name: "view event", data: ViewEvent{View: "abc"}, contains: "view: abc"},
		{name: "unknown", data: 42, contains: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, formatData(tt.data), tt.contains)
		})
	}
}
