package catalog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordedChanges struct {
	mu    sync.Mutex
	calls []Changes
}

func (r *recordedChanges) flush(c Changes) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, c)
}

func (r *recordedChanges) snapshot() []Changes {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Changes(nil), r.calls...)
}

func Test_fileBatch_CollectsWeekFiles(t *testing.T) {
	r := &recordedChanges{}

	b := newFileBatch(50*time.Millisecond, r.flush)
	defer b.Stop()

	b.Write("week-2.yaml")
	b.Write("week-1.yaml")
	b.Remove("week-3.toml")
	b.Write("week-2.yaml")

	time.Sleep(120 * time.Millisecond)

	calls := r.snapshot()
	if assert.Len(t, calls, 1) {
		assert.Equal(t, []string{"week-1.yaml", "week-2.yaml"}, calls[0].Written)
		assert.Equal(t, []string{"week-3.toml"}, calls[0].Removed)
		assert.Equal(t, []string{"week-1.yaml", "week-2.yaml", "week-3.toml"}, calls[0].Files())
	}
}

func Test_fileBatch_LastEventWins(t *testing.T) {
	tests := []struct {
		name   string
		events func(b *fileBatch)
		want   Changes
	}{
		{
			name: "Atomic save",
			events: func(b *fileBatch) {
				b.Remove("week-1.yaml")
				b.Write("week-1.yaml")
			},
			want: Changes{Written: []string{"week-1.yaml"}},
		},
		{
			name: "Edited then deleted",
			events: func(b *fileBatch) {
				b.Write("week-1.yaml")
				b.Remove("week-1.yaml")
			},
			want: Changes{Removed: []string{"week-1.yaml"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordedChanges{}

			b := newFileBatch(30*time.Millisecond, r.flush)
			defer b.Stop()

			tt.events(b)

			time.Sleep(90 * time.Millisecond)

			assert.Equal(t, []Changes{tt.want}, r.snapshot())
		})
	}
}

func Test_fileBatch_CoalescesBursts(t *testing.T) {
	r := &recordedChanges{}

	b := newFileBatch(50*time.Millisecond, r.flush)
	defer b.Stop()

	for i := 0; i < 5; i++ {
		b.Write("week-1.yaml")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)

	assert.Len(t, r.snapshot(), 1)
}

func Test_fileBatch_Stop(t *testing.T) {
	r := &recordedChanges{}

	b := newFileBatch(30*time.Millisecond, r.flush)

	b.Write("week-1.yaml")
	b.Stop()
	b.Write("week-2.yaml")

	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, r.snapshot())
}

func Test_Changes(t *testing.T) {
	assert.True(t, Changes{}.Empty())
	assert.False(t, Changes{Removed: []string{"week-1.yaml"}}.Empty())
	assert.Empty(t, Changes{}.Files())
}
