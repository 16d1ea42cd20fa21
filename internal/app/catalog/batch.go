package catalog

import (
	"sort"
	"sync"
	"time"
)

// Changes lists the week files touched by one burst of events, a file is in exactly one list
type Changes struct {
	Written []string
	Removed []string
}

// Files returns every touched file, sorted
func (c Changes) Files() []string {
	files := make([]string, 0, len(c.Written)+len(c.Removed))
	files = append(files, c.Written...)
	files = append(files, c.Removed...)
	sort.Strings(files)

	return files
}

// Empty reports whether no file was touched
func (c Changes) Empty() bool {
	return len(c.Written) == 0 && len(c.Removed) == 0
}

// fileBatch collects week file events until delay passes without a new one,
// then hands the last state of each file to flush
type fileBatch struct {
	delay   time.Duration
	flush   func(Changes)
	timer   *time.Timer
	removed map[string]bool
	mu      sync.Mutex
	stopped bool
}

func newFileBatch(delay time.Duration, flush func(Changes)) *fileBatch {
	return &fileBatch{
		delay:   delay,
		flush:   flush,
		removed: make(map[string]bool),
	}
}

// Write records that name was created or rewritten
func (b *fileBatch) Write(name string) {
	b.add(name, false)
}

// Remove records that name was deleted or renamed away
func (b *fileBatch) Remove(name string) {
	b.add(name, true)
}

// an editor saving through a temp file removes then recreates the week file, the last event wins
func (b *fileBatch) add(name string, removed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}

	b.removed[name] = removed

	if b.timer != nil {
		b.timer.Stop()
	}

	b.timer = time.AfterFunc(b.delay, b.fire)
}

// Stop drops pending changes, later events are ignored
func (b *fileBatch) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	clear(b.removed)
}

func (b *fileBatch) fire() {
	b.mu.Lock()

	if b.stopped || len(b.removed) == 0 {
		b.mu.Unlock()
		return
	}

	var c Changes

	for name, removed := range b.removed {
		if removed {
			c.Removed = append(c.Removed, name)
		} else {
			c.Written = append(c.Written, name)
		}
	}

	clear(b.removed)
	b.timer = nil

	b.mu.Unlock()

	sort.Strings(c.Written)
	sort.Strings(c.Removed)
	b.flush(c)
}
