package progress

import (
	"context"
	"sync"
)

// memoryStore keeps progress for the lifetime of the process
type memoryStore struct {
	data Map
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory Store
func NewMemoryStore() Store {
	return &memoryStore{data: make(Map)}
}

// GetCourseProgress returns a copy of the recorded progress
func (s *memoryStore) GetCourseProgress(ctx context.Context) (Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Map, len(s.data))
	for week, flags := range s.data {
		out[week] = make(map[string]bool, len(flags))
		for title, done := range flags {
			out[week][title] = done
		}
	}

	return out, nil
}

// RecordCourseCompletion marks a course complete, repeated calls are no-ops
func (s *memoryStore) RecordCourseCompletion(ctx context.Context, week int, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := validate(week, title); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[week] == nil {
		s.data[week] = make(map[string]bool)
	}

	s.data[week][title] = true

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
