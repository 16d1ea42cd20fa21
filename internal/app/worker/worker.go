package worker

import (
	"context"
	"sync"

	"materi/internal/config"
)

// Pool bounds how many session reloads run at once
type Pool interface {
	Acquire(ctx context.Context) error
	Release()
	Each(ctx context.Context, n int, task func(ctx context.Context, i int))
}

// pool implements the Pool interface
type pool struct {
	sem chan struct{}
}

// NewWorkerPool creates a pool sized by server.reload_workers
func NewWorkerPool(cfg *config.Config) Pool {
	return NewPool(cfg.Server.ReloadWorkers)
}

// NewPool creates a pool with size slots, at least one
func NewPool(size int) Pool {
	if size < 1 {
		size = 1
	}

	return &pool{
		sem: make(chan struct{}, size),
	}
}

// Acquire acquires a slot, blocking while all are taken or returning the context error
func (p *pool) Acquire(ctx context.Context) error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release releases a slot
func (p *pool) Release() {
	<-p.sem
}

// Each runs task for indices 0..n-1 on the pool and waits for all started tasks,
// indices not yet started when ctx is done are skipped
func (p *pool) Each(ctx context.Context, n int, task func(ctx context.Context, i int)) {
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}

		if err := p.Acquire(ctx); err != nil {
			break
		}

		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			defer p.Release()

			task(ctx, i)
		}(i)
	}

	wg.Wait()
}
