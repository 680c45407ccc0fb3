package dataflow

import (
	"context"
	"sync"
	"time"
)

// From emits the given items on a channel, stopping early if ctx is
// cancelled. The channel is closed once all items are sent.
func From[T any](ctx context.Context, items ...T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, item := range items {
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Map applies fn to every item from in, fanning work out across the
// configured number of workers. Items whose fn fails after all retries are
// dropped; order is not preserved when workers > 1.
func Map[In, Out any](ctx context.Context, in <-chan In, fn func(In) (Out, error), opts ...Option) <-chan Out {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	out := make(chan Out, cfg.bufferSize)
	var wg sync.WaitGroup
	wg.Add(cfg.workers)

	worker := func() {
		defer wg.Done()
		for item := range in {
			result, err := applyWithRetry(ctx, cfg, fn, item)
			if err != nil {
				if cfg.errorHandler != nil {
					cfg.errorHandler(err)
				}
				continue
			}
			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}

	for i := 0; i < cfg.workers; i++ {
		go worker()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func applyWithRetry[In, Out any](ctx context.Context, cfg *config, fn func(In) (Out, error), item In) (Out, error) {
	var zero Out
	var err error
	for attempt := 0; ; attempt++ {
		var result Out
		result, err = fn(item)
		if err == nil {
			return result, nil
		}
		if attempt >= cfg.maxRetries {
			return zero, err
		}
		delay := time.Duration(0)
		if cfg.backoff != nil {
			delay = cfg.backoff(attempt + 1)
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// ForEach consumes every item from in, returning the first error fn
// reports. The channel is drained even after an error so upstream workers
// are not blocked.
func ForEach[T any](ctx context.Context, in <-chan T, fn func(T) error) error {
	var firstErr error
	for item := range in {
		if firstErr != nil {
			continue
		}
		select {
		case <-ctx.Done():
			firstErr = ctx.Err()
			continue
		default:
		}
		if err := fn(item); err != nil {
			firstErr = err
		}
	}
	return firstErr
}
