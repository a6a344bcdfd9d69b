package store

import (
	"context"
	"sync"
)

// FetchGuard orders collection fetches of one kind: starting a new fetch
// cancels the context of the previous one and advances the generation.
// A response is applied only if its generation is still current, so the
// last *started* fetch wins regardless of completion order.
type FetchGuard struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin отменяет предыдущий fetch и возвращает контекст и номер
// поколения нового
func (f *FetchGuard) Begin(ctx context.Context) (context.Context, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.gen++
	return ctx, f.gen
}

// Current reports whether the given generation is still the latest.
func (f *FetchGuard) Current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen == gen
}
