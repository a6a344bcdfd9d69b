package store

import (
	"errors"
	"sync"
)

// ErrOperationInFlight возвращается при попытке запустить операцию,
// которая уже выполняется для той же цели (двойной submit).
var ErrOperationInFlight = errors.New("operation already in flight")

// InFlight guards mutating operations against concurrent duplicate
// submissions. Keys are "operation/target-id" strings; a second Begin
// with the same key before End fails.
type InFlight struct {
	mu  sync.Mutex
	ops map[string]struct{}
}

// Begin помечает операцию как выполняющуюся.
// Возвращает ErrOperationInFlight, если ключ уже занят.
func (g *InFlight) Begin(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ops == nil {
		g.ops = make(map[string]struct{})
	}
	if _, busy := g.ops[key]; busy {
		return ErrOperationInFlight
	}
	g.ops[key] = struct{}{}
	return nil
}

// End снимает пометку. Безопасно вызывать через defer.
func (g *InFlight) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.ops, key)
}
