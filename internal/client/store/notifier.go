// Package store содержит примитивы, общие для всех stores:
// явный контракт уведомления подписчиков, защиту от дублирующих
// конкурентных операций и контроль устаревших fetch-запросов.
package store

import "sync"

// Notifier implements the explicit change-event contract: store
// operations mutate state under their own lock, then call Notify.
// Subscribers read a fresh snapshot from the store in response; no
// property-level interception is involved.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

// Subscribe регистрирует callback и возвращает функцию отписки
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Notify вызывает всех подписчиков. Вызывать после отпускания
// лока store, чтобы подписчик мог читать снапшот.
func (n *Notifier) Notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
