package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_SubscribeNotify(t *testing.T) {
	var n Notifier

	calls := 0
	unsubscribe := n.Subscribe(func() { calls++ })

	n.Notify()
	n.Notify()
	assert.Equal(t, 2, calls)

	unsubscribe()
	n.Notify()
	assert.Equal(t, 2, calls, "unsubscribed callback must not fire")
}

func TestInFlight_RejectsDuplicate(t *testing.T) {
	var g InFlight

	require.NoError(t, g.Begin("markers/create"))
	assert.ErrorIs(t, g.Begin("markers/create"), ErrOperationInFlight)

	// Другая цель не блокируется
	require.NoError(t, g.Begin("markers/remove/m1"))

	g.End("markers/create")
	assert.NoError(t, g.Begin("markers/create"))
}

func TestFetchGuard_SupersededFetchLoses(t *testing.T) {
	var f FetchGuard

	ctx1, gen1 := f.Begin(context.Background())
	ctx2, gen2 := f.Begin(context.Background())

	// Новый fetch отменяет контекст предыдущего
	assert.Error(t, ctx1.Err())
	assert.NoError(t, ctx2.Err())

	// Победитель определяется порядком старта, не завершения
	assert.False(t, f.Current(gen1))
	assert.True(t, f.Current(gen2))
}
