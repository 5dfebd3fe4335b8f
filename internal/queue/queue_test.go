package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedSendNeverBlocks(t *testing.T) {
	q := NewUnbounded[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			q.Send(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unbounded send blocked")
	}

	for i := 0; i < 1000; i++ {
		v, ok := q.Recv()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestBoundedSendBlocksWhenFull(t *testing.T) {
	q := NewBounded[int](1)
	q.Send(1)

	blocked := make(chan struct{})
	go func() {
		q.Send(2)
		close(blocked)
	}()

	select {
	case <-blocked:
		t.Fatal("Send should have blocked while the queue was full")
	case <-time.After(50 * time.Millisecond):
	}

	v, ok := q.Recv()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	<-blocked
	v, ok = q.Recv()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestDrainAllReturnsEverythingBuffered(t *testing.T) {
	q := NewUnbounded[string]()
	q.Send("a")
	q.Send("b")
	q.Send("c")

	assert.Equal(t, []string{"a", "b", "c"}, q.DrainAll())
	assert.Nil(t, q.DrainAll())
}

func TestCloseUnblocksRecv(t *testing.T) {
	q := NewUnbounded[int]()
	var wg sync.WaitGroup
	wg.Add(1)

	var gotOk bool
	go func() {
		defer wg.Done()
		_, gotOk = q.Recv()
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()
	wg.Wait()
	assert.False(t, gotOk)
}

func TestCloseAfterSendStillDelivers(t *testing.T) {
	q := NewUnbounded[int]()
	q.Send(42)
	q.Close()

	v, ok := q.Recv()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = q.Recv()
	assert.False(t, ok)
}
