/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package queue is the many-to-one submission queue the dispatcher reads
// from, and the per-sink fan-out queue each sink worker reads from. Both
// a bounded and an unbounded variant are provided behind the same Queue
// type, so Config can switch between them with a single capacity value.
package queue

import (
	"sync"

	equeue "github.com/eapache/queue"
)

// Queue is a many-to-one FIFO of T. Send is called concurrently by many
// submitters; Recv/TryRecv is called by a single consumer goroutine.
type Queue[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	buf      *equeue.Queue
	capacity int // 0 means unbounded
	closed   bool
}

// NewBounded returns a Queue that blocks Send once capacity items are
// buffered and not yet received.
func NewBounded[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("queue: bounded capacity must be positive")
	}
	return newQueue[T](capacity)
}

// NewUnbounded returns a Queue whose Send never blocks: submitters always
// succeed immediately, and memory grows with the backlog.
func NewUnbounded[T any]() *Queue[T] {
	return newQueue[T](0)
}

func newQueue[T any](capacity int) *Queue[T] {
	q := &Queue[T]{buf: equeue.New(), capacity: capacity}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues v, blocking while a bounded Queue is full. Send on a
// closed Queue panics: the pipeline never sends after initiating shutdown.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		panic("queue: send on closed queue")
	}
	for q.capacity > 0 && q.buf.Length() >= q.capacity {
		q.cond.Wait()
	}
	q.buf.Add(v)
	q.cond.Signal()
}

// Recv blocks until an item is available or the Queue is closed and
// drained, in which case ok is false.
func (q *Queue[T]) Recv() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.buf.Length() == 0 {
		if q.closed {
			return v, false
		}
		q.cond.Wait()
	}
	item := q.buf.Remove().(T)
	q.cond.Signal() // wake a blocked bounded Sender, if any
	return item, true
}

// TryRecv pops one buffered item without blocking.
func (q *Queue[T]) TryRecv() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.buf.Length() == 0 {
		return v, false
	}
	item := q.buf.Remove().(T)
	q.cond.Signal()
	return item, true
}

// DrainAll pops every item currently buffered, in FIFO order, without
// blocking. Used by the dispatcher to batch everything that arrived
// while it was formatting the previous batch.
func (q *Queue[T]) DrainAll() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.buf.Length()
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for q.buf.Length() > 0 {
		out = append(out, q.buf.Remove().(T))
	}
	q.cond.Broadcast()
	return out
}

// Close marks the Queue closed: blocked and future Recv calls observe ok
// == false once the buffer is empty. Close does not discard buffered
// items already waiting to be received.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
