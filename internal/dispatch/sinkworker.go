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

package dispatch

import (
	"dirpx.dev/fastlog/appender"
	"dirpx.dev/fastlog/internal/queue"
	"dirpx.dev/fastlog/record"
)

// sinkWorker owns exactly one appender and processes batches strictly
// sequentially off its own queue, so the appender never needs to guard
// its own I/O against concurrent callers.
type sinkWorker struct {
	queue    *queue.Queue[[]*record.Record]
	appender appender.Appender
}

func newSinkWorker(a appender.Appender, queueCap int) *sinkWorker {
	var q *queue.Queue[[]*record.Record]
	if queueCap > 0 {
		q = queue.NewBounded[[]*record.Record](queueCap)
	} else {
		q = queue.NewUnbounded[[]*record.Record]()
	}
	return &sinkWorker{queue: q, appender: a}
}

// run drains batches until the queue is closed or a KindExit command is
// processed, whichever happens first.
func (sw *sinkWorker) run() {
	for {
		batch, ok := sw.queue.Recv()
		if !ok {
			return
		}
		if sw.process(batch) {
			return
		}
	}
}

// process writes every KindRecord entry in batch through the appender,
// honoring KindFlush and KindExit in the positions they appear so a
// Flush's barrier only releases once everything submitted before it has
// actually reached the appender. It returns true once a KindExit has
// been processed.
func (sw *sinkWorker) process(batch []*record.Record) (exit bool) {
	pending := make([]*record.Record, 0, len(batch))
	flushPending := func() {
		if len(pending) > 0 {
			sw.appender.WriteBatch(pending)
			pending = pending[:0]
		}
	}

	for _, r := range batch {
		switch r.Command.Kind {
		case record.KindRecord:
			pending = append(pending, r)
		case record.KindFlush:
			flushPending()
			sw.appender.Flush()
			r.Command.Barrier.Done()
		case record.KindExit:
			flushPending()
			exit = true
		}
	}
	flushPending()
	return exit
}
