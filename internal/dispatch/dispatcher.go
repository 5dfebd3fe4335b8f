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

// Package dispatch hosts the single dispatcher goroutine that drains the
// submission queue, formats each record once, and fans the batch out to
// one queue per appender, plus the per-appender sink worker that drains
// that queue strictly sequentially.
package dispatch

import (
	"sync"

	"dirpx.dev/fastlog/appender"
	"dirpx.dev/fastlog/format"
	"dirpx.dev/fastlog/internal/diag"
	"dirpx.dev/fastlog/internal/queue"
	"dirpx.dev/fastlog/record"
)

// Dispatcher owns the submission queue and fans formatted batches out to
// one sinkWorker per appender, in the order the appenders were given.
type Dispatcher struct {
	sub       *queue.Queue[*record.Record]
	formatter format.Formatter
	sinks     []*sinkWorker
	done      chan struct{}
}

// New constructs a Dispatcher over sub, formatting every record with
// formatter before fan-out. sinkQueueCap bounds each appender's private
// queue; zero means unbounded.
func New(sub *queue.Queue[*record.Record], formatter format.Formatter, appenders []appender.Appender, sinkQueueCap int) *Dispatcher {
	sinks := make([]*sinkWorker, len(appenders))
	for i, a := range appenders {
		sinks[i] = newSinkWorker(a, sinkQueueCap)
	}
	return &Dispatcher{sub: sub, formatter: formatter, sinks: sinks, done: make(chan struct{})}
}

// Run starts every sink worker, then runs the dispatch loop on the
// calling goroutine until a KindExit command has been forwarded to every
// sink. It blocks until every sink worker has itself exited, then closes
// Done.
func (d *Dispatcher) Run() {
	var wg sync.WaitGroup
	for _, s := range d.sinks {
		wg.Add(1)
		go func(s *sinkWorker) {
			defer wg.Done()
			s.run()
		}(s)
	}

	d.loop()

	wg.Wait()
	close(d.done)
}

// Done returns a channel closed once the dispatcher and every sink
// worker have exited.
func (d *Dispatcher) Done() <-chan struct{} { return d.done }

// loop drains the submission queue, batching everything that arrived
// while the previous batch was being formatted and fanned out.
func (d *Dispatcher) loop() {
	for {
		first, ok := d.sub.Recv()
		if !ok {
			return
		}
		batch := append([]*record.Record{first}, d.sub.DrainAll()...)

		exit := false
		for _, r := range batch {
			if r.Command.Kind == record.KindRecord {
				formatted, err := d.formatter.Format(r)
				if err != nil {
					diag.Errorf("dispatch: format failed: %v", err)
					formatted = r.Message
				}
				r.Formatted = formatted
			}
			if r.Command.Kind == record.KindExit {
				exit = true
			}
		}

		// Fan out to every sink in registration order, including the exit
		// marker: every appender must see the exit before the dispatcher
		// itself stops reading the submission queue.
		for _, s := range d.sinks {
			s.queue.Send(batch)
		}

		if exit {
			for _, s := range d.sinks {
				s.queue.Close()
			}
			return
		}
	}
}
