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

// Package console implements the Appender interface over a buffered
// stdout writer.
package console

import (
	"bufio"
	"io"
	"os"
	"sync"

	"dirpx.dev/fastlog/appender"
	"dirpx.dev/fastlog/internal/diag"
	"dirpx.dev/fastlog/record"
)

// Appender writes formatted records to an io.Writer (os.Stdout by
// default), buffered to keep the per-batch syscall count low.
type Appender struct {
	mu  sync.Mutex
	w   *bufio.Writer
	out io.Writer
}

var _ appender.Appender = (*Appender)(nil)

// New constructs a console Appender writing to os.Stdout.
func New() *Appender {
	return NewWriter(os.Stdout)
}

// NewWriter constructs a console Appender writing to an arbitrary
// io.Writer, primarily so tests can capture output.
func NewWriter(w io.Writer) *Appender {
	return &Appender{w: bufio.NewWriter(w), out: w}
}

// Name returns "console".
func (a *Appender) Name() string { return "console" }

// WriteBatch writes every record's Formatted text, one per line, then
// flushes the buffer once for the whole batch.
func (a *Appender) WriteBatch(batch []*record.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, r := range batch {
		if _, err := a.w.WriteString(r.Formatted); err != nil {
			diag.Errorf("console: write failed: %v", err)
			return
		}
		if err := a.w.WriteByte('\n'); err != nil {
			diag.Errorf("console: write failed: %v", err)
			return
		}
	}
	if err := a.w.Flush(); err != nil {
		diag.Errorf("console: flush failed: %v", err)
	}
}

// Flush is a no-op beyond what WriteBatch already does; bufio.Writer has
// no further buffering to drain between batches.
func (a *Appender) Flush() {}
