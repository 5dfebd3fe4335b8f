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

// Package appender defines the sink contract that every destination
// (console, single file, rolling file, split file) implements.
package appender

import "dirpx.dev/fastlog/record"

// Appender is a destination for formatted log records.
//
// Both operations are infallible at the interface: a dedicated sink worker
// calls them strictly sequentially for one appender, so no locking is
// required inside an Appender's own I/O state. Implementations must
// surface their own errors out-of-band (internal/diag, error counters)
// rather than returning them — the logging call site must never become a
// failure surface.
type Appender interface {
	// Name returns a human-friendly identifier used for diagnostics.
	Name() string

	// WriteBatch delivers a batch of already-formatted records, in order.
	// Each batch is delivered exactly once.
	WriteBatch(batch []*record.Record)

	// Flush ensures every record handed to WriteBatch so far is durable.
	Flush()
}
