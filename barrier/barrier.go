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

// Package barrier implements the one-shot counting synchronizer that backs
// Flush: a caller waits on a Barrier that releases once every live sink has
// drained past the Flush command it carried.
package barrier

import "sync"

// Barrier is a single-use counting synchronizer initialized to 1 + N_sinks:
// one share for the submitting caller, one share per sink. Each sink calls
// Done once it has flushed past the command carrying this barrier; the
// caller calls Done when it begins waiting. Wait blocks until every share
// has been accounted for.
//
// A Barrier is built on sync.WaitGroup, which already provides exactly this
// Add-N/Done/Wait shape; the wrapper exists only to name the specific
// 1+N_sinks protocol and to make misuse (double counting) harder.
type Barrier struct {
	wg sync.WaitGroup
}

// New returns a Barrier initialized for the given number of sinks. The
// caller's own share is included automatically.
func New(sinks int) *Barrier {
	b := &Barrier{}
	b.wg.Add(1 + sinks)
	return b
}

// Done releases one share of the barrier (called once by the waiting caller
// and once by each sink after it has flushed past this barrier's command).
func (b *Barrier) Done() {
	b.wg.Done()
}

// Wait releases the caller's own share and blocks until every sink has also
// called Done.
func (b *Barrier) Wait() {
	b.Done()
	b.wg.Wait()
}
