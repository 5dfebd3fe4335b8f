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

package record

import "dirpx.dev/fastlog/barrier"

// Kind discriminates the tagged variant carried on every Record.
type Kind uint8

const (
	// KindRecord is a normal log record.
	KindRecord Kind = iota
	// KindExit is the poison pill: the dispatcher and every sink worker
	// terminate after processing it.
	KindExit
	// KindFlush carries a shared Barrier that the dispatcher forwards into
	// every sink queue in order; each sink decrements it after draining
	// past this command.
	KindFlush
)

// Command is the tagged variant carried on every Record (spec "Command
// tag"). Only KindFlush carries a payload (the Barrier).
type Command struct {
	Kind    Kind
	Barrier *barrier.Barrier // non-nil only when Kind == KindFlush
}

// RecordCommand returns the KindRecord command, the common case.
func RecordCommand() Command { return Command{Kind: KindRecord} }

// Exit returns the KindExit command.
func Exit() Command { return Command{Kind: KindExit} }

// Flush returns a KindFlush command carrying b.
func Flush(b *barrier.Barrier) Command { return Command{Kind: KindFlush, Barrier: b} }
