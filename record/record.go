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

// Package record defines the data carried through the fastlog pipeline:
// the Record itself and the Command tag riding alongside it.
package record

import (
	"time"

	"dirpx.dev/fastlog/level"
)

// Record is a single log event as it flows through the pipeline. It is
// constructed by the submitting goroutine with Formatted empty, mutated
// exactly once (Formatted is filled in) by the dispatcher, and never
// mutated again once it reaches a sink.
type Record struct {
	// Level is the record's severity.
	Level level.Level
	// Target is the logical source of the record (module/component name).
	Target string
	// Message is the raw, unformatted text supplied by the caller.
	Message string
	// ModulePath is the Go package path of the call site, if known.
	ModulePath string
	// File is the source file of the call site, if known.
	File string
	// Line is the source line of the call site. LineOk is false when unknown.
	Line   int
	LineOk bool
	// Time is the submission timestamp (wall-clock, nanosecond resolution).
	Time time.Time
	// Formatted is empty at submission and filled in by the dispatcher's
	// formatting stage before fan-out.
	Formatted string
	// Command is the tagged variant carried on this record: KindRecord for
	// a normal entry, KindExit, or KindFlush (see command.go).
	Command Command
}

// New constructs a normal (KindRecord) record with the raw message. This is
// what the submission path builds; Formatted is left empty for the
// dispatcher to fill in.
func New(lvl level.Level, target, message, modulePath, file string, line int, lineOk bool, at time.Time) *Record {
	return &Record{
		Level:      lvl,
		Target:     target,
		Message:    message,
		ModulePath: modulePath,
		File:       file,
		Line:       line,
		LineOk:     lineOk,
		Time:       at,
		Command:    RecordCommand(),
	}
}
