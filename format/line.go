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

package format

import (
	"context"
	"strings"

	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/record"
	"dirpx.dev/fastlog/timestamp"
)

func init() {
	register("line", func(context.Context, struct{}) (Formatter, error) {
		return LineFormatter{}, nil
	})
}

// LineFormatter is fastlog's built-in text format:
//
//	2006-01-02 15:04:05.000000000 LEVEL target - message
//
// target is omitted (along with its trailing " -") when empty.
type LineFormatter struct{}

var _ Formatter = LineFormatter{}

// Name returns "line".
func (LineFormatter) Name() string { return "line" }

// Format renders r using the fixed-width timestamp layout and an
// upper-cased, fixed-width level name so columns line up visually.
func (LineFormatter) Format(r *record.Record) (string, error) {
	var b strings.Builder
	b.Grow(len(r.Message) + 48)

	b.WriteString(timestamp.Format(r.Time))
	b.WriteByte(' ')
	b.WriteString(levelColumn(r.Level))
	b.WriteByte(' ')
	if r.Target != "" {
		b.WriteString(r.Target)
		b.WriteString(" - ")
	}
	b.WriteString(r.Message)
	return b.String(), nil
}

// levelColumn upper-cases and right-pads a level name to 5 characters,
// the width of the longest level name ("ERROR").
func levelColumn(l level.Level) string {
	s := strings.ToUpper(l.String())
	for len(s) < 5 {
		s += " "
	}
	return s
}
