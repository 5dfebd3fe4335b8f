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

// Package timestamp is the date-formatting utility the built-in record
// format depends on: a fixed layout of the form
// "YYYY-MM-DD HH:MM:SS.nnnnnnnnn" with nine nanosecond digits, supporting
// every year from 1970 through 9999 and round-tripping exactly. Go's time
// package's layout-based formatting already pads and truncates the
// trailing ".000000000" to exactly nine digits, so Format/Parse round-trip
// without any custom calendar arithmetic.
package timestamp

import "time"

// Layout is the canonical fixed-width layout used by Format, Parse and the
// built-in record format. Archive file names use Sortable instead.
const Layout = "2006-01-02 15:04:05.000000000"

// Format renders t in the canonical layout, UTC-independent: it uses t's
// own location rather than normalizing to UTC first.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses a string produced by Format (or any value conforming to
// Layout) back into a time.Time.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// Sortable renders t in UTC as a lexicographically sortable token suitable
// for filenames: date, time and nine nanosecond digits with no separators,
// e.g. 2006-01-02 15:04:05.000000000 -> "20060102150405000000000".
func Sortable(t time.Time) string {
	const layout = "20060102150405.000000000"
	s := t.UTC().Format(layout)
	out := make([]byte, 0, len(s))
	for _, c := range s {
		if c == '.' {
			continue
		}
		out = append(out, byte(c))
	}
	return string(out)
}
