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

// Package diag is fastlog's own out-of-band diagnostic channel: runtime
// errors inside sink workers and the packer thread are written here rather
// than propagated back to the caller that submitted the record.
//
// A third-party structured logger is deliberately not used: this package is
// the logging library's self-report channel, and wiring a structured logger
// into the thing that implements structured logging would be circular.
package diag

import (
	"fmt"
	"log"
	"os"
)

var std = log.New(os.Stderr, "[fastlog] ", log.LstdFlags)

// Errorf formats and writes a diagnostic line to stderr.
func Errorf(format string, args ...any) {
	std.Print(fmt.Sprintf(format, args...))
}
