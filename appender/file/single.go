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

package file

import (
	"os"
	"path/filepath"

	"dirpx.dev/fastlog/appender"
	"dirpx.dev/fastlog/internal/diag"
	"dirpx.dev/fastlog/record"
)

// SingleAppender appends every record to one file forever, with no
// rotation, packing, or retention.
type SingleAppender struct {
	file *File
	name string
}

var _ appender.Appender = (*SingleAppender)(nil)

// NewSingle opens path (creating it if needed) and returns a
// SingleAppender over it.
func NewSingle(path string) (*SingleAppender, error) {
	f, err := Open(path, os.FileMode(DefaultMode))
	if err != nil {
		return nil, err
	}
	return &SingleAppender{file: f, name: "file(" + filepath.Base(path) + ")"}, nil
}

// Name returns "file(<base>)".
func (a *SingleAppender) Name() string { return a.name }

// WriteBatch appends every record's Formatted text, newline-delimited.
func (a *SingleAppender) WriteBatch(batch []*record.Record) {
	for _, r := range batch {
		if _, err := a.file.Append([]byte(r.Formatted + "\n")); err != nil {
			diag.Errorf("%s: write failed: %v", a.name, err)
			return
		}
	}
}

// Flush syncs the file to stable storage.
func (a *SingleAppender) Flush() {
	if err := a.file.Sync(); err != nil {
		diag.Errorf("%s: sync failed: %v", a.name, err)
	}
}

// Close closes the underlying file. Not part of the Appender interface;
// called during shutdown after the final Flush.
func (a *SingleAppender) Close() error {
	return a.file.Close()
}
