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

// Package rolling implements a size-bounded rotating file appender: once
// the active file would exceed MaxBytes, it is renamed aside (timestamped)
// and a fresh file opened in its place. Unlike appender/split, rotated
// files are neither packed nor pruned — they simply accumulate.
package rolling

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dirpx.dev/fastlog/appender"
	afile "dirpx.dev/fastlog/appender/file"
	"dirpx.dev/fastlog/internal/diag"
	"dirpx.dev/fastlog/record"
)

// Appender rotates the active file by size, keeping every rotated
// segment on disk with a timestamp suffix.
type Appender struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	file     *afile.File
	size     int64
	closed   bool
	name     string
}

var _ appender.Appender = (*Appender)(nil)

// New opens (or creates) path and returns a rolling Appender that rotates
// once the file would grow past maxBytes.
func New(path string, maxBytes int64) (*Appender, error) {
	f, err := afile.Open(path, 0)
	if err != nil {
		return nil, err
	}
	size, err := f.Len()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Appender{
		path:     path,
		maxBytes: maxBytes,
		file:     f,
		size:     size,
		name:     "rolling(" + filepath.Base(path) + ")",
	}, nil
}

// Name returns "rolling(<base>)".
func (a *Appender) Name() string { return a.name }

// WriteBatch appends every record, rotating mid-batch whenever the next
// record would cross maxBytes. Rotation never splits a single record
// across two files.
func (a *Appender) WriteBatch(batch []*record.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	for _, r := range batch {
		line := []byte(r.Formatted + "\n")
		if a.maxBytes > 0 && a.size+int64(len(line)) > a.maxBytes && a.size > 0 {
			if err := a.rotateLocked(); err != nil {
				diag.Errorf("%s: rotate failed: %v", a.name, err)
				return
			}
		}
		n, err := a.file.Append(line)
		a.size += int64(n)
		if err != nil {
			diag.Errorf("%s: write failed: %v", a.name, err)
			return
		}
	}
}

// Flush syncs the active file.
func (a *Appender) Flush() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if err := a.file.Sync(); err != nil {
		diag.Errorf("%s: sync failed: %v", a.name, err)
	}
}

// Close closes the active file; subsequent WriteBatch/Flush calls are
// no-ops.
func (a *Appender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	return a.file.Close()
}

func (a *Appender) rotateLocked() error {
	if err := a.file.Close(); err != nil {
		return err
	}

	rotated := rotatedPath(a.path, time.Now())
	if err := os.Rename(a.path, rotated); err != nil {
		return err
	}

	f, err := afile.Open(a.path, 0)
	if err != nil {
		return err
	}
	a.file = f
	a.size = 0
	return nil
}

func rotatedPath(base string, t time.Time) string {
	dir := filepath.Dir(base)
	name := filepath.Base(base)
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, t.UTC().Format("20060102-150405.000000000")))
}
