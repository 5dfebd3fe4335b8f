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

// Package file provides the append-only byte-sink primitive every
// file-backed appender (single, rolling, split) is built on.
package file

import (
	"os"
	"path/filepath"
	"syscall"
)

// DefaultMode is the permission used when a log file is created and no
// other mode is given.
const DefaultMode = 0o640

// File is an append-only byte sink backed by a single open file
// descriptor. It is not safe for concurrent use; callers (appenders) are
// expected to serialize access, which the pipeline already guarantees
// (one sink worker per appender).
type File struct {
	f    *os.File
	path string
}

// Open opens path for appending, creating it (and its parent directory)
// if necessary.
func Open(path string, mode os.FileMode) (*File, error) {
	if mode == 0 {
		mode = DefaultMode
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
	if err != nil {
		return nil, err
	}
	return &File{f: f, path: path}, nil
}

// Path returns the path this File was opened with.
func (file *File) Path() string { return file.path }

// Append writes b to the end of the file.
func (file *File) Append(b []byte) (int, error) {
	return file.f.Write(b)
}

// Len reports the file's current size in bytes.
func (file *File) Len() (int64, error) {
	info, err := file.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Truncate resets the file to zero length and seeks to its start,
// without closing the descriptor. Used when an appender keeps writing
// into the same path across a logical reset rather than rotating it.
func (file *File) Truncate() error {
	if err := file.f.Truncate(0); err != nil {
		return err
	}
	_, err := file.f.Seek(0, 0)
	return err
}

// Sync flushes the file's in-kernel buffers to stable storage.
func (file *File) Sync() error {
	return file.f.Sync()
}

// Close closes the underlying descriptor.
func (file *File) Close() error {
	return file.f.Close()
}

// Clone returns a new File bound to the same open file through a second
// descriptor obtained via syscall.Dup. The two descriptors share one file
// offset (writes still go to the end, since the file is opened with
// O_APPEND); closing either one leaves the other usable.
func (file *File) Clone() (*File, error) {
	fd, err := syscall.Dup(int(file.f.Fd()))
	if err != nil {
		return nil, err
	}
	return &File{f: os.NewFile(uintptr(fd), file.path), path: file.path}, nil
}
