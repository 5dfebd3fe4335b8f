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

// Package split implements the split-file appender: a size-triggered
// rotating file whose rotated segments are handed off to an asynchronous
// packer and, once packed, swept by a retention policy.
//
// Rotation itself is synchronous with the sink worker (it never loses or
// splits a record across two files); packing happens on a dedicated
// goroutine so a slow compressor cannot stall logging. The hand-off
// channel has a small fixed capacity, so if the packer falls behind, the
// *next* rotation's sink worker blocks on the send — backpressure is
// applied only to this one appender's worker, never to submission.
package split

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"dirpx.dev/fastlog/appender"
	afile "dirpx.dev/fastlog/appender/file"
	"dirpx.dev/fastlog/internal/diag"
	"dirpx.dev/fastlog/packer"
	"dirpx.dev/fastlog/record"
	"dirpx.dev/fastlog/retention"
)

// packQueueCapacity bounds how many rotated segments may wait for the
// packer goroutine before a further rotation blocks its sink worker.
const packQueueCapacity = 1

// Appender is the split-file appender. One Appender owns exactly one
// active file and one packer goroutine.
type Appender struct {
	mu         sync.Mutex
	dir        string
	base       string
	path       string
	maxBytes   int64
	file       *afile.File
	size       int64
	collisions int64
	closed     bool

	packer    packer.Packer
	retention retention.Policy
	packCh    chan string
	packDone  sync.WaitGroup

	name string
}

var _ appender.Appender = (*Appender)(nil)

// New opens (or creates) <dir>/<base>.log and returns a split Appender
// that rotates once the active file would exceed maxBytes. pk and pol may
// be nil, defaulting to packer.NullPacker and retention.KeepAll.
func New(dir, base string, maxBytes int64, pol retention.Policy, pk packer.Packer) (*Appender, error) {
	if pk == nil {
		pk = packer.NullPacker{}
	}
	if pol == nil {
		pol = retention.KeepAll{}
	}

	path := activePath(dir, base)
	f, err := afile.Open(path, 0)
	if err != nil {
		return nil, err
	}
	size, err := f.Len()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	a := &Appender{
		dir:       dir,
		base:      base,
		path:      path,
		maxBytes:  maxBytes,
		file:      f,
		size:      size,
		packer:    pk,
		retention: pol,
		packCh:    make(chan string, packQueueCapacity),
		name:      "split(" + base + ")",
	}

	a.packDone.Add(1)
	go a.packLoop()

	return a, nil
}

// Name returns "split(<base>)".
func (a *Appender) Name() string { return a.name }

// WriteBatch appends every record, rotating mid-batch whenever the next
// record would cross maxBytes. A single record is never split across a
// rotation boundary.
func (a *Appender) WriteBatch(batch []*record.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	for _, r := range batch {
		line := []byte(r.Formatted + "\n")
		if a.maxBytes > 0 && a.size > 0 && a.size+int64(len(line)) > a.maxBytes {
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

// Flush syncs the active file. It does not wait for any in-flight pack.
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

// Close closes the active file without rotating it, stops accepting new
// pack work, and waits for the packer goroutine to drain what's already
// queued.
func (a *Appender) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	err := a.file.Close()
	a.mu.Unlock()

	close(a.packCh)
	a.packDone.Wait()
	return err
}

// rotateLocked closes the active file, renames it aside with a sortable
// timestamp token (disambiguated on collision), reopens a fresh active
// file, and hands the archived segment to the packer goroutine. The
// caller holds a.mu.
func (a *Appender) rotateLocked() error {
	if err := a.file.Close(); err != nil {
		return err
	}

	archive := a.nextArchivePathLocked(time.Now())
	if err := os.Rename(a.path, archive); err != nil {
		return err
	}

	f, err := afile.Open(a.path, 0)
	if err != nil {
		return err
	}
	a.file = f
	a.size = 0

	a.packCh <- archive
	return nil
}

// nextArchivePathLocked returns the archive path for now, bumping the
// in-process collision counter if a path of that name already exists
// (e.g. two rotations within the same nanosecond tick in a test).
func (a *Appender) nextArchivePathLocked(now time.Time) string {
	token := archiveToken(now)
	collision := int64(0)
	path := archivePath(a.dir, a.base, token, collision)
	for fileExists(path) {
		a.collisions++
		collision = a.collisions
		path = archivePath(a.dir, a.base, token, collision)
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// packLoop runs on its own goroutine for the Appender's lifetime, packing
// each rotated segment and then sweeping retention over the directory.
func (a *Appender) packLoop() {
	defer a.packDone.Done()
	for archive := range a.packCh {
		a.packOne(archive)
	}
}

func (a *Appender) packOne(archive string) {
	if err := a.packer.Pack(context.Background(), archive); err != nil {
		diag.Errorf("%s: pack failed for %s: %v", a.name, archive, err)
		return
	}
	a.sweepRetention()
}

// sweepRetention lists every archived segment on disk (packed or not),
// dates each by the timestamp token in its name (its modification time
// when the name carries none), asks the retention policy which ones to
// delete, and deletes them.
func (a *Appender) sweepRetention() {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		diag.Errorf("%s: retention scan failed: %v", a.name, err)
		return
	}

	prefix := archivePrefix(a.base)
	var archives []retention.Archive
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		at := info.ModTime()
		if token := strings.TrimPrefix(name, prefix); len(token) >= 23 {
			if ts, err := time.Parse("20060102150405.000000000", token[:14]+"."+token[14:23]); err == nil {
				at = ts
			}
		}
		archives = append(archives, retention.Archive{
			Path: filepath.Join(a.dir, name),
			At:   at,
			Size: info.Size(),
		})
	}
	if len(archives) == 0 {
		return
	}

	sort.Slice(archives, func(i, j int) bool { return archives[i].At.Before(archives[j].At) })

	for _, victim := range a.retention.SelectForDeletion(archives) {
		if err := os.Remove(victim.Path); err != nil && !os.IsNotExist(err) {
			diag.Errorf("%s: retention delete failed for %s: %v", a.name, victim.Path, err)
		}
	}
}
