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

// Package fastlog is an asynchronous, high-throughput logging pipeline:
// submission never blocks on I/O, a single dispatcher goroutine formats
// and fans records out to one goroutine per destination, and Flush gives
// callers a happens-before guarantee without stalling the hot path.
package fastlog

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"dirpx.dev/fastlog/appender"
	"dirpx.dev/fastlog/appender/console"
	afile "dirpx.dev/fastlog/appender/file"
	"dirpx.dev/fastlog/appender/rolling"
	"dirpx.dev/fastlog/appender/split"
	"dirpx.dev/fastlog/barrier"
	"dirpx.dev/fastlog/filter"
	"dirpx.dev/fastlog/format"
	"dirpx.dev/fastlog/internal/diag"
	"dirpx.dev/fastlog/internal/dispatch"
	"dirpx.dev/fastlog/internal/queue"
	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/packer"
	"dirpx.dev/fastlog/record"
	"dirpx.dev/fastlog/retention"
)

var (
	// ErrNoAppenders is returned by Init when Config has no configured
	// destination: a logger that writes nowhere is almost always a
	// configuration mistake, not an intentional no-op.
	ErrNoAppenders = errors.New("fastlog: no appenders configured")
	// ErrAlreadyInitialized is returned by InitGlobal when called a second
	// time without an intervening ExitGlobal.
	ErrAlreadyInitialized = errors.New("fastlog: already initialized")
	// ErrNotInitialized is returned by FlushGlobal/ExitGlobal when no
	// global Logger is installed.
	ErrNotInitialized = errors.New("fastlog: not initialized")
)

// Config collects everything Init needs: level, filter, formatter,
// submission queue capacity, and the list of appenders to fan out to.
type Config struct {
	level     level.Level
	filter    filter.Filter
	formatter format.Formatter
	chanCap   int // 0 = unbounded submission queue
	sinkCap   int // 0 = unbounded per-sink queue
	appenders []appender.Appender
	closers   []func() error
}

// New returns a Config at level.Info, the built-in line formatter, an
// unbounded submission queue, and no appenders.
func New() *Config {
	line, _ := format.Lookup("line")
	return &Config{level: level.Info, filter: filter.None, formatter: line}
}

// Level sets the minimum severity that reaches the submission queue.
func (c *Config) Level(l level.Level) *Config {
	c.level = l
	return c
}

// Filter installs a predicate that drops matching records before they
// are ever enqueued.
func (c *Config) Filter(f filter.Filter) *Config {
	if f != nil {
		c.filter = f
	}
	return c
}

// Format selects the formatter the dispatcher uses for every record.
func (c *Config) Format(f format.Formatter) *Config {
	if f != nil {
		c.formatter = f
	}
	return c
}

// ChanCap bounds the submission queue's capacity. Zero (the default)
// means unbounded: submission never blocks, at the cost of unbounded
// memory growth if appenders fall behind.
func (c *Config) ChanCap(n int) *Config {
	c.chanCap = n
	return c
}

// SinkChanCap bounds each appender's private fan-out queue. Zero (the
// default) means unbounded.
func (c *Config) SinkChanCap(n int) *Config {
	c.sinkCap = n
	return c
}

// Custom registers an arbitrary appender.
func (c *Config) Custom(a appender.Appender) *Config {
	c.appenders = append(c.appenders, a)
	return c
}

// Console adds a buffered-stdout appender.
func (c *Config) Console() *Config {
	return c.Custom(console.New())
}

// File adds a non-rotating single-file appender at path.
func (c *Config) File(path string) *Config {
	a, err := afile.NewSingle(path)
	if err != nil {
		c.appenders = append(c.appenders, failingAppender{name: "file(" + path + ")", err: err})
		return c
	}
	c.closers = append(c.closers, a.Close)
	return c.Custom(a)
}

// Rolling adds a size-rotating file appender at path: once the active
// file would exceed maxBytes, it's renamed aside (timestamped) and a
// fresh file opened. Rotated segments are kept, unpacked and unpruned.
func (c *Config) Rolling(path string, maxBytes int64) *Config {
	a, err := rolling.New(path, maxBytes)
	if err != nil {
		c.appenders = append(c.appenders, failingAppender{name: "rolling(" + path + ")", err: err})
		return c
	}
	c.closers = append(c.closers, a.Close)
	return c.Custom(a)
}

// Split adds a split-file appender rooted at <dir>/<base>.log: rotation
// by size, rotated segments packed asynchronously by pk (nil defaults to
// packer.NullPacker), and pruned by pol (nil defaults to
// retention.KeepAll).
func (c *Config) Split(dir, base string, maxBytes int64, pol retention.Policy, pk packer.Packer) *Config {
	a, err := split.New(dir, base, maxBytes, pol, pk)
	if err != nil {
		c.appenders = append(c.appenders, failingAppender{name: "split(" + base + ")", err: err})
		return c
	}
	c.closers = append(c.closers, a.Close)
	return c.Custom(a)
}

// failingAppender reports a configuration-time error (e.g. a permission
// failure opening a file) through the normal diagnostic channel instead
// of panicking inside a builder method.
type failingAppender struct {
	name string
	err  error
}

func (f failingAppender) Name() string { return f.name }
func (f failingAppender) WriteBatch(batch []*record.Record) {
	diag.Errorf("%s: failed to open, %d record(s) dropped: %v", f.name, len(batch), f.err)
}
func (f failingAppender) Flush() {}

// Logger is a running fastlog pipeline: a submission queue, a dispatcher
// goroutine, and one sink worker per appender.
type Logger struct {
	level      *level.Filter
	filter     filter.Filter
	submission *queue.Queue[*record.Record]
	dispatcher *dispatch.Dispatcher
	numSinks   int
	closers    []func() error
}

// Init validates cfg and starts the pipeline. Callers normally use the
// package-level InitGlobal/Log/FlushGlobal/ExitGlobal functions instead of
// managing a Logger directly; Init exists for running more than one
// independent pipeline in the same process.
func Init(cfg *Config) (*Logger, error) {
	if len(cfg.appenders) == 0 {
		return nil, ErrNoAppenders
	}

	l := &Logger{
		level:    level.NewFilter(cfg.level),
		filter:   cfg.filter,
		numSinks: len(cfg.appenders),
		closers:  cfg.closers,
	}
	if cfg.chanCap > 0 {
		l.submission = queue.NewBounded[*record.Record](cfg.chanCap)
	} else {
		l.submission = queue.NewUnbounded[*record.Record]()
	}
	l.dispatcher = dispatch.New(l.submission, cfg.formatter, cfg.appenders, cfg.sinkCap)

	go l.dispatcher.Run()
	return l, nil
}

// Enabled reports whether lvl currently passes this Logger's filter.
func (l *Logger) Enabled(lvl level.Level) bool {
	return l.level.Enabled(lvl)
}

// SetLevel changes the minimum severity that reaches the submission
// queue. Safe to call concurrently with Log.
func (l *Logger) SetLevel(lvl level.Level) {
	l.level.Store(lvl)
}

// Log submits one record if lvl passes the active level filter and the
// configured Filter does not drop it. It never blocks on I/O; it can
// only block if the submission queue is bounded and full.
func (l *Logger) Log(lvl level.Level, target, message string) {
	l.LogCaller(lvl, target, message, 0)
}

// LogCaller is like Log but attaches call-site information captured
// skip frames above the caller of LogCaller.
func (l *Logger) LogCaller(lvl level.Level, target, message string, skip int) {
	if !l.Enabled(lvl) {
		return
	}
	r := record.New(lvl, target, message, "", "", 0, false, time.Now())
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		r.File = file
		r.Line = line
		r.LineOk = true
	}
	if l.filter(r) {
		return
	}
	l.submission.Send(r)
}

// Flush submits a Flush command and blocks until every appender has
// drained past it, giving the caller a happens-before guarantee over
// everything submitted earlier.
func (l *Logger) Flush() {
	b := barrier.New(l.numSinks)
	r := record.New(level.Info, "", "", "", "", 0, false, time.Now())
	r.Command = record.Flush(b)
	l.submission.Send(r)
	b.Wait()
}

// Exit flushes, then submits an Exit command and blocks until the
// dispatcher and every sink worker have terminated and every appender
// opened by the Config builder methods has been closed.
func (l *Logger) Exit() error {
	l.Flush()

	r := record.New(level.Info, "", "", "", "", 0, false, time.Now())
	r.Command = record.Exit()
	l.submission.Send(r)

	<-l.dispatcher.Done()

	var errs []error
	for _, closeFn := range l.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("fastlog: %d appender(s) failed to close: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// global is the process-wide default Logger installed by InitGlobal.
var (
	globalMu sync.Mutex
	global   *Logger
)

// InitGlobal installs cfg as the process-wide default Logger. It is an
// error to call it twice without an intervening ExitGlobal.
func InitGlobal(cfg *Config) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		return ErrAlreadyInitialized
	}
	l, err := Init(cfg)
	if err != nil {
		return err
	}
	global = l
	return nil
}

// ExitGlobal flushes and tears down the process-wide default Logger.
func ExitGlobal() error {
	globalMu.Lock()
	l := global
	global = nil
	globalMu.Unlock()

	if l == nil {
		return ErrNotInitialized
	}
	return l.Exit()
}

// FlushGlobal flushes the process-wide default Logger.
func FlushGlobal() error {
	globalMu.Lock()
	l := global
	globalMu.Unlock()
	if l == nil {
		return ErrNotInitialized
	}
	l.Flush()
	return nil
}

// Log submits a record through the process-wide default Logger.
func Log(lvl level.Level, target, message string) {
	globalMu.Lock()
	l := global
	globalMu.Unlock()
	if l == nil {
		return
	}
	l.LogCaller(lvl, target, message, 1)
}

// Error, Warn, Info, Debug, and Trace are convenience wrappers over Log
// at their matching level.
func Error(target, message string) { logGlobal(level.Error, target, message) }
func Warn(target, message string)  { logGlobal(level.Warn, target, message) }
func Info(target, message string)  { logGlobal(level.Info, target, message) }
func Debug(target, message string) { logGlobal(level.Debug, target, message) }
func Trace(target, message string) { logGlobal(level.Trace, target, message) }

func logGlobal(lvl level.Level, target, message string) {
	globalMu.Lock()
	l := global
	globalMu.Unlock()
	if l == nil {
		return
	}
	l.LogCaller(lvl, target, message, 2)
}
