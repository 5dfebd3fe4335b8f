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

// Package bridge lets fastlog stand in as the backend behind log/slog,
// Go's standard logging façade. Handler implements slog.Handler.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dirpx.dev/fastlog"
	"dirpx.dev/fastlog/level"
)

// Handler adapts an *fastlog.Logger into an slog.Handler. Attrs (from
// WithAttrs and from each record) are appended to the message as
// " key=value" pairs and groups namespace the target ("target.group"),
// since fastlog carries no structured field map of its own.
type Handler struct {
	logger *fastlog.Logger
	target string
	attrs  string
}

var _ slog.Handler = (*Handler)(nil)

// New wraps logger as an slog.Handler reporting under target.
func New(logger *fastlog.Logger, target string) *Handler {
	return &Handler{logger: logger, target: target}
}

// Enabled reports whether lvl passes the wrapped Logger's active level.
func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return h.logger.Enabled(toFastlogLevel(lvl))
}

// Handle submits r through the wrapped Logger.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	if h.attrs != "" {
		b.WriteByte(' ')
		b.WriteString(h.attrs)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	h.logger.Log(toFastlogLevel(r.Level), h.target, b.String())
	return nil
}

// WithAttrs returns a new Handler that appends attrs to every record it
// handles from now on.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", a.Key, a.Value)
	}
	return &Handler{logger: h.logger, target: h.target, attrs: b.String()}
}

// WithGroup returns a new Handler whose target is namespaced under name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	target := name
	if h.target != "" {
		target = h.target + "." + name
	}
	return &Handler{logger: h.logger, target: target, attrs: h.attrs}
}

// toFastlogLevel maps slog's level onto fastlog's. slog.LevelInfo is the
// zero value and sits between Warn and Debug in fastlog's numbering, so
// this is a deliberate bucketing, not a 1:1 cast.
func toFastlogLevel(l slog.Level) level.Level {
	switch {
	case l >= slog.LevelError:
		return level.Error
	case l >= slog.LevelWarn:
		return level.Warn
	case l >= slog.LevelInfo:
		return level.Info
	case l >= slog.LevelDebug:
		return level.Debug
	default:
		return level.Trace
	}
}
