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

// Package format converts a record.Record into the bytes an appender
// writes. The dispatcher calls a Formatter exactly once per record,
// filling in record.Record.Formatted before fan-out.
package format

import (
	"context"

	"dirpx.dev/fastlog/internal/registry"
	"dirpx.dev/fastlog/record"
)

// Formatter renders a record into its on-the-wire text. Implementations
// must be safe for concurrent use: one Formatter value may be given to
// several Configs, and each pipeline's dispatcher goroutine calls it
// independently.
type Formatter interface {
	// Format returns the rendered line for r, without writing it anywhere.
	Format(r *record.Record) (string, error)

	// Name returns a short stable identifier ("line", "json", "console").
	Name() string
}

// registered is the process-wide registry of built-in formatters, keyed by
// name under the "format" kind. Custom formatters need not register here;
// Config accepts a Formatter value directly.
var registered = registry.New[Formatter, struct{}](registry.WithCaseFoldLower[Formatter, struct{}]())

func register(name string, b registry.Builder[Formatter, struct{}]) {
	registry.MustRegister(registered, registry.Key{Kind: "format", Name: name}, b)
}

// Lookup returns a fresh Formatter registered under name, or false if no
// such builder exists.
func Lookup(name string) (Formatter, bool) {
	f, err := registered.Build(context.Background(), registry.Key{Kind: "format", Name: name}, struct{}{})
	if err != nil {
		return nil, false
	}
	return f, true
}
