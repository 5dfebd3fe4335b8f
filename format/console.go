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

	"go.uber.org/zap/zapcore"

	fzap "dirpx.dev/fastlog/format/internal"
	"dirpx.dev/fastlog/record"
)

func init() {
	register("console", func(context.Context, struct{}) (Formatter, error) {
		return NewConsoleFormatter(), nil
	})
}

// ConsoleFormatter renders a record in zap's human-friendly console
// layout (tab-separated timestamp, level, message, fields).
type ConsoleFormatter struct {
	base zapcore.Encoder
}

var _ Formatter = (*ConsoleFormatter)(nil)

// NewConsoleFormatter constructs a ConsoleFormatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{base: zapcore.NewConsoleEncoder(fzap.EncoderConfig())}
}

// Name returns "console".
func (f *ConsoleFormatter) Name() string { return "console" }

// Format encodes r using zap's console encoder.
func (f *ConsoleFormatter) Format(r *record.Record) (string, error) {
	enc := f.base.Clone()
	buf, err := enc.EncodeEntry(fzap.ToEntry(r), fzap.ToFields(r))
	if err != nil {
		return "", err
	}
	out := fzap.StripTrailingNewline(buf.String())
	buf.Free()
	return out, nil
}
