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
	register("json", func(context.Context, struct{}) (Formatter, error) {
		return NewJSONFormatter(), nil
	})
}

// JSONFormatter renders a record as a single line of JSON, backed by
// zapcore's JSON encoder.
//
// zapcore.Encoder is not safe for concurrent use; JSONFormatter keeps a
// prototype encoder and Clone()s it on every Format call, which is cheap
// and makes concurrent Format calls independent.
type JSONFormatter struct {
	base zapcore.Encoder
}

var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter constructs a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{base: zapcore.NewJSONEncoder(fzap.EncoderConfig())}
}

// Name returns "json".
func (f *JSONFormatter) Name() string { return "json" }

// Format encodes r as one line of JSON.
func (f *JSONFormatter) Format(r *record.Record) (string, error) {
	enc := f.base.Clone()
	buf, err := enc.EncodeEntry(fzap.ToEntry(r), fzap.ToFields(r))
	if err != nil {
		return "", err
	}
	out := fzap.StripTrailingNewline(buf.String())
	buf.Free()
	return out, nil
}
