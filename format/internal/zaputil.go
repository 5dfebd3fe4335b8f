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

// Package internal hosts shared zapcore plumbing for format.JSONFormatter
// and format.ConsoleFormatter.
package internal

import (
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/record"
)

// EncoderConfig returns the zap EncoderConfig shared by both zap-backed
// formatters. Caller/name/stack keys are left empty: fastlog controls
// call-site attribution at the record level, not the encoder level.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     "\n",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// ToZapLevel maps fastlog's level onto the nearest zapcore.Level.
func ToZapLevel(l level.Level) zapcore.Level {
	switch l {
	case level.Trace, level.Debug:
		return zapcore.DebugLevel
	case level.Info:
		return zapcore.InfoLevel
	case level.Warn:
		return zapcore.WarnLevel
	case level.Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ToEntry builds the zapcore.Entry a formatter hands to EncodeEntry.
func ToEntry(r *record.Record) zapcore.Entry {
	return zapcore.Entry{
		Time:    r.Time,
		Level:   ToZapLevel(r.Level),
		Message: r.Message,
	}
}

// ToFields returns the extra structured fields attached to a record: just
// target and call-site, since fastlog carries no arbitrary field map
// (structured/hierarchical contexts are out of scope).
func ToFields(r *record.Record) []zapcore.Field {
	fields := make([]zapcore.Field, 0, 3)
	if r.Target != "" {
		fields = append(fields, zapcore.Field{Key: "target", Type: zapcore.StringType, String: r.Target})
	}
	if r.LineOk {
		fields = append(fields, zapcore.Field{
			Key:    "caller",
			Type:   zapcore.StringType,
			String: r.File + ":" + strconv.Itoa(r.Line),
		})
	}
	return fields
}

// StripTrailingNewline removes exactly one trailing '\n', matching the
// convention that Formatter.Format returns an unterminated line: the
// appender decides framing.
func StripTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
