package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/record"
)

func sampleRecord() *record.Record {
	return record.New(level.Info, "db", "connection established", "pkg/db", "db.go", 42, true,
		time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC))
}

func TestLineFormatterLayout(t *testing.T) {
	line, err := LineFormatter{}.Format(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14 09:26:53.589793238 INFO  db - connection established", line)
}

func TestLineFormatterOmitsEmptyTarget(t *testing.T) {
	r := sampleRecord()
	r.Target = ""
	line, err := LineFormatter{}.Format(r)
	require.NoError(t, err)
	assert.NotContains(t, line, " - ")
}

func TestJSONFormatterProducesParsableFields(t *testing.T) {
	f := NewJSONFormatter()
	line, err := f.Format(sampleRecord())
	require.NoError(t, err)
	assert.Contains(t, line, `"msg":"connection established"`)
	assert.Contains(t, line, `"level":"info"`)
	assert.Contains(t, line, `"target":"db"`)
}

func TestConsoleFormatterContainsMessage(t *testing.T) {
	f := NewConsoleFormatter()
	line, err := f.Format(sampleRecord())
	require.NoError(t, err)
	assert.Contains(t, line, "connection established")
	assert.Contains(t, line, "info")
}

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"line", "json", "console"} {
		fmtr, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, fmtr.Name())
	}
}

func TestLookupUnknownFails(t *testing.T) {
	_, ok := Lookup("xml")
	assert.False(t, ok)
}
