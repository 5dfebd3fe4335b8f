package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/record"
)

func formatted(text string) *record.Record {
	r := record.New(level.Info, "t", text, "", "", 0, false, time.Unix(0, 0))
	r.Formatted = text
	return r
}

func TestWriteBatchWritesEachLine(t *testing.T) {
	var buf bytes.Buffer
	a := NewWriter(&buf)

	a.WriteBatch([]*record.Record{formatted("first"), formatted("second")})

	assert.Equal(t, "first\nsecond\n", buf.String())
}

func TestNameIsConsole(t *testing.T) {
	a := New()
	require.Equal(t, "console", a.Name())
}
