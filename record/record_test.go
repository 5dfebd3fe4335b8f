package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/fastlog/barrier"
	"dirpx.dev/fastlog/level"
)

func TestNewIsKindRecord(t *testing.T) {
	r := New(level.Info, "t", "hello", "pkg", "main.go", 10, true, time.Now())
	assert.Equal(t, KindRecord, r.Command.Kind)
	assert.Empty(t, r.Formatted)
	assert.Equal(t, "hello", r.Message)
}

func TestCommandConstructors(t *testing.T) {
	assert.Equal(t, KindExit, Exit().Kind)

	b := barrier.New(1)
	c := Flush(b)
	assert.Equal(t, KindFlush, c.Kind)
	assert.Same(t, b, c.Barrier)
}
