package rolling

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/record"
)

func line(text string) *record.Record {
	r := record.New(level.Info, "t", text, "", "", 0, false, time.Unix(0, 0))
	r.Formatted = text
	return r
}

func TestWriteBatchStaysInOneFileBelowThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a, err := New(path, 1<<20)
	require.NoError(t, err)
	defer a.Close()

	a.WriteBatch([]*record.Record{line("a"), line("b"), line("c")})

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(got))
}

func TestWriteBatchRotatesOnThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	// Small enough that the second record forces a rotation.
	a, err := New(path, 4)
	require.NoError(t, err)
	defer a.Close()

	a.WriteBatch([]*record.Record{line("aaaa"), line("bbbb")})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	// Active file + exactly one rotated segment.
	assert.Len(t, entries, 2)

	active, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bbbb\n", string(active))
}

func TestCloseMakesSubsequentWritesNoOps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a, err := New(path, 1<<20)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a.WriteBatch([]*record.Record{line("after close")})

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}
