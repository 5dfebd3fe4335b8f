package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "app.log")

	f, err := Open(path, 0)
	require.NoError(t, err)
	defer f.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestAppendAndLen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f, err := Open(path, 0)
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Append([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	size, err := f.Len()
	require.NoError(t, err)
	assert.EqualValues(t, 6, size)
}

func TestTruncateResetsLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f, err := Open(path, 0)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Append([]byte("some bytes"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate())

	size, err := f.Len()
	require.NoError(t, err)
	assert.Zero(t, size)

	_, err = f.Append([]byte("fresh"))
	require.NoError(t, err)
	size, err = f.Len()
	require.NoError(t, err)
	assert.EqualValues(t, 5, size)
}

func TestCloneIsIndependentDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f, err := Open(path, 0)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Append([]byte("abc"))
	require.NoError(t, err)

	clone, err := f.Clone()
	require.NoError(t, err)
	defer clone.Close()

	// Closing the clone must not affect the original's ability to write.
	require.NoError(t, clone.Close())

	_, err = f.Append([]byte("def"))
	require.NoError(t, err)

	size, err := f.Len()
	require.NoError(t, err)
	assert.EqualValues(t, 6, size)
}
