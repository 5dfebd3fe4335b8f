package fastlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fastlog/appender"
	"dirpx.dev/fastlog/appender/console"
	"dirpx.dev/fastlog/level"
	"dirpx.dev/fastlog/packer"
	"dirpx.dev/fastlog/record"
)

type countingAppender struct {
	mu    sync.Mutex
	count int
}

func (a *countingAppender) Name() string { return "counting" }
func (a *countingAppender) WriteBatch(batch []*record.Record) {
	a.mu.Lock()
	a.count += len(batch)
	a.mu.Unlock()
}
func (a *countingAppender) Flush() {}

func TestInitRejectsEmptyConfig(t *testing.T) {
	_, err := Init(New())
	assert.ErrorIs(t, err, ErrNoAppenders)
}

func TestFlushCompletesAfterOneMillionRecords(t *testing.T) {
	sink := &countingAppender{}
	l, err := Init(New().Custom(sink))
	require.NoError(t, err)

	const n = 1_000_000
	for i := 0; i < n; i++ {
		l.Log(level.Info, "bench", "x")
	}
	l.Flush()

	sink.mu.Lock()
	got := sink.count
	sink.mu.Unlock()
	assert.Equal(t, n, got)

	require.NoError(t, l.Exit())
}

func TestLevelFilterDropsBelowThreshold(t *testing.T) {
	sink := &countingAppender{}
	l, err := Init(New().Custom(sink).Level(level.Warn))
	require.NoError(t, err)

	l.Log(level.Debug, "t", "dropped")
	l.Log(level.Info, "t", "dropped")
	l.Log(level.Error, "t", "kept")
	l.Flush()

	sink.mu.Lock()
	got := sink.count
	sink.mu.Unlock()
	assert.Equal(t, 1, got)

	require.NoError(t, l.Exit())
}

func TestConsoleOutputPreservesOrderAcrossTwoWriters(t *testing.T) {
	var buf bytes.Buffer
	l, err := Init(New().Custom(console.NewWriter(&buf)))
	require.NoError(t, err)

	const perWriter = 2000
	var wg sync.WaitGroup
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Log(level.Info, "w"+strconv.Itoa(writer), strconv.Itoa(i))
			}
		}(w)
	}
	wg.Wait()
	l.Flush()
	require.NoError(t, l.Exit())

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 2*perWriter, lines)

	// Restricted to one writer's target, messages appear in the order that
	// writer submitted them: "<date> <time> INFO  w<n> - <i>".
	next := map[string]int{}
	for _, ln := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		fields := strings.Fields(ln)
		require.Len(t, fields, 6)
		writer, seq := fields[3], fields[5]
		require.Equal(t, strconv.Itoa(next[writer]), seq, "writer %s out of order", writer)
		next[writer]++
	}
	assert.Equal(t, perWriter, next["w0"])
	assert.Equal(t, perWriter, next["w1"])
}

func TestSplitAppenderWithNullPackerByteForByte(t *testing.T) {
	dir := t.TempDir()
	l, err := Init(New().Split(dir, "svc", 64, nil, packer.NullPacker{}))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		l.Log(level.Info, "t", "0123456789")
	}
	l.Flush()
	require.NoError(t, l.Exit())

	var total []byte
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		total = append(total, b...)
	}
	assert.Equal(t, 50, bytes.Count(total, []byte("0123456789")))
}

func TestExitClosesOpenedAppenders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	l, err := Init(New().File(path))
	require.NoError(t, err)

	l.Log(level.Info, "t", "hello")
	require.NoError(t, l.Exit())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "hello")
}

func TestGlobalInitLogExit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitGlobal(New().Custom(console.NewWriter(&buf))))

	Info("t", "global hello")
	require.NoError(t, FlushGlobal())
	require.NoError(t, ExitGlobal())

	assert.Contains(t, buf.String(), "global hello")
}

func TestGlobalInitTwiceFails(t *testing.T) {
	require.NoError(t, InitGlobal(New().Custom(&countingAppender{})))
	defer ExitGlobal()

	err := InitGlobal(New().Custom(&countingAppender{}))
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

var _ appender.Appender = (*countingAppender)(nil)
