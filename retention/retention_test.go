package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func archivesAt(times ...int) []Archive {
	out := make([]Archive, len(times))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, t := range times {
		out[i] = Archive{
			Path: "a",
			At:   base.Add(time.Duration(t) * time.Hour),
			Size: 100,
		}
	}
	return out
}

func TestKeepAll(t *testing.T) {
	got := KeepAll{}.SelectForDeletion(archivesAt(1, 2, 3))
	assert.Empty(t, got)
}

func TestKeepLastK(t *testing.T) {
	// Deliberately out of order; policy must sort by age itself.
	archives := archivesAt(3, 1, 2, 4, 0)
	got := KeepLastK{K: 2}.SelectForDeletion(archives)
	assert.Len(t, got, 3)
	for _, a := range got {
		assert.LessOrEqual(t, a.At.Hour(), 2)
	}
}

func TestKeepLastKFewerThanK(t *testing.T) {
	got := KeepLastK{K: 10}.SelectForDeletion(archivesAt(0, 1))
	assert.Empty(t, got)
}

func TestKeepBySize(t *testing.T) {
	archives := []Archive{
		{Path: "oldest", At: time.Unix(0, 0), Size: 100},
		{Path: "mid", At: time.Unix(10, 0), Size: 100},
		{Path: "newest", At: time.Unix(20, 0), Size: 100},
	}
	got := KeepBySize{MaxBytes: 150}.SelectForDeletion(archives)
	// Budget fits only the newest 100 bytes; mid + oldest must go.
	assert.Len(t, got, 2)
	names := []string{got[0].Path, got[1].Path}
	assert.Contains(t, names, "oldest")
	assert.Contains(t, names, "mid")
}

func TestKeepBySizeEverythingFits(t *testing.T) {
	archives := archivesAt(0, 1, 2)
	got := KeepBySize{MaxBytes: 10_000}.SelectForDeletion(archives)
	assert.Empty(t, got)
}
