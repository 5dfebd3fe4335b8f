package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripKnownValue(t *testing.T) {
	const s = "1234-12-13 11:12:13.112345678"
	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, s, Format(parsed))
}

func TestRoundTripAcrossYears(t *testing.T) {
	years := []int{1970, 1999, 2000, 2026, 9999}
	for _, y := range years {
		tm := time.Date(y, time.March, 4, 5, 6, 7, 89_123_456, time.UTC)
		s := Format(tm)
		parsed, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(parsed))
	}
}

func TestSortableIsMonotonic(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(time.Nanosecond)
	assert.Less(t, Sortable(a), Sortable(b))
}
