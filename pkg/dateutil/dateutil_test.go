package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayID(t *testing.T) {
	at := time.Date(2023, time.May, 7, 23, 59, 59, 0, time.UTC)
	require.Equal(t, "2023-05-07", DayID(at))
}

func TestNextMidnight(t *testing.T) {
	at := time.Date(2023, time.May, 7, 13, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2023, time.May, 8, 0, 0, 0, 0, time.UTC), NextMidnight(at))

	// The last day of a month rolls into the next month.
	at = time.Date(2023, time.January, 31, 1, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), NextMidnight(at))
}

func TestRemaining(t *testing.T) {
	now := time.Date(2023, time.May, 7, 13, 30, 15, 0, time.UTC)
	deadline := time.Date(2023, time.May, 8, 0, 0, 0, 0, time.UTC)

	h, m, s := Remaining(now, deadline)
	require.Equal(t, 10, h)
	require.Equal(t, 29, m)
	require.Equal(t, 45, s)

	// Strictly decreasing before the deadline.
	h1, m1, s1 := Remaining(now.Add(time.Second), deadline)
	require.True(t, h1*3600+m1*60+s1 < h*3600+m*60+s)

	// Clamped to zero after the deadline.
	h, m, s = Remaining(deadline.Add(time.Second), deadline)
	require.Equal(t, 0, h)
	require.Equal(t, 0, m)
	require.Equal(t, 0, s)
}
