package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymd(t time.Time) (int, time.Month, int) {
	return t.Year(), t.Month(), t.Day()
}

func TestParseDateISO(t *testing.T) {
	y, m, d := ymd(ParseDate("2024-03-15"))
	assert.Equal(t, [3]int{2024, 3, 15}, [3]int{y, int(m), d})
}

func TestParseDateUSPrecedence(t *testing.T) {
	// Ambiguous under US and EU rules; the US layout sits in the generic
	// pass, so month-first wins.
	y, m, d := ymd(ParseDate("03/04/2024"))
	assert.Equal(t, [3]int{2024, 3, 4}, [3]int{y, int(m), d})
}

func TestParseDateDayFirstWhenUSImpossible(t *testing.T) {
	y, m, d := ymd(ParseDate("15/03/2024"))
	assert.Equal(t, [3]int{2024, 3, 15}, [3]int{y, int(m), d})
}

func TestParseDateTwoDigitYear(t *testing.T) {
	y, m, d := ymd(ParseDate("03/15/24"))
	assert.Equal(t, [3]int{2024, 3, 15}, [3]int{y, int(m), d})
}

func TestParseDateDashSeparators(t *testing.T) {
	y, m, d := ymd(ParseDate("15-03-2024"))
	assert.Equal(t, [3]int{2024, 3, 15}, [3]int{y, int(m), d})
}

func TestParseDateDatetime(t *testing.T) {
	got := ParseDate("2024-03-15 13:45:00")
	y, m, d := ymd(got)
	require.Equal(t, [3]int{2024, 3, 15}, [3]int{y, int(m), d})
	assert.Equal(t, 13, got.Hour())
}

func TestParseDateNoRollover(t *testing.T) {
	// 31/02/2024 is day-first but Feb 31 does not exist; nothing else
	// parses it either, so the fallback kicks in.
	got := ParseDate("31/02/2024")
	assert.WithinDuration(t, time.Now(), got, time.Minute, "invalid components fall back to now")
}

func TestParseDateGarbageFallsBackToNow(t *testing.T) {
	got := ParseDate("not a date")
	assert.WithinDuration(t, time.Now(), got, time.Minute)
}

func TestParseDateEmpty(t *testing.T) {
	assert.WithinDuration(t, time.Now(), ParseDate("  "), time.Minute)
}
