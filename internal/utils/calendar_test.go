package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	ts := time.Date(2026, 3, 11, 15, 4, 5, 0, loc)

	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), StartOfDay(ts))
	assert.Equal(t, time.Date(2026, 3, 11, 23, 59, 59, int(999*time.Millisecond), loc), EndOfDay(ts))
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, loc), NextMidnight(ts))

	assert.True(t, SameDay(time.Date(2026, 3, 11, 0, 0, 0, 0, loc), ts))
	assert.True(t, SameDay(EndOfDay(ts), ts))
	assert.False(t, SameDay(NextMidnight(ts), ts))
}

func TestPenaltyWeek(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
	}{
		{"monday", time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)},
		{"sunday night", time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), StartOfPenaltyWeek(tt.at))
			end := EndOfPenaltyWeek(tt.at)
			assert.Equal(t, time.Sunday, end.Weekday())
			assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
		})
	}
}

func TestJournalWeekStartsSunday(t *testing.T) {
	wed := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), StartOfJournalWeek(wed))

	sun := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), StartOfJournalWeek(sun))
}

func TestDayKeyRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-02", DayKey(ts))

	parsed, err := ParseDayKey("2026-01-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, StartOfDay(ts), parsed)

	_, err = ParseDayKey("not-a-date", time.UTC)
	assert.Error(t, err)
}
