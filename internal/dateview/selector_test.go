package dateview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(iso string) func() time.Time {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

func TestSelectorStartsAtToday(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-01-15T23:30:00Z")))
	assert.Equal(t, "2024-01-15", s.Selected())
}

func TestNextRollsOverMonth(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-01-31T08:00:00Z")))
	s.Next()
	assert.Equal(t, "2024-02-01", s.Selected())
}

func TestPreviousRollsBackIntoLeapFebruary(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-03-01T08:00:00Z")))
	s.Previous()
	assert.Equal(t, "2024-02-29", s.Selected())
}

func TestNextRollsOverYear(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2023-12-31T08:00:00Z")))
	s.Next()
	assert.Equal(t, "2024-01-01", s.Selected())
}

func TestJumpToTodayAfterNavigation(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-01-15T08:00:00Z")))
	for i := 0; i < 10; i++ {
		s.Next()
	}
	assert.Equal(t, "2024-01-25", s.Selected())
	s.JumpToToday()
	assert.Equal(t, "2024-01-15", s.Selected())
}

func TestSelectExplicitDate(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-01-15T08:00:00Z")))
	require.NoError(t, s.Select("2024-02-29"))
	assert.Equal(t, "2024-02-29", s.Selected())

	require.Error(t, s.Select("29/02/2024"))
	assert.Equal(t, "2024-02-29", s.Selected(), "failed select leaves state unchanged")
}

func TestWindowShapeAndOrder(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-01-15T08:00:00Z")))
	days := s.Window(5, 5)
	require.Len(t, days, 11)

	assert.Equal(t, "2024-01-10", days[0].Date)
	assert.Equal(t, "2024-01-15", days[5].Date)
	assert.Equal(t, "2024-01-20", days[10].Date)

	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Date, days[i].Date, "strip must be ordered")
	}
}

func TestWindowMarksOnlyRealToday(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-01-15T08:00:00Z")))
	s.Next()
	s.Next()

	days := s.Window(5, 5)
	todayCount := 0
	for _, d := range days {
		if d.IsToday {
			todayCount++
			assert.Equal(t, "2024-01-15", d.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestWindowCrossesMonthBoundary(t *testing.T) {
	s := NewSelector(WithClock(clockAt("2024-02-01T08:00:00Z")))
	days := s.Window(2, 2)
	require.Len(t, days, 5)
	assert.Equal(t, "2024-01-30", days[0].Date)
	assert.Equal(t, "2024-02-03", days[4].Date)
	assert.Equal(t, 30, days[0].DayOfMonth)
	assert.Equal(t, "Tue", days[0].Weekday)
}
