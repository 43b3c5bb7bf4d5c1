// Package dateview tracks which calendar day is on screen and derives the
// navigation strip around it. Nothing here is persisted; the selection resets
// to today on every fresh start.
package dateview

import (
	"fmt"
	"time"

	"dayplan/internal/model"
)

// Day describes one entry of the navigation strip.
type Day struct {
	Date       string
	DayOfMonth int
	Weekday    string
	IsToday    bool
}

type Selector struct {
	selected time.Time
	now      func() time.Time
}

type Option func(*Selector)

// WithClock fixes the selector's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Selector) {
		s.now = now
	}
}

func NewSelector(opts ...Option) *Selector {
	s := &Selector{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.selected = truncateToDay(s.now())
	return s
}

// Selected returns the selected day in YYYY-MM-DD form.
func (s *Selector) Selected() string {
	return s.selected.Format(model.DateLayout)
}

// Next moves one day forward; month and year boundaries roll over.
func (s *Selector) Next() {
	s.selected = s.selected.AddDate(0, 0, 1)
}

// Previous moves one day back.
func (s *Selector) Previous() {
	s.selected = s.selected.AddDate(0, 0, -1)
}

// JumpToToday resets the selection to the current calendar day.
func (s *Selector) JumpToToday() {
	s.selected = truncateToDay(s.now())
}

// Select jumps to an explicit day, e.g. a tap on the strip.
func (s *Selector) Select(date string) error {
	parsed, err := time.ParseInLocation(model.DateLayout, date, s.selected.Location())
	if err != nil {
		return fmt.Errorf("dateview: parse date %q: %w", date, err)
	}
	s.selected = parsed
	return nil
}

// Window returns the strip spanning before days prior through after days past
// the current selection.
func (s *Selector) Window(before, after int) []Day {
	return WindowAround(s.selected, before, after, s.now())
}

// WindowAround is the pure form of Window: an ordered run of day descriptors
// centered on date, with IsToday derived from now.
func WindowAround(date time.Time, before, after int, now time.Time) []Day {
	today := truncateToDay(now)
	days := make([]Day, 0, before+after+1)
	for offset := -before; offset <= after; offset++ {
		d := date.AddDate(0, 0, offset)
		days = append(days, Day{
			Date:       d.Format(model.DateLayout),
			DayOfMonth: d.Day(),
			Weekday:    d.Format("Mon"),
			IsToday:    sameDay(d, today),
		})
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
