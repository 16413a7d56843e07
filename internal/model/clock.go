package model

import (
	"fmt"
	"time"
)

const ClockLayout = "15:04"

// Clock is a time of day with no date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock accepts exactly HH:MM with a zero-padded 24-hour hour.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// AddHours moves the hour field, wrapping within the day.
func (c Clock) AddHours(n int) Clock {
	c.Hour = ((c.Hour+n)%24 + 24) % 24
	return c
}

// AddMinutes moves the minute field, wrapping within the hour.
func (c Clock) AddMinutes(n int) Clock {
	c.Minute = ((c.Minute+n)%60 + 60) % 60
	return c
}

// FormatClock renders the local time of day of t.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
