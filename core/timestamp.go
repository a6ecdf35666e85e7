// Package core: timestamp parsing and end-of-day normalization.

package core

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the calendar-date prefix of TimeLayout.
const dateLayout = "2006-01-02"

// endOfDay is the clock text some schedules emit for midnight at the end
// of a day; time.Parse rejects it, so it is rewritten before parsing.
const endOfDay = " 24:00:00"

// ParseTimestamp parses a TimeLayout timestamp text. A time-of-day of
// 24:00:00 on date D normalizes to 00:00:00 on D+1 before parsing.
// Returns ErrBadTimestamp (wrapped with the offending text) on malformed
// input. Instants are UTC; the schedule carries no zone information.
func ParseTimestamp(s string) (time.Time, error) {
	if strings.HasSuffix(s, endOfDay) {
		day, err := time.Parse(dateLayout, strings.TrimSuffix(s, endOfDay))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
		}

		return day.AddDate(0, 0, 1), nil
	}

	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	return t, nil
}
