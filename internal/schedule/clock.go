package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// dayStart is the fixed wall-clock anchor for greedy placement: 9:00 AM
// expressed as minutes since midnight.
const dayStart = 9 * 60

// Label renders minutes-since-midnight as a 12-hour clock label with
// zero-padded minutes, e.g. 540 -> "9:00 AM", 765 -> "12:45 PM".
func Label(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	period := "AM"
	switch {
	case hours == 0:
		hours = 12
	case hours == 12:
		period = "PM"
	case hours > 12:
		hours -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hours, mins, period)
}

// ParseLabel is the inverse of Label. Used by time-sorted views and
// conflict detection.
func ParseLabel(s string) (int, error) {
	clock, period, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return 0, fmt.Errorf("invalid time label %q, expected \"H:MM AM\"", s)
	}
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time label %q, expected \"H:MM AM\"", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 1 || h > 12 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	switch strings.ToUpper(period) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, fmt.Errorf("invalid period in %q (want AM or PM)", s)
	}
	return h*60 + m, nil
}
