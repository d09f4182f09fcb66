package util

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

const nightStartMinute = 22 * 60
const nightEndMinute = 6 * 60

// ClockMinutes converts a "HH:mm" timetable string into minutes since
// midnight. Malformed values map to 0, matching how the timetable data
// treats a missing clock.
func ClockMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// ClockDifference returns the minutes from one clock value to another,
// wrapping past midnight when the second value is earlier on the clock.
func ClockDifference(from string, to string) int {
	difference := ClockMinutes(to) - ClockMinutes(from)

	if difference < 0 {
		difference += minutesPerDay
	}

	return difference
}

// IsNightClock reports whether a clock value falls in the night window
// (before 06:00 or at/after 22:00)
func IsNightClock(hhmm string) bool {
	minutes := ClockMinutes(hhmm)

	return minutes < nightEndMinute || minutes >= nightStartMinute
}

func FormatMinutesDuration(minutes int) string {
	hours := minutes / 60
	remainder := minutes % 60

	if hours > 0 && remainder > 0 {
		return fmt.Sprintf("%dh %dm", hours, remainder)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dm", remainder)
}
