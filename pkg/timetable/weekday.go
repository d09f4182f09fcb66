package timetable

import "strings"

// Canonical weekday codes in timetable order.
var WeekdayCodes = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// CanonicalWeekday folds a weekday token ("Monday", "mon", " TUE ") into its
// 3 letter code. Unrecognized tokens report false and are dropped by callers.
func CanonicalWeekday(token string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(token))
	if len(code) > 3 {
		code = code[:3]
	}

	for _, known := range WeekdayCodes {
		if code == known {
			return code, true
		}
	}

	return "", false
}

// CanonicalWeekdays canonicalizes a token set, silently dropping anything
// unrecognized.
func CanonicalWeekdays(tokens []string) []string {
	var days []string

	for _, token := range tokens {
		code, ok := CanonicalWeekday(token)
		if !ok {
			continue
		}

		duplicate := false
		for _, existing := range days {
			if existing == code {
				duplicate = true
				break
			}
		}

		if !duplicate {
			days = append(days, code)
		}
	}

	return days
}

// ExpandDayMask converts a positional "MTWTFSS" operating mask into weekday
// codes. A '-' (or any other character) at a position means the connection
// does not run that day.
func ExpandDayMask(mask string) []string {
	maskCharacters := []byte{'M', 'T', 'W', 'T', 'F', 'S', 'S'}

	var days []string
	for index := 0; index < len(mask) && index < 7; index++ {
		if mask[index] == maskCharacters[index] {
			days = append(days, WeekdayCodes[index])
		}
	}

	return days
}
