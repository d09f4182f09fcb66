package util

import "strings"

// NormalizeCity folds a city name into its canonical lookup form. All city
// identity in the network index goes through this one function so that an
// alternative identity scheme (station codes) only has to replace it here.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
