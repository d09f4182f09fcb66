package util

import "os"

// EnvironmentVariable returns the named variable or the fallback when unset
// or empty.
func EnvironmentVariable(name string, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}
