package util

import (
	"strconv"
)

// ClampOrDefault parses a raw limit string and clamps it to [min, max].
// Non-numeric, missing, or out-of-range input silently falls back to def.
func ClampOrDefault(raw string, min, max, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min || n > max {
		return def
	}
	return n
}

// PtrString converts a string to *string.
func PtrString(s string) *string {
	return &s
}
