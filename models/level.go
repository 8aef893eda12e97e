package models

import "strings"

// DefaultLevel is assumed whenever an entry carries a missing or
// unrecognized level tag.
const DefaultLevel = "A1"

// Levels lists the CEFR buckets from easiest to hardest.
var Levels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// ParseLevel normalizes a level tag. Matching is case-insensitive and
// anything outside the known buckets collapses to DefaultLevel.
func ParseLevel(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range Levels {
		if l == up {
			return l
		}
	}
	return DefaultLevel
}

// IsLevel reports whether s names a known bucket (case-insensitive).
func IsLevel(s string) bool {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range Levels {
		if l == up {
			return true
		}
	}
	return false
}
