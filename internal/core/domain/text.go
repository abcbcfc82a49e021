package domain

import "unicode/utf8"

// Truncate shortens s to at most limit characters (runes).
// A non-positive limit disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// Rule extracts a candidate string from a value. An empty result means the
// rule does not apply.
type Rule[T any] func(T) string

// FirstNonEmpty evaluates rules in order and returns the first non-empty
// result, or fallback when none match.
func FirstNonEmpty[T any](v T, rules []Rule[T], fallback string) string {
	for _, rule := range rules {
		if s := rule(v); s != "" {
			return s
		}
	}
	return fallback
}
