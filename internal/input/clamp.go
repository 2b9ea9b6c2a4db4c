// Package input turns free-form text into a usable cell count.
package input

import (
	"strconv"
	"strings"
	"unicode"
)

// Clamp parses raw as an integer and forces it into [1, max]. Anything that
// does not start with a number, and zero, becomes 1. Trailing characters
// after the leading digits are ignored.
func Clamp(raw string, max int) int {
	if max < 1 {
		max = 1
	}
	n := parseLeadingInt(raw)
	if n == 0 {
		n = 1
	}
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// parseLeadingInt reads an optional sign and the run of digits that follows
// leading whitespace. Returns 0 when there are no digits. Values that do not
// fit an int saturate.
func parseLeadingInt(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only range errors are possible here.
		n = int(^uint(0) >> 1)
	}
	if neg {
		return -n
	}
	return n
}
