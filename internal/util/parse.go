package util

import "strconv"

// ParseInt parses a string to an integer, returning defaultValue if parsing fails
func ParseInt(s string, defaultValue int) int {
	if val, err := strconv.Atoi(s); err == nil {
		return val
	}
	return defaultValue
}

// ParsePage parses a ?page= query value. Missing, non-numeric or
// non-positive values all mean page 1.
func ParsePage(s string) int {
	page := ParseInt(s, 1)
	if page < 1 {
		return 1
	}
	return page
}

// ParseUint parses a string to a uint, returning an error for anything that
// is not a positive decimal integer.
func ParseUint(s string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
