package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseOptionalPositiveNumber parses a raw form value into a finite number
// greater than zero. ok is false for empty, non-numeric, zero, negative or
// non-finite input; callers skip the application in that case.
func ParseOptionalPositiveNumber(raw string) (value float64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseOptionalCount parses a raw row or tile count. Fractional input is
// truncated toward zero. present is false when raw is blank; ok is false when
// raw is present but not a non-negative number.
func ParseOptionalCount(raw string) (count int, present bool, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, true, false
	}
	return int(v), true, true
}

// IsPositive reports whether v is a finite number greater than zero.
func IsPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
