package core

import (
	"math"
	"strings"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// RoundHalfUp rounds x to the nearest integer, halves going up.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundHalfUpTo rounds x to `places` decimal places, halves going up.
func RoundHalfUpTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return RoundHalfUp(x*p) / p
}
