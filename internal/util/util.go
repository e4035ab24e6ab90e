package util

import (
	"math"
	"strings"
)

// NormalizeEmail trims and lower-cases an email address. Emails are stored and
// looked up in this form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeText trims surrounding whitespace and collapses inner runs of
// whitespace into single spaces.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RoundAverage rounds an average rating to two decimal places.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*100) / 100
}
