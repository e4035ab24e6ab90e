package util

import (
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "already normalized", email: "owner@example.com", expected: "owner@example.com"},
		{name: "mixed case", email: "Owner@Example.COM", expected: "owner@example.com"},
		{name: "surrounding spaces", email: "  owner@example.com\t", expected: "owner@example.com"},
		{name: "empty", email: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.email); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Corner Shop", expected: "Corner Shop"},
		{name: "inner runs", input: "12   High \n Street", expected: "12 High Street"},
		{name: "surrounding spaces", input: "  Alice  ", expected: "Alice"},
		{name: "whitespace only", input: " \t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeText(tt.input); got != tt.expected {
				t.Fatalf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		avg      float64
		expected float64
	}{
		{name: "zero", avg: 0, expected: 0},
		{name: "exact", avg: 4, expected: 4},
		{name: "thirds", avg: 11.0 / 3.0, expected: 3.67},
		{name: "half up", avg: 2.345, expected: 2.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundAverage(tt.avg); got != tt.expected {
				t.Fatalf("RoundAverage(%v) = %v, want %v", tt.avg, got, tt.expected)
			}
		})
	}
}
