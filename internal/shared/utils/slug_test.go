package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Arduino Projects", "arduino-projects"},
		{"already a slug", "arduino-projects", "arduino-projects"},
		{"punctuation collapses", "Ohm's Law: The Basics!", "ohm-s-law-the-basics"},
		{"multiple spaces", "LED   Matrix   Driver", "led-matrix-driver"},
		{"leading and trailing junk", "  ---555 Timer---  ", "555-timer"},
		{"unicode stripped", "Résumé Circuits", "r-sum-circuits"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{"Arduino Projects", "Ohm's Law: The Basics!", "555 Timer"}
	for _, input := range inputs {
		once := GenerateSlug(input)
		assert.Equal(t, once, GenerateSlug(once), "slug of a slug must be itself: %q", input)
	}
}
