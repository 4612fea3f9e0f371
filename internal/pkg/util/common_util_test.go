package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampOrDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty falls back", "", 10},
		{"non-numeric falls back", "abc", 10},
		{"below min falls back", "0", 10},
		{"above max falls back", "101", 10},
		{"negative falls back", "-5", 10},
		{"min boundary kept", "1", 1},
		{"max boundary kept", "100", 100},
		{"in range kept", "25", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampOrDefault(tt.raw, 1, 100, 10))
		})
	}
}
