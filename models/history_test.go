package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHistory(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "blank", raw: "   ", expected: nil},
		{name: "plain", raw: "S,S,B", expected: []string{"S", "S", "B"}},
		{name: "spaces trimmed", raw: " b , s ,B", expected: []string{"b", "s", "B"}},
		{name: "empty element kept", raw: "B,,S", expected: []string{"B", "", "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseHistory(tt.raw))
		})
	}
}
