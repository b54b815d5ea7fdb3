package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"salesdesk"},
			expected: "salesdesk",
		},
		{
			name:     "multiple parts",
			parts:    []string{"salesdesk", "extract", "translate", "en"},
			expected: "salesdesk:extract:translate:en",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestHashText(t *testing.T) {
	first := shared.HashText("Esküvőt szeretnénk 120 fő részére")
	second := shared.HashText("Esküvőt szeretnénk 120 fő részére")
	other := shared.HashText("different text")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 16)
}
