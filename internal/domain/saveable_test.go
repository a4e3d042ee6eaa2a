package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordIsSaveable(t *testing.T) {
	tests := []struct {
		name string
		word string
		goos string
		want bool
	}{
		{"plain word", "alpha", "linux", true},
		{"unicode word", "café", "linux", true},
		{"glob star", "foo*bar", "linux", false},
		{"glob question mark", "wh?t", "linux", false},
		{"forward slash", "a/b", "linux", false},
		{"backslash", `a\b`, "linux", false},
		{"empty", "", "linux", false},
		{"32 chars", strings.Repeat("a", 32), "linux", true},
		{"33 chars", strings.Repeat("a", 33), "linux", false},
		{"33 multi-byte chars", strings.Repeat("é", 33), "linux", false},
		{"32 multi-byte chars", strings.Repeat("é", 32), "linux", true},
		{"reserved name on linux", "con", "linux", true},
		{"reserved name on windows", "con", "windows", false},
		{"reserved name uppercase on windows", "CON", "windows", false},
		{"reserved com port", "com5", "windows", false},
		{"reserved printer port", "lpt9", "windows", false},
		{"near-reserved name on windows", "console", "windows", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wordIsSaveableOn(tt.word, tt.goos))
		})
	}
}
