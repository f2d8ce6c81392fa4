package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"help", "help", 0},

		{"", "abc", 3},
		{"abc", "", 3},

		{"a", "b", 1},
		{"--tag", "--tags", 1},
		{"--tags", "--tag", 1},

		{"kitten", "sitting", 3},
		{"hlep", "help", 2},
		{"--timout", "--timeout", 1},

		// Case-sensitive
		{"PATH", "path", 4},

		// Runes, not bytes
		{"café", "cafe", 1},
		{"日本", "日本語", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distance(tt.a, tt.b))
			assert.Equal(t, tt.expected, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"help", "help", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"helo", "help", 0.75},
		{"café", "cafe", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 0.001)
		})
	}
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
	}{
		{"--dry-run", "dryRun", 1.0},
		{"DRY_RUN", "--dry-run", 1.0},
		{"-v", "--v", 1.0},
		{"--timout", "--timeout", 0.8},
		{"--verbose", "--output", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.GreaterOrEqual(t, NameSimilarity(tt.a, tt.b), tt.minScore)
		})
	}
}

func BenchmarkDistance(b *testing.B) {
	for b.Loop() {
		Distance("--max-retries", "--max-retry-count")
	}
}
