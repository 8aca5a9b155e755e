package spam_test

import (
	"testing"

	"github.com/SscSPs/acme_marketplace/internal/core/spam"
	"github.com/stretchr/testify/assert"
)

var strongTerms = []string{"sex", "hard core", "viagra", "cialis"}

func TestIsClean_EmptyTextAlwaysClean(t *testing.T) {
	assert.True(t, spam.IsClean("", strongTerms, 0))
	assert.True(t, spam.IsClean("   \n\t", strongTerms, 0))
	assert.True(t, spam.IsClean("", nil, 10))
}

func TestIsClean_Threshold(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		threshold float64
		want      bool
	}{
		{name: "no banned words", text: "a sturdy soldering iron", threshold: 10, want: true},
		{name: "one in ten words below threshold", text: "viagra one two three four five six seven eight nine", threshold: 10.5, want: true},
		{name: "density equals threshold", text: "viagra one two three four five six seven eight nine", threshold: 10, want: false},
		{name: "density above threshold", text: "viagra and cialis", threshold: 50, want: false},
		{name: "case insensitive", text: "VIAGRA deals", threshold: 40, want: false},
		{name: "multi word term", text: "hard core stuff here", threshold: 50, want: false},
		{name: "multi word term split apart", text: "hard work core values", threshold: 1, want: true},
		{name: "substring is not a word match", text: "sextant for navigation", threshold: 1, want: true},
		{name: "punctuation is ignored", text: "buy viagra!!! now", threshold: 34, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spam.IsClean(tt.text, strongTerms, tt.threshold))
		})
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0.0, spam.Score("", strongTerms))
	assert.Equal(t, 50.0, spam.Score("hard core and more", []string{"hard core", "hard"}))
	assert.InDelta(t, 100.0, spam.Score("Sex SEX sex", strongTerms), 1e-9)
	assert.InDelta(t, 25.0, spam.Score("buy cheap cialis today", strongTerms), 1e-9)
	assert.Equal(t, 0.0, spam.Score("anything", []string{"", "  "}))
}
