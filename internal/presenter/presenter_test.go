package presenter

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	testCases := []struct {
		name           string
		percent        float64
		expectedFilled int
		expectedEmpty  int
	}{
		{name: "zero", percent: 0, expectedFilled: 0, expectedEmpty: 10},
		{name: "full", percent: 100, expectedFilled: 10, expectedEmpty: 0},
		{name: "half rounds up", percent: 45, expectedFilled: 5, expectedEmpty: 5},
		{name: "just under a half rounds down", percent: 94.9, expectedFilled: 9, expectedEmpty: 1},
		{name: "small share", percent: 4.99, expectedFilled: 0, expectedEmpty: 10},
		{name: "negative clamps filled", percent: -30, expectedFilled: 0, expectedEmpty: 10},
		{name: "over 100 clamps to a full bar", percent: 150, expectedFilled: 10, expectedEmpty: 0},
		{name: "infinity", percent: math.Inf(1), expectedFilled: 10, expectedEmpty: 0},
		{name: "negative infinity", percent: math.Inf(-1), expectedFilled: 0, expectedEmpty: 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bar := RenderBar(tc.percent)
			expected := strings.Repeat(filledGlyph, tc.expectedFilled) + strings.Repeat(emptyGlyph, tc.expectedEmpty)
			assert.Equal(t, expected, bar)
		})
	}
}

func TestRenderBarNaNDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, strings.Repeat(emptyGlyph, 10), RenderBar(math.NaN()))
	})
}

func TestAbbreviate(t *testing.T) {
	testCases := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{950, "950"},
		{999, "999"},
		{1000, "1.0k"},
		{2345, "2.3k"},
		{12345, "12.3k"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Abbreviate(tc.in), "Abbreviate(%d)", tc.in)
	}
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "Go             ", FormatName("Go"))
	assert.Equal(t, 15, utf8.RuneCountInString(FormatName("TypeScript")))
	assert.Equal(t, "AVeryLongLanguageName", FormatName("AVeryLongLanguageName"))
	// Wide runes take two columns each.
	assert.Equal(t, "言語"+strings.Repeat(" ", 11), FormatName("言語"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.00%", FormatPercent(50))
	assert.Equal(t, "33.33%", FormatPercent(100.0/3))
	assert.Equal(t, "0.00%", FormatPercent(0))
}
