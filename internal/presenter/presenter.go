// Package presenter turns ranked numbers into the fixed-width strings the README shows.
package presenter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	barCells    = 10
	filledGlyph = "▓"
	emptyGlyph  = "░"
	// NameWidth is the column width of a language name.
	NameWidth = 15
)

// RenderBar quantizes a 0-100 percentage onto a 10-cell bar.
// Halves round away from zero, so 45% fills 5 cells. Filled cells are clamped to
// [0, 10] on purpose, so input above 100% draws a full bar rather than a longer one.
func RenderBar(percent float64) string {
	filled := 0.0
	if !math.IsNaN(percent) {
		filled = min(max(math.Round(percent/10), 0), barCells)
	}
	empty := barCells - int(filled)
	return strings.Repeat(filledGlyph, int(filled)) + strings.Repeat(emptyGlyph, empty)
}

// Abbreviate renders n as-is below 1000 and as thousands with one decimal otherwise.
func Abbreviate(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// FormatName left-justifies name to NameWidth display columns, not runes: a wide (CJK)
// character counts as two. For ASCII names the two are the same. Longer names are kept whole.
func FormatName(name string) string {
	return runewidth.FillRight(name, NameWidth)
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.2f%%", percent)
}
