package domain

import "sort"

// LanguageTotals is the byte count per language summed across every eligible repository.
// It remembers the order in which languages were first merged so that ranking ties
// resolve the same way on every run.
type LanguageTotals struct {
	bytes map[string]int64
	order []string
}

// NewLanguageTotals returns an empty totals accumulator.
func NewLanguageTotals() *LanguageTotals {
	return &LanguageTotals{bytes: make(map[string]int64)}
}

// Add merges one repository's byte counts into the totals.
// Keys of a single map are merged in name order because map iteration order is random.
func (t *LanguageTotals) Add(langs LanguageBytes) {
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := t.bytes[name]; !ok {
			t.order = append(t.order, name)
		}
		t.bytes[name] += langs[name]
	}
}

// Languages returns language names in first-seen order.
func (t *LanguageTotals) Languages() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Bytes returns the byte count for a language, zero if unknown.
func (t *LanguageTotals) Bytes(name string) int64 {
	return t.bytes[name]
}

// Map returns a copy of the totals keyed by language.
func (t *LanguageTotals) Map() map[string]int64 {
	out := make(map[string]int64, len(t.bytes))
	for name, b := range t.bytes {
		out[name] = b
	}
	return out
}

// Total returns the sum of all byte counts.
func (t *LanguageTotals) Total() int64 {
	var sum int64
	for _, b := range t.bytes {
		sum += b
	}
	return sum
}

// Len returns the number of distinct languages.
func (t *LanguageTotals) Len() int {
	return len(t.order)
}

// LanguageShare is one ranked language with its share of all bytes, in percent.
type LanguageShare struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}
