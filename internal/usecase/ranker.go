package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

// TopLanguages is how many ranked languages the profile shows.
const TopLanguages = 8

// displayNames shortens names that do not fit the profile column.
var displayNames = map[string]string{
	"Visual Basic .NET": "VB.NET",
	"Jupyter Notebook":  "Jupyter",
}

// DisplayName applies the display override table; other names pass through.
func DisplayName(name string) string {
	if short, ok := displayNames[name]; ok {
		return short
	}
	return name
}

// Ranking is the full, untruncated ranking of a totals value.
type Ranking struct {
	Shares []domain.LanguageShare
	// PercentTotal is the sum of every share; 100 up to rounding unless Shares is empty.
	PercentTotal float64
}

// Rank converts totals to percentages and sorts them in descending order.
// Ties keep the order in which languages were first merged.
// Zero total bytes yields an empty ranking.
func Rank(totals *domain.LanguageTotals) Ranking {
	total := totals.Total()
	if total == 0 {
		return Ranking{Shares: []domain.LanguageShare{}}
	}
	shares := make([]domain.LanguageShare, 0, totals.Len())
	percents := make([]float64, 0, totals.Len())
	for _, name := range totals.Languages() {
		p := float64(totals.Bytes(name)) / float64(total) * 100
		shares = append(shares, domain.LanguageShare{Name: name, Percent: p})
		percents = append(percents, p)
	}
	sortShares(shares)
	sum, _ := stats.Sum(percents)
	return Ranking{Shares: shares, PercentTotal: sum}
}

// sortShares stable-sorts by descending percent. NaN has no place in that order and
// panics instead of being silently moved.
func sortShares(shares []domain.LanguageShare) {
	for _, s := range shares {
		if math.IsNaN(s.Percent) {
			panic(fmt.Errorf("%w: %q", domain.ErrUnorderable, s.Name))
		}
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent > shares[j].Percent
	})
}

// Top truncates the ranking to n entries and applies display names.
func (r Ranking) Top(n int) []domain.LanguageShare {
	n = min(max(n, 0), len(r.Shares))
	out := make([]domain.LanguageShare, 0, n)
	for _, s := range r.Shares[:n] {
		out = append(out, domain.LanguageShare{Name: DisplayName(s.Name), Percent: s.Percent})
	}
	return out
}
