package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
	"github.com/naka-gawa/github-profile-stats/internal/gateway"
	"github.com/naka-gawa/github-profile-stats/internal/presenter"
)

// ProfileBuilder assembles every value the profile template needs.
type ProfileBuilder struct {
	account    gateway.AccountFetcher
	aggregator *Aggregator
	top        int
	logger     *log.Logger
}

// NewProfileBuilder creates a new ProfileBuilder. A top below 1 falls back to TopLanguages.
func NewProfileBuilder(account gateway.AccountFetcher, aggregator *Aggregator, top int, logger *log.Logger) *ProfileBuilder {
	if top < 1 {
		top = TopLanguages
	}
	return &ProfileBuilder{
		account:    account,
		aggregator: aggregator,
		top:        top,
		logger:     logger,
	}
}

// Build fetches account counters for the calendar year of now, then language totals,
// and formats both for display.
func (b *ProfileBuilder) Build(ctx context.Context, user string, now time.Time) (*domain.Profile, error) {
	now = now.UTC()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, time.UTC)

	b.logger.Println("[1/3] Fetching account statistics...")
	stats, err := b.account.FetchAccountStats(ctx, user, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account stats: %w", err)
	}

	b.logger.Println("[2/3] Aggregating language statistics...")
	totals, err := b.aggregator.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate languages: %w", err)
	}

	b.logger.Println("[3/3] Formatting profile...")
	ranking := Rank(totals)
	b.logger.Printf("Usecase: %d languages ranked, percentages sum to %.6f.\n", len(ranking.Shares), ranking.PercentTotal)

	return &domain.Profile{
		Username:             user,
		TotalStars:           presenter.Abbreviate(stats.TotalStars()),
		TotalCommitsThisYear: presenter.Abbreviate(stats.CommitsThisYear()),
		TotalPRs:             presenter.Abbreviate(stats.PullRequests),
		TotalIssues:          presenter.Abbreviate(stats.Issues),
		ContributedTo:        presenter.Abbreviate(stats.ContributedTo),
		Languages:            LanguageViews(ranking.Top(b.top)),
		LastUpdated:          fmt.Sprintf("Last updated %s UTC", now.Format(time.DateTime)),
	}, nil
}

// LanguageViews formats ranked shares for display.
func LanguageViews(shares []domain.LanguageShare) []domain.LanguageView {
	views := make([]domain.LanguageView, 0, len(shares))
	for _, s := range shares {
		views = append(views, domain.LanguageView{
			Name:          presenter.FormatName(s.Name),
			Bar:           presenter.RenderBar(s.Percent),
			PercentageStr: presenter.FormatPercent(s.Percent),
		})
	}
	return views
}
