// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
	"github.com/naka-gawa/github-profile-stats/internal/gateway"
)

// DefaultConcurrency caps in-flight language requests.
const DefaultConcurrency = 8

// Aggregator collects byte counts per language across the account's eligible repositories.
type Aggregator struct {
	lister      gateway.RepositoryLister
	fetcher     gateway.LanguageFetcher
	concurrency int
	logger      *log.Logger
}

// NewAggregator creates a new Aggregator instance.
// A concurrency below 1 falls back to DefaultConcurrency.
func NewAggregator(lister gateway.RepositoryLister, fetcher gateway.LanguageFetcher, concurrency int, logger *log.Logger) *Aggregator {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Aggregator{
		lister:      lister,
		fetcher:     fetcher,
		concurrency: concurrency,
		logger:      logger,
	}
}

// languageResult is the outcome of one repository's fetch.
type languageResult struct {
	langs domain.LanguageBytes
	err   error
}

// Aggregate lists every repository, fetches languages of the eligible ones concurrently
// and folds them into one totals value. A listing failure aborts the run; a failed
// language fetch only drops that repository's contribution.
func (a *Aggregator) Aggregate(ctx context.Context) (*domain.LanguageTotals, error) {
	a.logger.Println("Usecase: Listing repositories...")
	var eligible []domain.Repository
	listed := 0
	for repo, err := range a.lister.ListRepositories(ctx) {
		if err != nil {
			return nil, err
		}
		listed++
		if IsEligible(repo) {
			eligible = append(eligible, repo)
		}
	}
	a.logger.Printf("Usecase: %d repositories listed, %d eligible.\n", listed, len(eligible))

	// Each goroutine owns one slot, so results need no locking.
	results := make([]languageResult, len(eligible))
	var eg errgroup.Group
	eg.SetLimit(a.concurrency)
	for i, repo := range eligible {
		eg.Go(func() error {
			langs, err := a.fetcher.FetchLanguages(ctx, repo)
			results[i] = languageResult{langs: langs, err: err}
			return nil
		})
	}
	// Fetch errors travel in results; Wait only joins the workers.
	eg.Wait()

	// Folding in listing order keeps first-seen order stable between runs.
	totals := domain.NewLanguageTotals()
	var dropped *multierror.Error
	for i, res := range results {
		if res.err != nil {
			dropped = multierror.Append(dropped, fmt.Errorf("%s: %w", eligible[i].FullName(), res.err))
			continue
		}
		totals.Add(res.langs)
	}
	if err := dropped.ErrorOrNil(); err != nil {
		a.logger.Printf("Usecase: dropped %d repositories with failed language fetches: %v\n", dropped.Len(), err)
	}
	a.logger.Printf("Usecase: Aggregation complete, %d languages.\n", totals.Len())
	return totals, nil
}
