// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

const (
	userAgent   = "github-profile-stats"
	repoPerPage = 100
)

// RepositoryLister enumerates the repositories owned by the authenticated account.
type RepositoryLister interface {
	ListRepositories(ctx context.Context) iter.Seq2[domain.Repository, error]
}

// LanguageFetcher retrieves the byte count per language of one repository.
type LanguageFetcher interface {
	FetchLanguages(ctx context.Context, repo domain.Repository) (domain.LanguageBytes, error)
}

// AccountFetcher retrieves the account-wide counters.
type AccountFetcher interface {
	FetchAccountStats(ctx context.Context, user string, from, to time.Time) (*domain.AccountStats, error)
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	RepositoryLister
	LanguageFetcher
	AccountFetcher
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
// Its HTTP client is shared by every call and is safe for concurrent use.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

var _ Fetcher = (*GitHubGateway)(nil)

// accountStatsQuery mirrors the single GraphQL query behind the profile counters.
type accountStatsQuery struct {
	User struct {
		ContributionsCollection struct {
			TotalCommitContributions     githubv4.Int
			RestrictedContributionsCount githubv4.Int
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
		PullRequests struct {
			TotalCount githubv4.Int
		}
		Issues struct {
			TotalCount githubv4.Int
		}
		Repositories struct {
			Nodes []struct {
				StargazerCount githubv4.Int
			}
		} `graphql:"repositories(first: 100, ownerAffiliations: OWNER, isFork: false)"`
		RepositoriesContributedTo struct {
			TotalCount githubv4.Int
		} `graphql:"repositoriesContributedTo(first: 1, contributionTypes: [COMMIT, ISSUE, PULL_REQUEST, REPOSITORY])"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (*GitHubGateway, error) {
	// A zero sleep limit turns the waiter into a detector: every call is still attempted once.
	onLimited := func(cbCtx *github_ratelimit.CallbackContext) {
		logger.Printf("  Secondary rate limit hit for %s, not retrying.\n", cbCtx.Request.URL)
	}
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(0, onLimited))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	restClient := github.NewClient(httpClient)
	restClient.UserAgent = userAgent
	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// ListRepositories lazily pages through the owned repositories, 100 at a time,
// stopping at the first empty page.
func (g *GitHubGateway) ListRepositories(ctx context.Context) iter.Seq2[domain.Repository, error] {
	return paginate(ctx, g.listRepositoryPage)
}

func (g *GitHubGateway) listRepositoryPage(ctx context.Context, page int) ([]domain.Repository, error) {
	g.logger.Printf("  Fetching repository page %d...\n", page)
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: repoPerPage, Page: page},
	}
	repos, _, err := g.restClient.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, classify(fmt.Sprintf("failed to list repositories (page %d)", page), err)
	}
	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.Repository{
			Name:         r.GetName(),
			Owner:        r.GetOwner().GetLogin(),
			Fork:         r.GetFork(),
			Topics:       r.Topics,
			LanguagesURL: r.GetLanguagesURL(),
		})
	}
	return out, nil
}

// FetchLanguages requests the repository's languages endpoint. It falls back to the
// canonical path when the listing did not carry a languages URL.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, repo domain.Repository) (domain.LanguageBytes, error) {
	u := repo.LanguagesURL
	if u == "" {
		u = fmt.Sprintf("repos/%s/%s/languages", repo.Owner, repo.Name)
	}
	req, err := g.restClient.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build languages request for %s: %w", repo.FullName(), err)
	}
	langs := make(domain.LanguageBytes)
	if _, err := g.restClient.Do(ctx, req, &langs); err != nil {
		return nil, fmt.Errorf("failed to fetch languages for %s: %w", repo.FullName(), err)
	}
	return langs, nil
}

// FetchAccountStats runs the account statistics query for the given contribution window.
func (g *GitHubGateway) FetchAccountStats(ctx context.Context, user string, from, to time.Time) (*domain.AccountStats, error) {
	variables := map[string]interface{}{
		"login": githubv4.String(user),
		"from":  githubv4.DateTime{Time: from},
		"to":    githubv4.DateTime{Time: to},
	}
	var q accountStatsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, classify("failed to execute GraphQL query for account stats", err)
	}
	u := q.User
	stats := &domain.AccountStats{
		CommitContributions:     int(u.ContributionsCollection.TotalCommitContributions),
		RestrictedContributions: int(u.ContributionsCollection.RestrictedContributionsCount),
		PullRequests:            int(u.PullRequests.TotalCount),
		Issues:                  int(u.Issues.TotalCount),
		ContributedTo:           int(u.RepositoriesContributedTo.TotalCount),
		Stars:                   make([]int, 0, len(u.Repositories.Nodes)),
	}
	for _, node := range u.Repositories.Nodes {
		stats.Stars = append(stats.Stars, int(node.StargazerCount))
	}
	return stats, nil
}

// classify tags a fatal call failure as a parse or transport error.
func classify(msg string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: %w", domain.ErrParse, msg, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrTransport, msg, err)
}
