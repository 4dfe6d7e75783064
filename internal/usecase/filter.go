package usecase

import (
	"slices"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

// excludedTopics opt a repository out of language statistics. Matching is exact.
var excludedTopics = []string{"mirror", "no-stats"}

// IsEligible reports whether repo contributes to language statistics:
// it must not be a fork and must carry none of the excluded topics.
func IsEligible(repo domain.Repository) bool {
	if repo.Fork {
		return false
	}
	for _, topic := range repo.Topics {
		if slices.Contains(excludedTopics, topic) {
			return false
		}
	}
	return true
}
