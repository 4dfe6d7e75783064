package domain

// AccountStats holds the counters returned by the account statistics query.
type AccountStats struct {
	CommitContributions     int
	RestrictedContributions int
	PullRequests            int
	Issues                  int
	ContributedTo           int
	Stars                   []int
}

// TotalStars sums the star counts of the owned repositories.
func (s AccountStats) TotalStars() int {
	total := 0
	for _, n := range s.Stars {
		total += n
	}
	return total
}

// CommitsThisYear includes contributions to private repositories.
func (s AccountStats) CommitsThisYear() int {
	return s.CommitContributions + s.RestrictedContributions
}

// LanguageView is a ranked language ready for the template.
type LanguageView struct {
	Name          string `json:"name"`
	Bar           string `json:"bar"`
	PercentageStr string `json:"percentage_str"`
}

// Profile is the full set of display values handed to the template renderer.
type Profile struct {
	Username             string
	TotalStars           string
	TotalCommitsThisYear string
	TotalPRs             string
	TotalIssues          string
	ContributedTo        string
	Languages            []LanguageView
	LastUpdated          string
}
