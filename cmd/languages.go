package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
	"github.com/naka-gawa/github-profile-stats/internal/presenter"
	"github.com/naka-gawa/github-profile-stats/internal/usecase"
)

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "Ranks the languages of your repositories and outputs as JSON",
		Long: `Aggregates the languages of every owned, non-fork repository that does not carry
the "mirror" or "no-stats" topic, and prints the byte-weighted ranking in JSON format.`,
		Args: cobra.NoArgs,
		RunE: runLanguages,
	}
	cmd.Flags().Int("top", usecase.TopLanguages, "Number of languages to print")
	cmd.Flags().Bool("all", false, "Print the full ranking with the names GitHub reports")
	return cmd
}

// rankedLanguage is one line of the languages output.
type rankedLanguage struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Bar     string  `json:"bar"`
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger(cmd)

	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	top, _ := cmd.Flags().GetInt("top")
	all, _ := cmd.Flags().GetBool("all")
	applyInt(cmd, "concurrency", &concurrency, fileCfg.Profile.Concurrency)
	applyInt(cmd, "top", &top, fileCfg.Profile.Top)

	gw, err := newGateway(logger)
	if err != nil {
		return err
	}
	totals, err := usecase.NewAggregator(gw, gw, concurrency, logger).Aggregate(ctx)
	if err != nil {
		return fmt.Errorf("failed to aggregate languages: %w", err)
	}

	ranking := usecase.Rank(totals)
	shares := ranking.Shares
	if !all {
		shares = ranking.Top(top)
	}
	out := toRankedLanguages(shares)

	// Marshal the results into a pretty-printed JSON string.
	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func toRankedLanguages(shares []domain.LanguageShare) []rankedLanguage {
	out := make([]rankedLanguage, 0, len(shares))
	for _, s := range shares {
		out = append(out, rankedLanguage{
			Name:    s.Name,
			Percent: s.Percent,
			Bar:     presenter.RenderBar(s.Percent),
		})
	}
	return out
}
