package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-stats/internal/render"
	"github.com/naka-gawa/github-profile-stats/internal/usecase"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Renders the profile README for a GitHub user",
		Long: `Fetches account statistics and ranked language usage for the authenticated user,
renders them through a template and writes the result to a file.`,
		Args: cobra.NoArgs,
		RunE: runProfile,
	}
	cmd.Flags().StringP("user", "u", "", "GitHub login shown in the profile and used for account stats")
	cmd.Flags().StringP("template", "t", "", "Template file (default: built-in template)")
	cmd.Flags().StringP("output", "o", "README.md", "Output file")
	cmd.Flags().Int("top", usecase.TopLanguages, "Number of languages to show")
	return cmd
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger(cmd)

	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	user, _ := cmd.Flags().GetString("user")
	tplPath, _ := cmd.Flags().GetString("template")
	output, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	top, _ := cmd.Flags().GetInt("top")
	applyString(cmd, "user", &user, fileCfg.Profile.User)
	applyString(cmd, "template", &tplPath, fileCfg.Profile.Template)
	applyString(cmd, "output", &output, fileCfg.Profile.Output)
	applyInt(cmd, "concurrency", &concurrency, fileCfg.Profile.Concurrency)
	applyInt(cmd, "top", &top, fileCfg.Profile.Top)
	if user == "" {
		return fmt.Errorf("a user is required: pass --user or set profile.user in the config file")
	}

	// Parse the template first so a typo fails before any API call.
	renderer, err := render.Load(tplPath)
	if err != nil {
		return err
	}

	// Inject dependencies and run the main business logic.
	gw, err := newGateway(logger)
	if err != nil {
		return err
	}
	aggregator := usecase.NewAggregator(gw, gw, concurrency, logger)
	builder := usecase.NewProfileBuilder(gw, aggregator, top, logger)

	profile, err := builder.Build(ctx, user, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build profile: %w", err)
	}
	if err := renderer.WriteFile(output, profile); err != nil {
		return err
	}
	logger.Printf("Wrote %s\n", output)
	return nil
}
