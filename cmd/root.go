// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-stats/internal/config"
	"github.com/naka-gawa/github-profile-stats/internal/usecase"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "github-stats",
		Short: "A CLI tool to build a GitHub profile README from account statistics.",
		Long: `github-stats collects account-wide counters (stars, commits this year, PRs,
issues, contributed repositories) and a byte-weighted ranking of the languages
used across your own non-fork repositories, then renders them through a template.
Repositories tagged with the "mirror" or "no-stats" topic are left out.`,
		SilenceUsage: true,
	}

	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the TOML config file")
	rootCmd.PersistentFlags().IntP("concurrency", "c", usecase.DefaultConcurrency, "Maximum in-flight language requests")

	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	return rootCmd
}

// Execute builds the root command and runs it.
// This is called by main.main().
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
