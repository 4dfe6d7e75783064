package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-stats/internal/config"
	"github.com/naka-gawa/github-profile-stats/internal/gateway"
)

// newLogger discards everything unless --verbose is set, in which case it logs to stderr.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// loadConfig reads the file named by --config.
func loadConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newGateway builds the GitHub gateway from the environment token.
func newGateway(logger *log.Logger) (*gateway.GitHubGateway, error) {
	token, err := config.Token()
	if err != nil {
		return nil, err
	}
	gw, err := gateway.NewGitHubGateway(token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return gw, nil
}

// applyString copies a config value into dst unless the flag was set explicitly.
func applyString(cmd *cobra.Command, flag string, dst *string, value *string) {
	if value == nil || cmd.Flags().Changed(flag) {
		return
	}
	*dst = *value
}

func applyInt(cmd *cobra.Command, flag string, dst *int, value *int) {
	if value == nil || cmd.Flags().Changed(flag) {
		return
	}
	*dst = *value
}
