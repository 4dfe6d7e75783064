package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

func TestApplyConfigValues(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("output", "README.md", "")
	cmd.Flags().Int("top", 8, "")
	require.NoError(t, cmd.ParseFlags([]string{"--top", "3"}))

	output, _ := cmd.Flags().GetString("output")
	top, _ := cmd.Flags().GetInt("top")
	fileOutput, fileTop := "profile.md", 5
	applyString(cmd, "output", &output, &fileOutput)
	applyInt(cmd, "top", &top, &fileTop)

	// The file fills unset flags; explicit flags win.
	assert.Equal(t, "profile.md", output)
	assert.Equal(t, 3, top)

	applyString(cmd, "output", &output, nil)
	assert.Equal(t, "profile.md", output)
}

func TestToRankedLanguages(t *testing.T) {
	out := toRankedLanguages([]domain.LanguageShare{{Name: "Go", Percent: 62.5}})
	assert.Equal(t, []rankedLanguage{{Name: "Go", Percent: 62.5, Bar: "▓▓▓▓▓▓░░░░"}}, out)
	assert.Empty(t, toRankedLanguages(nil))
}

func TestProfileRequiresUser(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[profile]\noutput = \"x.md\"\n"), 0o644))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"profile", "--config", cfgPath})
	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "a user is required")
}

func TestProfileRequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_PAT", "")
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"profile", "--config", cfgPath, "--user", "octocat"})
	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "no GitHub token")
}

func TestNewRootCmdHasFreshFlags(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_PAT", "")
	first := newRootCmd()
	first.SetArgs([]string{"profile", "--user", "octocat", "--config", filepath.Join(t.TempDir(), "none.toml")})
	_ = first.Execute()

	second := newRootCmd()
	profile, _, err := second.Find([]string{"profile"})
	require.NoError(t, err)
	user, err := profile.Flags().GetString("user")
	require.NoError(t, err)
	assert.Empty(t, user)
}
