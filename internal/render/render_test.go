package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

func sampleProfile() *domain.Profile {
	return &domain.Profile{
		Username:             "octocat",
		TotalStars:           "1.1k",
		TotalCommitsThisYear: "150",
		TotalPRs:             "45",
		TotalIssues:          "7",
		ContributedTo:        "3",
		Languages: []domain.LanguageView{
			{Name: "Go             ", Bar: "▓▓▓▓▓░░░░░", PercentageStr: "50.00%"},
			{Name: "TS             ", Bar: "▓▓▓▓▓░░░░░", PercentageStr: "50.00%"},
		},
		LastUpdated: "Last updated 2026-03-05 10:20:30 UTC",
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := New("{{ .Username }}|{{ range .Languages }}[{{ .Name }}{{ .Bar }} {{ .PercentageStr }}]{{ end }}|{{ .TotalStars }}")
	require.NoError(t, err)

	out, err := r.Render(sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, "octocat|[Go             ▓▓▓▓▓░░░░░ 50.00%][TS             ▓▓▓▓▓░░░░░ 50.00%]|1.1k", out)
}

func TestDefaultTemplate(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)

	out, err := r.Render(sampleProfile())
	require.NoError(t, err)
	assert.Contains(t, out, "Hi, I'm octocat")
	assert.Contains(t, out, "Go              ▓▓▓▓▓░░░░░ 50.00%")
	assert.Contains(t, out, "Commits this year ....... 150")
	assert.Contains(t, out, "Last updated 2026-03-05 10:20:30 UTC")

	empty := sampleProfile()
	empty.Languages = nil
	out, err = r.Render(empty)
	require.NoError(t, err)
	assert.Contains(t, out, "No language data.")
}

func TestNewRejectsBadTemplate(t *testing.T) {
	_, err := New("{{ .Username ")
	assert.ErrorContains(t, err, "failed to parse template")
}

func TestRenderUnknownField(t *testing.T) {
	r, err := New("{{ .Nope }}")
	require.NoError(t, err)
	_, err = r.Render(sampleProfile())
	assert.ErrorContains(t, err, "failed to render template")
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "README.md.tmpl")
	require.NoError(t, os.WriteFile(tplPath, []byte("stars: {{ .TotalStars }}\n"), 0o644))

	r, err := Load(tplPath)
	require.NoError(t, err)

	out := filepath.Join(dir, "README.md")
	require.NoError(t, r.WriteFile(out, sampleProfile()))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "stars: 1.1k\n", string(b))

	_, err = Load(filepath.Join(dir, "missing.tmpl"))
	assert.ErrorContains(t, err, "failed to read template")
}
