package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdown(t *testing.T) {
	s, err := ParseMarkdown([]byte("---\r\ntitle: Suzuka\r\ncategory: track\r\nslug: suzuka-circuit\r\n---\r\n\r\nFigure-eight layout.\r\n"))

	require.NoError(t, err)
	assert.Equal(t, "Suzuka", s.Title)
	assert.Equal(t, "track", s.Category)
	assert.Equal(t, "suzuka-circuit", s.Slug)
	assert.Equal(t, "Figure-eight layout.", s.Content)
}

func TestParseMarkdown_Errors(t *testing.T) {
	tests := map[string]string{
		"no front matter":  "# Suzuka",
		"unterminated":     "---\ntitle: Suzuka\n",
		"unknown category": "---\ntitle: Suzuka\ncategory: Planet\n---\nbody",
		"missing title":    "---\ncategory: Track\n---\nbody",
		"broken yaml":      "---\ntitle: [\n---\nbody",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMarkdown([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	write("tracks/spa.md", "---\ntitle: Spa\ncategory: Track\n---\nEau Rouge.")
	write("cars/gt3.MD", "---\ntitle: AMG GT3\ncategory: Car\n---\nFront-engined.")
	write("notes.txt", "ignored")
	write("broken.md", "no front matter")

	seeds, errs := LoadDir(dir)

	require.Len(t, seeds, 2)
	assert.Equal(t, "AMG GT3", seeds[0].Title)
	assert.Equal(t, "Spa", seeds[1].Title)
	assert.Len(t, errs, 1)
}
