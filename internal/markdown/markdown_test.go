package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("## Eau Rouge\nflat out\\nin a GT3\n\n| a | b |\n|---|---|\n| 1 | 2 |")

	require.NoError(t, err)
	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "flat out<br")
	assert.Contains(t, out, "<table>")
}

func TestRenderer_StripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("hello <script>alert(1)</script> [x](javascript:alert(1))")

	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "<script"))
	assert.False(t, strings.Contains(out, "javascript:"))
}

func TestFirstImageURL(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"text ![car](https://img/car.jpg) ![b](https://img/b.jpg)", "https://img/car.jpg"},
		{"no images here", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FirstImageURL(tt.content))
	}
}

func TestDisplayImageURL(t *testing.T) {
	explicit := "https://img/explicit.jpg"
	blank := " "

	assert.Equal(t, explicit, DisplayImageURL(&explicit, "![x](https://img/inline.jpg)"))
	assert.Equal(t, "https://img/inline.jpg", DisplayImageURL(&blank, "![x](https://img/inline.jpg)"))
	assert.Equal(t, "https://img/inline.jpg", DisplayImageURL(nil, "![x](https://img/inline.jpg)"))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "short", Summary("short", DescriptionLength))
	assert.Equal(t, "纽博格", Summary("纽博格林北环", 3))
	assert.Len(t, []rune(Summary(strings.Repeat("a", 500), DescriptionLength)), DescriptionLength)
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb", NormalizeNewlines(`a\nb`))
}
