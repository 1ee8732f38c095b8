package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const DescriptionLength = 160

var imagePattern = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// renders entry markdown to sanitized HTML
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// single line breaks become <br>, raw HTML in the source is stripped
func (r *Renderer) Render(content string) (string, error) {
	var buf bytes.Buffer

	if err := r.md.Convert([]byte(NormalizeNewlines(content)), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return r.policy.Sanitize(buf.String()), nil
}

// some rows were stored with a literal backslash-n instead of a newline
func NormalizeNewlines(content string) string {
	return strings.ReplaceAll(content, `\n`, "\n")
}

// returns the target of the first markdown image, or ""
func FirstImageURL(content string) string {
	match := imagePattern.FindStringSubmatch(NormalizeNewlines(content))
	if len(match) < 2 {
		return ""
	}

	return strings.TrimSpace(match[1])
}

// first maxRunes runes of content, used as the page description
func Summary(content string, maxRunes int) string {
	runes := []rune(content)
	if len(runes) <= maxRunes {
		return content
	}

	return string(runes[:maxRunes])
}

// prefers the explicit image, falling back to the first inline image
func DisplayImageURL(imageURL *string, content string) string {
	if imageURL != nil && strings.TrimSpace(*imageURL) != "" {
		return *imageURL
	}

	return FirstImageURL(content)
}
