package entries

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// number of suffixed candidates tried before giving up
const MaxSlugAttempts = 100

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// finds existing entries holding a slug
type SlugFinder interface {
	FindBySlug(ctx context.Context, slug string) ([]Entry, error)
}

// lowercases the title and collapses every run of non [a-z0-9] characters into one dash
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// returns slug, or the first free slug-N, treating a match on selfID as free.
// selfID is empty when the entry does not exist yet.
func EnsureUniqueSlug(ctx context.Context, finder SlugFinder, slug, selfID string) (string, error) {
	if slug == "" {
		return "", ErrInvalidSlug
	}

	candidate := slug

	for attempt := 1; attempt <= MaxSlugAttempts; attempt++ {
		matches, err := finder.FindBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}

		if slugFree(matches, selfID) {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", slug, attempt)
	}

	return "", fmt.Errorf("%w: %q", ErrTooManyConflicts, slug)
}

func slugFree(matches []Entry, selfID string) bool {
	if len(matches) == 0 {
		return true
	}

	return selfID != "" && len(matches) == 1 && matches[0].ID == selfID
}
