package retriever

import "codeberg.org/racewiki/server/racewiki/entries"

// instruction sent with every image search
const CaptionPrompt = "Analyze this image efficiently. Identify the specific car model, the race track (if visible), " +
	"and the context (e.g., specific racing series). Return a clear, concise search query string that would find " +
	"relevant wiki articles. Example: 'Mercedes AMG GT3 Spa Francorchamps'. Do not add filler text."

// fields matched by the keyword channel
var keywordFields = []entries.Field{entries.FieldTitle, entries.FieldCategory}

// semantic candidates keep their order, keyword candidates only fill in new IDs
func mergeCandidates(semantic, keyword []Candidate) []entries.Entry {
	merged := make([]entries.Entry, 0, len(semantic)+len(keyword))
	seen := make(map[string]bool, len(semantic)+len(keyword))

	for _, group := range [][]Candidate{semantic, keyword} {
		for _, c := range group {
			if seen[c.ID] {
				continue
			}

			seen[c.ID] = true
			merged = append(merged, c.Entry)
		}
	}

	return merged
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen]) + "..."
}
