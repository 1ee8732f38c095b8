package seed

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterDelim = []byte("---")

// reads every .md file under dir as one entry. Metadata comes from YAML
// front matter; the body becomes the content.
//
//	---
//	title: Circuit de Spa-Francorchamps
//	category: Track
//	---
//	Eau Rouge...
func LoadDir(dir string) ([]Seed, []error) {
	var seeds []Seed
	var errs []error

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		data, err := os.ReadFile(path) //nolint:gosec // paths come from the operator
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}

		s, err := ParseMarkdown(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}

		seeds = append(seeds, s)
		return nil
	})

	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Title < seeds[j].Title })

	return seeds, errs
}

// splits front matter from body and validates the result like Parse does
func ParseMarkdown(data []byte) (Seed, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(data, frontMatterDelim) {
		return Seed{}, fmt.Errorf("missing front matter")
	}

	rest := bytes.TrimPrefix(data[len(frontMatterDelim):], []byte("\n"))

	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return Seed{}, fmt.Errorf("unterminated front matter")
	}

	var s Seed
	if err := yaml.Unmarshal(rest[:end], &s); err != nil {
		return Seed{}, fmt.Errorf("invalid front matter: %w", err)
	}

	body := rest[end+1+len(frontMatterDelim):]
	s.Content = strings.TrimSpace(string(body))

	validated, err := validate([]Seed{s})
	if err != nil {
		return Seed{}, err
	}

	return validated[0], nil
}
