package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/seed"
	"codeberg.org/racewiki/server/racewiki/entries"
)

func newSeedCmd() *cobra.Command {
	var file string
	var noEmbed bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "upsert the built-in sample entries, or a YAML list of entries, by slug",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeds, err := seed.Builtin()
			if file != "" {
				data, readErr := os.ReadFile(file) //nolint:gosec // operator-supplied path
				if readErr != nil {
					return readErr
				}

				seeds, err = seed.Parse(data)
			}

			if err != nil {
				return err
			}

			return runSeeds(cmd, seeds, noEmbed)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with entries (defaults to the built-in samples)")
	cmd.Flags().BoolVar(&noEmbed, "no-embed", false, "store entries without generating embeddings")

	return cmd
}

func newImportCmd() *cobra.Command {
	var path string
	var noEmbed bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "upsert every markdown file with front matter under a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeds, errs := seed.LoadDir(path)
			for _, err := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), failure("skipped:"), err)
			}

			if len(seeds) == 0 {
				return fmt.Errorf("no entries found under %s", path)
			}

			return runSeeds(cmd, seeds, noEmbed)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "content", "directory of markdown entries")
	cmd.Flags().BoolVar(&noEmbed, "no-embed", false, "store entries without generating embeddings")

	return cmd
}

func runSeeds(cmd *cobra.Command, seeds []seed.Seed, noEmbed bool) error {
	ctx := cmd.Context()

	d, err := openDeps(ctx, !noEmbed)
	if err != nil {
		return err
	}
	defer d.close()

	var embedder llm.Embedder
	if !noEmbed {
		embedder = d.embedder()
	}

	saved, err := seed.Run(ctx, d.entries, embedder, seeds)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range saved {
		fmt.Fprintf(out, "%s %s %s\n", success("✓"), e.Slug, muted(embeddingState(e)))
	}

	fmt.Fprintf(out, "%s %d entries\n", heading("seeded"), len(saved))

	return nil
}

func embeddingState(e entries.Entry) string {
	if e.HasEmbedding {
		return "(embedded)"
	}

	return "(no embedding, run wikictl reembed)"
}
