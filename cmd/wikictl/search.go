package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/racewiki/server/internal/markdown"
	"codeberg.org/racewiki/server/internal/retriever"
)

func newSearchCmd() *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "run a query through the resolver against the live database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req := retriever.Request{}
			if len(args) == 1 {
				req.Text = args[0]
			}

			if imagePath != "" {
				image, err := os.ReadFile(imagePath) //nolint:gosec // operator-supplied path
				if err != nil {
					return err
				}

				req.Image = image
				req.ImageMIME = http.DetectContentType(image)
			}

			d, err := openDeps(ctx, true)
			if err != nil {
				return err
			}
			defer d.close()

			resolver := retriever.New(d.entries, d.embedder(), d.llm, retriever.ConfigFromApp(cfg))

			result, err := resolver.Resolve(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			source := "text"
			if result.ImageDerived {
				source = "image caption"
			}

			fmt.Fprintf(out, "%s %q %s\n", heading("query"), result.ResolvedQuery, muted("("+source+")"))

			if len(result.Entries) == 0 {
				fmt.Fprintln(out, muted("no results"))
				return nil
			}

			for i, e := range result.Entries {
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, success(e.Title), muted("["+string(e.Category)+"] /wiki/"+e.Slug))

				summary := strings.ReplaceAll(markdown.Summary(markdown.NormalizeNewlines(e.Content), 100), "\n", " ")
				if summary != "" {
					fmt.Fprintf(out, "    %s\n", summary)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "search with a screenshot instead of, or in addition to, text")

	return cmd
}
