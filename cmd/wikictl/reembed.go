package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/racewiki/server/internal/reembed"
)

func newReembedCmd() *cobra.Command {
	var opts reembed.Options

	cmd := &cobra.Command{
		Use:   "reembed",
		Short: "generate embeddings for entries stored without one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			d, err := openDeps(ctx, true)
			if err != nil {
				return err
			}
			defer d.close()

			if opts.Workers <= 0 {
				opts.Workers = cfg.ReembedWorkers
			}

			stats, err := reembed.New(d.entries, d.embedder(), opts).Run(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s found=%d embedded=%s failed=%s\n",
				heading("reembed"),
				stats.Found,
				success(stats.Embedded),
				failure(stats.Failed),
			)

			if stats.Failed > 0 {
				return fmt.Errorf("%d entries could not be embedded", stats.Failed)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "concurrent embedding batches (defaults to REEMBED_WORKERS)")
	cmd.Flags().IntVar(&opts.BatchSize, "batch", 0, "entries per embedding request")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "max entries to process in this run")

	return cmd
}
