package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/racewiki/server/racewiki/entries"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <title>",
		Short: "print the slug a title would get",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := entries.Slugify(args[0])
			if slug == "" {
				return entries.ErrInvalidSlug
			}

			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}
}
