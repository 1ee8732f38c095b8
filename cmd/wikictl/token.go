package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/racewiki/users"
)

const tokenProvider = "wikictl"

func newTokenCmd() *cobra.Command {
	var email string
	var admin bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "create or reuse a local account and print a JWT for it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			d, err := openDeps(ctx, false)
			if err != nil {
				return err
			}
			defer d.close()

			user, err := d.users.FindOrCreateByProvider(ctx, users.ProviderIdentity{
				Provider:   tokenProvider,
				ProviderID: email,
				Email:      email,
				Name:       email,
			}, admin)

			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (id %s, admin %t)\n", success("✓"), user.Email, user.ID, user.IsAdmin)
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "test@racewiki.org", "account email")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant admin rights")

	return cmd
}
