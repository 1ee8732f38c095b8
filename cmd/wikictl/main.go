package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codeberg.org/racewiki/server/internal/config"
	"codeberg.org/racewiki/server/internal/logger"
)

var (
	cfg     *config.Config
	verbose bool

	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed).SprintFunc()
	muted   = color.New(color.Faint).SprintFunc()
	heading = color.New(color.Bold, color.FgCyan).SprintFunc()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "wikictl",
	Short:         "wikictl manages racewiki content, embeddings and tokens",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}

		logger.SetDefault(logger.New(os.Getenv("ENVIRONMENT"), level, os.Stderr))

		// slug needs no configuration
		if cmd.Name() == "slug" {
			return nil
		}

		loaded, err := config.LoadEnvironmentVariables()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newSeedCmd(),
		newImportCmd(),
		newReembedCmd(),
		newSearchCmd(),
		newSlugCmd(),
		newTokenCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failure("error:"), err)
		os.Exit(1)
	}
}
