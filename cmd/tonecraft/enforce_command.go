package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

func newEnforceCommand(opts *rootOptions) *cobra.Command {
	var (
		countFlag int
		seedFlag  uint64
	)

	cmd := &cobra.Command{
		Use:   "enforce <prompt>",
		Short: "Rewrite a prompt's genre line to hold an exact genre count",
		Long: `Rewrite a prompt's genre line to hold an exact genre count.

Counts outside 1-4 are clamped. When the prompt has more genres than
requested the list is truncated; when it has fewer, compatible genres
are drawn from the seeded source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := seedValue(cmd, seedFlag)
			result := prompt.EnforceGenreCount(args[0], countFlag, rng.New(seed))

			if opts.json {
				return writeJSON(cmd, map[string]any{
					"prompt": result,
					"seed":   seed,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVar(&countFlag, "count", 1, "Exact number of genres the prompt should carry (1-4)")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Seed for genre padding (default: current time)")

	return cmd
}
