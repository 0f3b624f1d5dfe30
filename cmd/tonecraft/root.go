package main

import (
	"github.com/spf13/cobra"
)

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	json bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "tonecraft",
		Short:         "Deterministic music style prompt generator",
		Long:          "Generate reproducible style prompts for music models. The same description and seed always produce the same prompt.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Emit JSON instead of human-readable output")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newGenresCommand(opts))
	rootCmd.AddCommand(newClassifyCommand(opts))
	rootCmd.AddCommand(newEnforceCommand(opts))

	return rootCmd
}
