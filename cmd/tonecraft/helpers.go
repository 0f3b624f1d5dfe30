package main

import (
	"time"

	"github.com/spf13/cobra"
)

// seedValue returns the --seed flag when the caller set it, otherwise a
// time-based seed so unseeded runs still vary.
func seedValue(cmd *cobra.Command, flagValue uint64) uint64 {
	if cmd.Flags().Changed("seed") {
		return flagValue
	}
	return uint64(time.Now().UnixNano())
}
