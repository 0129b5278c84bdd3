package main

import (
	"math"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version number of phyloflow",

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("phyloflow version %s (%s)\n", version, commit[:int(math.Min(float64(len(commit)), 7))])
	},
}
