package main

import (
	"fmt"

	"github.com/biocomp/phyloflow/apps"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var inputsCmd = &cobra.Command{
	Use:   "inputs DIR",
	Short: "Checks that the input data archive is present",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := apps.FindDataArchive(args[0])
		if err != nil {
			return fmt.Errorf("input data check failed: %w", err)
		}

		cmd.Printf(color.HiGreenString("Found input data archive '%s'\n"), archive)
		return nil
	},
}
