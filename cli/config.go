package main

import (
	"fmt"

	"github.com/biocomp/phyloflow/cli/log"
	"github.com/biocomp/phyloflow/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Resolves and prints the workflow configuration",

	RunE: func(cmd *cobra.Command, args []string) error {
		name := viper.GetString("name")
		if err := log.Init(name); err != nil {
			return err
		}

		opts, err := resolveOptions(cmd.Flags())
		if err != nil {
			return err
		}
		opts.Logger = log.With("component", "workflow")

		config, err := workflow.New(name, opts)
		if err != nil {
			return fmt.Errorf("failed to build workflow configuration: %w", err)
		}

		cmd.Println(headerColor.Sprintf("  Workflow '%s'  ", name))
		return yaml.NewEncoder(cmd.OutOrStdout()).Encode(config)
	},
}
