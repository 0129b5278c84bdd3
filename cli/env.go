package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Shows the worker environment setup script",
	Long:  "Shows the environment setup script that would be injected verbatim into every worker pool.",

	RunE: func(cmd *cobra.Command, args []string) error {
		envFile := viper.GetString("env-file")
		content, err := os.ReadFile(envFile)
		if err != nil {
			return fmt.Errorf("failed to read worker environment file: %w", err)
		}

		cmd.Println(headerColor.Sprintf("  %s  ", envFile))
		cmd.Print(string(content))
		if !strings.HasSuffix(string(content), "\n") {
			cmd.Println()
		}
		return nil
	},
}
