package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/biocomp/phyloflow/workflow"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Versioning information set at build time
var version, commit = "dev", "n/a"

var headerColor = color.New(color.Bold, color.FgHiCyan)

var phyloflowCmd = &cobra.Command{
	Use:   "phyloflow",
	Short: "Phyloflow parameterizes phylogenetics workflow runs on the cluster.",

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	phyloflowCmd.AddCommand(configCmd)
	phyloflowCmd.AddCommand(envCmd)
	phyloflowCmd.AddCommand(inputsCmd)
	phyloflowCmd.AddCommand(versionCmd)

	flags := phyloflowCmd.PersistentFlags()
	flags.String("name", "phyloflow", "workflow run name")
	flags.String("profile", "", "cluster profile file (YAML)")
	flags.String("env-file", workflow.DefaultEnvFile, "worker environment setup file")
	flags.String("interface", workflow.DefaultInterface, "network interface workers use to reach the submit host")
	flags.String("address", "", "submit host address (overrides interface resolution)")
	flags.Bool("monitor", false, "attach the resource monitoring hub to the run")
	flags.Duration("monitor-interval", 30*time.Second, "resource monitoring sampling interval")

	viper.SetEnvPrefix("phyloflow")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	lo.Must0(viper.BindPFlags(flags))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	phyloflowCmd.SetOut(os.Stdout)
	if err := phyloflowCmd.ExecuteContext(ctx); err != nil {
		lo.Must(fmt.Fprintln(os.Stderr, color.HiRedString(fmt.Sprint(err))))
		os.Exit(1)
	}
}
