package main

import (
	"github.com/biocomp/phyloflow/workflow"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resolveOptions layers the builder inputs: defaults, then the cluster
// profile when one is given, then whatever was set on the command line.
func resolveOptions(flags *flag.FlagSet) (workflow.Options, error) {
	opts := workflow.DefaultOptions()

	if profile := viper.GetString("profile"); profile != "" {
		var err error
		if opts, err = workflow.LoadProfile(profile); err != nil {
			return opts, err
		}
	}

	if flags.Changed("env-file") {
		opts.EnvFile = viper.GetString("env-file")
	}
	if flags.Changed("interface") {
		opts.Interface = viper.GetString("interface")
	}
	if address := viper.GetString("address"); address != "" {
		opts.Address = address
	}
	if flags.Changed("monitor") {
		opts.Monitor = viper.GetBool("monitor")
	}
	if flags.Changed("monitor-interval") {
		opts.MonitorInterval = workflow.Duration(viper.GetDuration("monitor-interval"))
	}

	return opts, nil
}
