/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/kvinspect/kvinspect/cmd/columns"
	"github.com/hypermodeinc/kvinspect/kvinspect/cmd/kv"
	"github.com/hypermodeinc/kvinspect/kvinspect/cmd/version"
	"github.com/hypermodeinc/kvinspect/x"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "kvinspect",
	Short: "kvinspect: inspect and mutate k-v pairs of a multi-region store",
	Long: `
kvinspect reads or writes a single key of one column in one logical database of
a local store. Only the region of the selected database is opened.
` + x.BuildDetails(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// glog wants the Go flag set parsed before it logs anything.
	x.Check(goflag.CommandLine.Parse([]string{}))
	if err := RootCmd.Execute(); err != nil {
		if x.Category(err) == nil {
			// Not one of ours. Keep the stack for the log files.
			glog.Errorf("%+v", err)
		}
		glog.Flush()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

func init() {
	RootCmd.PersistentFlags().String("profile_mode", "",
		"Enable profiling mode, one of [cpu, mem, mutex, block]")
	RootCmd.PersistentFlags().Int("block_rate", 0,
		"Block profiling rate. Must be used along with block profile_mode")
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	bindAll(&kv.Inspect, &kv.Mutate, &columns.Columns, &version.Version)
}

func bindAll(subcommands ...*x.SubCommand) {
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(RootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Check(errors.Wrapf(sc.Conf.ReadInConfig(), "reading config"))
		}
	})
}
