/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package kv holds the inspect and mutate sub-commands. Both take the same
// flags and differ only in what they do with the opened handle.
package kv

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/ristretto/v2/z"
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/kvinspect/audit"
	"github.com/hypermodeinc/kvinspect/command"
	"github.com/hypermodeinc/kvinspect/printer"
	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/store"
	"github.com/hypermodeinc/kvinspect/x"
)

var (
	// Inspect is the sub-command invoked when running "kvinspect inspect".
	Inspect x.SubCommand
	// Mutate is the sub-command invoked when running "kvinspect mutate".
	Mutate x.SubCommand
)

func init() {
	Inspect.Cmd = &cobra.Command{
		Use:   "inspect",
		Short: "Inspect database k-v pairs",
		Long: `
Inspect reads one key from one column of the selected database and prints its
value as a hex dump, or "No value found" when the key is absent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer x.StartProfile(Inspect.Conf).Stop()
			return run(Inspect.Conf, command.Inspect, cmd.OutOrStdout())
		},
	}
	Inspect.EnvPrefix = "KVINSPECT_INSPECT"
	registerFlags(Inspect.Cmd.Flags())

	Mutate.Cmd = &cobra.Command{
		Use:   "mutate",
		Short: "Mutate database k-v pairs",
		Long: `
Mutate writes one value under one key of one column of the selected database in
a single transaction. The compression database cannot be mutated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer x.StartProfile(Mutate.Conf).Stop()
			return run(Mutate.Conf, command.Mutate, cmd.OutOrStdout())
		},
	}
	Mutate.EnvPrefix = "KVINSPECT_MUTATE"
	flag := Mutate.Cmd.Flags()
	registerFlags(flag)
	// -v belongs to glog verbosity.
	flag.String("value", "", "Value to write.")
	flag.String("audit", audit.Defaults, z.NewSuperFlagHelp(audit.Defaults).
		Head("Audit options").
		Flag("output",
			`[stdout, /path/to/dir] This specifies where audit logs should be output to.
			"stdout" is for standard output. You can also specify the directory where audit logs
			will be saved. An empty output disables audit logs.`).
		Flag("compress",
			"Enables the compression of old audit logs.").
		Flag("days",
			"The number of days audit logs will be preserved.").
		Flag("size",
			"The audit log max size in MB after which it will be rolled over.").
		String())
}

func registerFlags(flag *pflag.FlagSet) {
	flag.String("database", "",
		fmt.Sprintf("Database name, one of %v.", schema.DatabaseNames()))
	flag.String("path", "", "Path to the store. It must exist.")
	flag.StringP("column", "c", "", "Column name.")
	flag.StringP("key", "k", "", "Key to inspect or mutate.")
	flag.String("encoding", "hex",
		"How --key and --value are turned into bytes, one of [hex, utf8].")
	flag.String("engine", store.DefaultEngine,
		fmt.Sprintf("Storage engine the store was written with, one of [%s].",
			strings.Join(store.Engines(), ", ")))
}

func input(conf *viper.Viper, kind command.Kind) command.Input {
	in := command.Input{
		Kind:     kind,
		Database: conf.GetString("database"),
		Path:     conf.GetString("path"),
		Column:   conf.GetString("column"),
		Key:      conf.GetString("key"),
		Encoding: conf.GetString("encoding"),
		Engine:   conf.GetString("engine"),
	}
	if kind == command.Mutate && conf.IsSet("value") {
		in.Value = conf.GetString("value")
		in.HasValue = true
	}
	return in
}

func run(conf *viper.Viper, kind command.Kind, out io.Writer) error {
	cmd, err := command.Validate(input(conf, kind))
	if err != nil {
		return err
	}

	switch cmd.Kind() {
	case command.Inspect:
		return inspect(cmd, out)
	default:
		auditor, err := audit.New(audit.GetConf(conf.GetString("audit")))
		if err != nil {
			return err
		}
		err = mutate(cmd, auditor)
		if cerr := auditor.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}
}

func inspect(cmd *command.Command, out io.Writer) error {
	var rendered string
	err := store.With(cmd.Database(), cmd.StoreConfig(), func(h *store.Handle) error {
		val, found, err := h.Get(cmd.Column(), cmd.Key())
		if err != nil {
			return err
		}
		rendered = printer.Value(val, found)
		return nil
	})
	if err != nil {
		return err
	}
	// Printed only after a clean shutdown.
	_, err = fmt.Fprintln(out, rendered)
	return err
}

func mutate(cmd *command.Command, auditor *audit.Auditor) error {
	info, _ := store.Describe(cmd.Database())
	ev := &audit.Event{
		Database: cmd.Database().String(),
		Dir:      info.Dir,
		Column:   cmd.Column().Name(),
		Family:   cmd.Column().ID(),
		Key:      cmd.Key(),
		ValueLen: len(cmd.Value()),
		Status:   audit.StatusSuccess,
	}
	var err error
	if info.Writable {
		err = store.With(cmd.Database(), cmd.StoreConfig(), func(h *store.Handle) error {
			return h.Write(cmd.Column(), cmd.Key(), cmd.Value())
		})
	} else {
		// Rejected before the region is opened, so it is never touched.
		err = &store.UnsupportedOperationError{Op: "write", Database: cmd.Database()}
	}
	if err != nil {
		ev.Status = audit.StatusFailed
		ev.Err = err
	}
	auditor.Audit(ev)
	if err != nil {
		return err
	}
	glog.Infof("Wrote %s to %s", humanize.IBytes(uint64(len(cmd.Value()))), cmd.Column())
	return nil
}
