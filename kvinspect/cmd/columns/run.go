/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package columns

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/kvinspect/printer"
	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/x"
)

// Columns is the sub-command invoked when running "kvinspect columns".
var Columns x.SubCommand

func init() {
	Columns.Cmd = &cobra.Command{
		Use:   "columns",
		Short: "List the logical databases and their columns",
		Long: `
Columns lists every logical database with its region directory, whether it can
be mutated, and the name and numeric id of each of its columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(Columns.Conf, cmd.OutOrStdout())
		},
	}
	Columns.EnvPrefix = "KVINSPECT_COLUMNS"

	flag := Columns.Cmd.Flags()
	flag.String("database", "",
		fmt.Sprintf("Only list this database, one of %v.", schema.DatabaseNames()))
	flag.StringP("format", "f", printer.FormatTable,
		fmt.Sprintf("Output format, one of [%s].", strings.Join(printer.Formats(), ", ")))
}

func run(conf *viper.Viper, out io.Writer) error {
	dbs := schema.Databases()
	if name := conf.GetString("database"); name != "" {
		db, err := schema.ParseDatabase(name)
		if err != nil {
			return err
		}
		dbs = []schema.Database{db}
	}

	// Render fully before writing so a failure prints nothing.
	var buf bytes.Buffer
	if err := printer.Columns(&buf, dbs, conf.GetString("format")); err != nil {
		return err
	}
	_, err := out.Write(buf.Bytes())
	return err
}
