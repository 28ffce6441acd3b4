/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package kv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/kvinspect/command"
	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/store"
	"github.com/hypermodeinc/kvinspect/x"
)

func conf(path, engine string, kv map[string]string) *viper.Viper {
	v := viper.New()
	v.Set("database", "on_chain")
	v.Set("path", path)
	v.Set("column", "metadata")
	v.Set("key", "0x0102")
	v.Set("encoding", "hex")
	v.Set("engine", engine)
	for k, val := range kv {
		v.Set(k, val)
	}
	return v
}

func TestMutateThenInspect(t *testing.T) {
	for _, engine := range store.Engines() {
		t.Run(engine, func(t *testing.T) {
			dir := t.TempDir()

			var out bytes.Buffer
			err := run(conf(dir, engine, map[string]string{
				"database": "primary-chain",
				"value":    "0xdeadbeef",
			}), command.Mutate, &out)
			require.NoError(t, err)
			require.Empty(t, out.String())

			require.NoError(t, run(conf(dir, engine, nil), command.Inspect, &out))
			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Len(t, lines, 2)
			require.Equal(t, "Length: 4 (0x4) bytes", lines[0])
			require.True(t, strings.HasPrefix(lines[1], "0000:   de ad  be ef"), lines[1])
		})
	}
}

func TestInspectMissingKey(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(conf(t.TempDir(), "", nil), command.Inspect, &out))
	require.Equal(t, "No value found\n", out.String())
}

func TestMutateWithoutValue(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := run(conf(dir, "", nil), command.Mutate, &out)
	require.ErrorIs(t, err, command.ErrMissingValue)
	require.Empty(t, out.String())

	// Validation failed before anything was opened.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMutateCompressionRejected(t *testing.T) {
	dir := t.TempDir()
	auditDir := filepath.Join(t.TempDir(), "audit")
	col := schema.ColumnNames(schema.Compression)[0]

	err := run(conf(dir, "", map[string]string{
		"database": "compression",
		"column":   col,
		"value":    "0x01",
		"audit":    "output=" + auditDir,
	}), command.Mutate, &bytes.Buffer{})
	var unsupported *store.UnsupportedOperationError
	require.True(t, errors.As(err, &unsupported))
	require.ErrorIs(t, err, x.ErrUnsupported)

	// The region was never opened, so nothing was created under the store.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)

	// Inspecting a compression region that does not exist fails to open it.
	err = run(conf(dir, "", map[string]string{
		"database": "compression",
		"column":   col,
	}), command.Inspect, &bytes.Buffer{})
	require.ErrorIs(t, err, x.ErrEngine)

	logs, err := filepath.Glob(filepath.Join(auditDir, "*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	require.Contains(t, string(data), `"status":"FAILED"`)
	require.Contains(t, string(data), `"database":"compression"`)
}

func TestInspectUnknownColumn(t *testing.T) {
	var out bytes.Buffer
	err := run(conf(t.TempDir(), "", map[string]string{"column": "nope"}), command.Inspect, &out)
	var unknown *schema.UnknownColumnError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, schema.ColumnNames(schema.OnChain), unknown.Known)
	require.Empty(t, out.String())
}

func TestInspectMissingPath(t *testing.T) {
	err := run(conf(filepath.Join(t.TempDir(), "missing"), "", nil), command.Inspect, &bytes.Buffer{})
	require.ErrorIs(t, err, x.ErrConfiguration)
}

func TestUTF8Encoding(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(conf(dir, "", map[string]string{
		"encoding": "utf8",
		"key":      "height",
		"value":    "hi",
	}), command.Mutate, &bytes.Buffer{}))

	// The same bytes addressed in hex.
	var out bytes.Buffer
	require.NoError(t, run(conf(dir, "", map[string]string{
		"key": "0x686569676874",
	}), command.Inspect, &out))
	require.Contains(t, out.String(), "68 69")
	require.Contains(t, out.String(), "   hi")
}
