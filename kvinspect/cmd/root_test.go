/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/kvinspect/kvinspect/cmd/columns"
	"github.com/hypermodeinc/kvinspect/kvinspect/cmd/kv"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"inspect", "mutate", "columns", "version"} {
		require.True(t, names[want], want)
	}
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("KVINSPECT_COLUMNS_FORMAT", "json")
	require.Equal(t, "json", columns.Columns.Conf.GetString("format"))

	t.Setenv("KVINSPECT_MUTATE_ENGINE", "pebble")
	require.Equal(t, "pebble", kv.Mutate.Conf.GetString("engine"))
	require.Equal(t, "badger", kv.Inspect.Conf.GetString("engine"))
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"version"})
	defer RootCmd.SetOut(nil)
	require.NoError(t, RootCmd.Execute())
	require.Contains(t, out.String(), "kvinspect version : dev")
}
