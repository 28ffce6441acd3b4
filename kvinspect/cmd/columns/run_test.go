/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package columns

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/kvinspect/printer"
	"github.com/hypermodeinc/kvinspect/x"
)

func TestRunSingleDatabase(t *testing.T) {
	conf := viper.New()
	conf.Set("database", "bridge-relay")
	conf.Set("format", printer.FormatYAML)

	var out bytes.Buffer
	require.NoError(t, run(conf, &out))
	require.Contains(t, out.String(), "name: relayer")
	require.NotContains(t, out.String(), "on_chain")
}

func TestRunBadInput(t *testing.T) {
	conf := viper.New()
	conf.Set("database", "nope")
	var out bytes.Buffer
	require.ErrorIs(t, run(conf, &out), x.ErrInvalidInput)

	conf = viper.New()
	conf.Set("format", "xml")
	require.ErrorIs(t, run(conf, &out), x.ErrInvalidInput)
	require.Empty(t, out.String())
}
