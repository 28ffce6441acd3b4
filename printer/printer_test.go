/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/x"
)

func TestValueAbsent(t *testing.T) {
	require.Equal(t, "No value found", Value(nil, false))
	require.Equal(t, NoValue, Value([]byte{0x01}, false))
}

func TestValueDeadbeef(t *testing.T) {
	out := Value([]byte{0xde, 0xad, 0xbe, 0xef}, true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Length: 4 (0x4) bytes", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0000:   de ad  be ef "), lines[1])
	require.True(t, strings.HasSuffix(lines[1], "   ...."), lines[1])
}

func TestValueEmpty(t *testing.T) {
	require.Equal(t, "Length: 0 (0x0) bytes", Value([]byte{}, true))
}

func TestDumpRows(t *testing.T) {
	b := []byte("abcdefghijklmnopqrstuvwxyz")
	out := Dump(b, DefaultDump)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Length: 26 (0x1a) bytes", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0000:   61 62  63 64"), lines[1])
	require.True(t, strings.HasSuffix(lines[1], "   abcdefghijklmnopqrst"), lines[1])
	require.True(t, strings.HasPrefix(lines[2], "0014:   75 76  77 78"), lines[2])
	require.True(t, strings.HasSuffix(lines[2], "   uvwxyz"), lines[2])

	// A short last row is padded so the text column lines up.
	require.Equal(t, strings.Index(lines[1], "   abc"), strings.Index(lines[2], "   uvw"))
}

func TestDumpNoTitleNoASCII(t *testing.T) {
	out := Dump([]byte{0x00, 0x01, 0x02}, DumpConfig{Width: 4, Group: 0})
	require.Equal(t, "0000:   00 01 02   ", out)
}

func TestDumpLargeLength(t *testing.T) {
	out := Dump(make([]byte, 1024), DefaultDump)
	require.Equal(t, "Length: 1024 (0x400) bytes", out[:strings.Index(out, "\n")])

	out = Dump(make([]byte, 70000), DefaultDump)
	lines := strings.Split(out, "\n")
	require.Equal(t, "Length: 70000 (0x11170) bytes", lines[0])
	// Offsets keep four digits until they need more.
	require.True(t, strings.HasPrefix(lines[1], "0000:   00"), lines[1])
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "1115c:   00"), lines[len(lines)-1])
}

func TestColumnsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Columns(&buf, schema.Databases(), FormatJSON))

	var got []databaseEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, len(schema.Databases()))
	require.Equal(t, "on_chain", got[0].Name)
	require.Equal(t, "metadata", got[0].Columns[0].Name)
	require.Equal(t, uint32(0), got[0].Columns[0].ID)

	for _, e := range got {
		require.Equal(t, e.Name != "compression", e.Writable, e.Name)
	}
	require.Equal(t, schema.RetiredIDs(schema.OffChain), got[1].Retired)
}

func TestColumnsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Columns(&buf, []schema.Database{schema.Relayer}, FormatYAML))

	var got []databaseEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "relayer", got[0].Name)
	require.Len(t, got[0].Columns, len(schema.Columns(schema.Relayer)))
}

func TestColumnsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Columns(&buf, []schema.Database{schema.GasPrice}, ""))
	out := buf.String()
	require.Contains(t, strings.ToUpper(out), "DATABASE")
	for _, name := range schema.ColumnNames(schema.GasPrice) {
		require.Contains(t, out, name)
	}
}

func TestColumnsUnknownFormat(t *testing.T) {
	err := Columns(&bytes.Buffer{}, schema.Databases(), "xml")
	var unknown *UnknownFormatError
	require.True(t, errors.As(err, &unknown))
	require.ErrorIs(t, err, x.ErrInvalidInput)
}
