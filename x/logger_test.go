/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesAndCloses(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := InitLogger(&LoggerConf{Output: dir, Size: 1, Days: 1, MessageKey: "op"}, "test.log")
	require.NoError(t, err)
	require.NotNil(t, l.closer)

	l.AuditI("mutate", "database", "on_chain", "value_len", 4)
	require.NoError(t, l.Close())
	// The file is released; closing again is harmless.
	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	entry := make(map[string]interface{})
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "mutate", entry["op"])
	require.Equal(t, "on_chain", entry["database"])
}

func TestLoggerStdoutHasNoFile(t *testing.T) {
	l, err := InitLogger(&LoggerConf{Output: "stdout"}, "unused.log")
	require.NoError(t, err)
	require.Nil(t, l.closer)
	require.NoError(t, l.Close())
}

func TestNilLogger(t *testing.T) {
	l, err := InitLogger(nil, "unused.log")
	require.NoError(t, err)
	require.Nil(t, l)
	l.AuditI("ignored")
	l.AuditE("ignored")
	require.NoError(t, l.Close())
}
