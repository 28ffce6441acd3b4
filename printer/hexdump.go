/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package printer renders what the tool read for a human at a terminal.
package printer

import (
	"fmt"
	"strings"
)

// NoValue is printed when the key is absent.
const NoValue = "No value found"

// DumpConfig shapes a hex dump.
type DumpConfig struct {
	// Width is the number of bytes per row.
	Width int
	// Group is the number of bytes between wider gaps. Zero disables grouping.
	Group int
	// Title prints a length header above the rows.
	Title bool
	// ASCII prints the printable characters of each row after its bytes.
	ASCII bool
}

// DefaultDump is the layout used for values.
var DefaultDump = DumpConfig{Width: 20, Group: 2, Title: true, ASCII: true}

// Value renders the result of a point read. It never fails.
func Value(val []byte, found bool) string {
	if !found {
		return NoValue
	}
	return Dump(val, DefaultDump)
}

// Dump renders b as offset-prefixed rows of hex bytes. The result has no
// trailing newline.
func Dump(b []byte, cfg DumpConfig) string {
	if cfg.Width <= 0 {
		cfg.Width = DefaultDump.Width
	}
	var sb strings.Builder
	if cfg.Title {
		fmt.Fprintf(&sb, "Length: %d (0x%x) bytes", len(b), len(b))
	}

	for start := 0; start < len(b); start += cfg.Width {
		end := start + cfg.Width
		if end > len(b) {
			end = len(b)
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, b[start:end], start, cfg)
	}
	return sb.String()
}

// writeRow prints one row. Offsets are at least four hex digits wide and grow
// per row past 0xffff.
func writeRow(sb *strings.Builder, row []byte, offset int, cfg DumpConfig) {
	fmt.Fprintf(sb, "%04x:   ", offset)
	for i := 0; i < cfg.Width; i++ {
		if i > 0 {
			sb.WriteByte(' ')
			if cfg.Group > 0 && i%cfg.Group == 0 {
				sb.WriteByte(' ')
			}
		}
		if i < len(row) {
			fmt.Fprintf(sb, "%02x", row[i])
		} else {
			sb.WriteString("  ")
		}
	}
	if !cfg.ASCII {
		return
	}
	sb.WriteString("   ")
	for _, c := range row {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
}
