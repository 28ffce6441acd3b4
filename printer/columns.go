/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/store"
	"github.com/hypermodeinc/kvinspect/x"
)

// Listing formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats returns every format Columns accepts.
func Formats() []string { return []string{FormatTable, FormatJSON, FormatYAML} }

// UnknownFormatError is returned for a listing format Columns cannot render.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("invalid format: %q. Expected one of %v", e.Name, Formats())
}

func (e *UnknownFormatError) Is(target error) bool { return target == x.ErrInvalidInput }

type columnEntry struct {
	ID   uint32 `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type databaseEntry struct {
	Name     string        `json:"name" yaml:"name"`
	Dir      string        `json:"dir" yaml:"dir"`
	Writable bool          `json:"writable" yaml:"writable"`
	Columns  []columnEntry `json:"columns" yaml:"columns"`
	Retired  []uint32      `json:"retired,omitempty" yaml:"retired,omitempty"`
}

func listing(dbs []schema.Database) []databaseEntry {
	out := make([]databaseEntry, 0, len(dbs))
	for _, db := range dbs {
		info, _ := store.Describe(db)
		entry := databaseEntry{Name: db.String(), Dir: info.Dir, Writable: info.Writable}
		for _, col := range schema.Columns(db) {
			entry.Columns = append(entry.Columns, columnEntry{ID: col.ID(), Name: col.Name()})
		}
		entry.Retired = schema.RetiredIDs(db)
		out = append(out, entry)
	}
	return out
}

// Columns writes the column layout of dbs to w in the given format. An empty
// format means FormatTable.
func Columns(w io.Writer, dbs []schema.Database, format string) error {
	entries := listing(dbs)
	switch strings.ToLower(format) {
	case FormatTable, "":
		return renderTable(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "while encoding json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, "while encoding yaml")
		}
		return errors.Wrap(enc.Close(), "while encoding yaml")
	default:
		return &UnknownFormatError{Name: format}
	}
}

func renderTable(w io.Writer, entries []databaseEntry) error {
	tb := tablewriter.NewWriter(w)
	tb.SetHeader([]string{"Database", "Dir", "Writable", "Id", "Column"})
	tb.SetAutoMergeCells(true)
	tb.SetRowLine(false)
	for _, e := range entries {
		for _, c := range e.Columns {
			tb.Append([]string{
				e.Name, e.Dir, strconv.FormatBool(e.Writable),
				strconv.FormatUint(uint64(c.ID), 10), c.Name,
			})
		}
	}
	tb.Render()
	return nil
}
