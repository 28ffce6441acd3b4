/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package schema declares the logical databases of the store and the closed
// set of columns each one owns.
package schema

import (
	"fmt"

	"github.com/hypermodeinc/kvinspect/x"
)

// Family is the identifier a storage engine uses to address a column family
// inside an opened region.
type Family uint32

// Column is a column resolved against a specific database. The zero Column
// belongs to no database and is rejected by every store operation.
type Column struct {
	db   Database
	id   uint32
	name string
}

// Database returns the database that owns the column.
func (c Column) Database() Database { return c.db }

// ID returns the stable numeric id of the column.
func (c Column) ID() uint32 { return c.id }

// Name returns the canonical snake_case name of the column.
func (c Column) Name() string { return c.name }

// Family returns the engine identifier of the column.
func (c Column) Family() Family { return Family(c.id) }

// IsZero reports whether c was never resolved.
func (c Column) IsZero() bool { return c.db == 0 }

func (c Column) String() string {
	if c.IsZero() {
		return "<unresolved column>"
	}
	return fmt.Sprintf("%s.%s", c.db, c.name)
}

// UnknownColumnError is returned by Resolve when a name is not a column of the
// requested database. Known lists every legal name for that database.
type UnknownColumnError struct {
	Name     string
	Database Database
	Known    []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("invalid column: %q for %s database. Expected one of %v",
		e.Name, e.Database, e.Known)
}

func (e *UnknownColumnError) Is(target error) bool { return target == x.ErrInvalidInput }

// Resolve maps a column name to the Column of db. The name is lowercased and
// '-' is treated like '_' before an exact comparison with canonical names.
func Resolve(db Database, name string) (Column, error) {
	set, ok := registry[db]
	if !ok {
		return Column{}, &UnknownDatabaseError{Name: db.String(), Known: DatabaseNames()}
	}
	norm := normalize(name)
	for _, def := range set.defs {
		if def.name == norm {
			return Column{db: db, id: def.id, name: def.name}, nil
		}
	}
	return Column{}, &UnknownColumnError{Name: name, Database: db, Known: ColumnNames(db)}
}

// Lookup returns the column of db with the given id. Retired and unassigned
// ids report false.
func Lookup(db Database, id uint32) (Column, bool) {
	for _, def := range registry[db].defs {
		if def.id == id {
			return Column{db: db, id: def.id, name: def.name}, true
		}
	}
	return Column{}, false
}

// Retired reports whether id once belonged to a column of db that has since
// been removed.
func Retired(db Database, id uint32) bool {
	for _, r := range registry[db].retired {
		if r == id {
			return true
		}
	}
	return false
}

// RetiredIDs returns the retired ids of db, or nil when it has none.
func RetiredIDs(db Database) []uint32 {
	retired := registry[db].retired
	if len(retired) == 0 {
		return nil
	}
	return append([]uint32(nil), retired...)
}

// Columns returns every column of db ordered by id.
func Columns(db Database) []Column {
	defs := registry[db].defs
	cols := make([]Column, 0, len(defs))
	for _, def := range defs {
		cols = append(cols, Column{db: db, id: def.id, name: def.name})
	}
	return cols
}

// ColumnNames returns the canonical names of every column of db ordered by id.
func ColumnNames(db Database) []string {
	defs := registry[db].defs
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.name)
	}
	return names
}

func init() {
	for db, set := range registry {
		x.AssertTruef(db.Valid(), "columns declared for undeclared database %d", db)
		ids := make(map[uint32]bool)
		names := make(map[string]bool)
		var last int64 = -1
		for _, def := range set.defs {
			x.AssertTruef(!ids[def.id], "duplicate column id %d in %s", def.id, db)
			x.AssertTruef(!names[def.name], "duplicate column name %q in %s", def.name, db)
			x.AssertTruef(int64(def.id) > last, "columns of %s must be ordered by id", db)
			ids[def.id] = true
			names[def.name] = true
			last = int64(def.id)
		}
		for _, r := range set.retired {
			x.AssertTruef(!ids[r], "retired id %d reused in %s", r, db)
		}
	}
}
