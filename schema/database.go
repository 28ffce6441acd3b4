/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package schema

import (
	"fmt"
	"strings"

	"github.com/hypermodeinc/kvinspect/x"
)

// Database is one of the logical databases that share the physical store.
// Each one lives in its own region and owns its own set of columns.
type Database uint8

const (
	// OnChain holds the canonical chain state.
	OnChain Database = iota + 1
	// OffChain holds indexes derived from the chain.
	OffChain
	// Compression holds the block compression registry.
	Compression
	// GasPrice holds the gas price algorithm state.
	GasPrice
	// Relayer holds the bridge relayer history.
	Relayer
)

type databaseDef struct {
	name    string
	aliases []string
}

var databases = map[Database]databaseDef{
	OnChain:     {name: "on_chain", aliases: []string{"primary_chain"}},
	OffChain:    {name: "off_chain", aliases: []string{"auxiliary_index"}},
	Compression: {name: "compression", aliases: []string{"compression_state"}},
	GasPrice:    {name: "gas_price", aliases: []string{"fee_metadata"}},
	Relayer:     {name: "relayer", aliases: []string{"bridge_relay"}},
}

// Databases returns every logical database in declaration order.
func Databases() []Database {
	return []Database{OnChain, OffChain, Compression, GasPrice, Relayer}
}

// DatabaseNames returns the canonical name of every logical database.
func DatabaseNames() []string {
	dbs := Databases()
	names := make([]string, 0, len(dbs))
	for _, db := range dbs {
		names = append(names, db.String())
	}
	return names
}

// String returns the canonical snake_case name of the database.
func (db Database) String() string {
	if def, ok := databases[db]; ok {
		return def.name
	}
	return fmt.Sprintf("database(%d)", uint8(db))
}

// Valid reports whether db is one of the declared databases.
func (db Database) Valid() bool {
	_, ok := databases[db]
	return ok
}

// UnknownDatabaseError is returned when a database name does not match any
// declared database.
type UnknownDatabaseError struct {
	Name  string
	Known []string
}

func (e *UnknownDatabaseError) Error() string {
	return fmt.Sprintf("invalid database: %q. Expected one of %v", e.Name, e.Known)
}

func (e *UnknownDatabaseError) Is(target error) bool { return target == x.ErrInvalidInput }

// ParseDatabase maps a user supplied name to its Database. Matching is case
// insensitive and treats '-' like '_', so "on-chain" and "ON_CHAIN" both
// select OnChain.
func ParseDatabase(name string) (Database, error) {
	norm := normalize(name)
	for _, db := range Databases() {
		def := databases[db]
		if def.name == norm {
			return db, nil
		}
		for _, alias := range def.aliases {
			if alias == norm {
				return db, nil
			}
		}
	}
	return 0, &UnknownDatabaseError{Name: name, Known: DatabaseNames()}
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
