/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"path/filepath"

	"github.com/hypermodeinc/kvinspect/schema"
)

// variant describes how a logical database maps onto the store. Adding a
// database means adding a row here and its columns to the schema package.
type variant struct {
	// dir is the region directory below the store root.
	dir string
	// writable is false for regions this tool must never mutate.
	writable bool
}

var variants = map[schema.Database]variant{
	schema.OnChain:     {dir: "on_chain", writable: true},
	schema.OffChain:    {dir: "off_chain", writable: true},
	schema.Compression: {dir: "compression", writable: false},
	schema.GasPrice:    {dir: "gas_price", writable: true},
	schema.Relayer:     {dir: "relayer", writable: true},
}

// RegionInfo describes where a logical database lives inside a store.
type RegionInfo struct {
	Database schema.Database
	Dir      string
	Writable bool
}

// Describe returns the region layout of db. ok is false for undeclared
// databases.
func Describe(db schema.Database) (RegionInfo, bool) {
	v, ok := variants[db]
	if !ok {
		return RegionInfo{}, false
	}
	return RegionInfo{Database: db, Dir: v.dir, Writable: v.writable}, true
}

// RegionDir returns the directory of db's region below the store root path.
func RegionDir(path string, db schema.Database) string {
	return filepath.Join(path, variants[db].dir)
}
