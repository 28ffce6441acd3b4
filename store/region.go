/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"encoding/binary"
	"sort"

	"github.com/hypermodeinc/kvinspect/schema"
)

// Region is one opened on-disk region of the store. Implementations wrap a
// single storage engine instance.
type Region interface {
	// Get returns a copy of the value stored under key in family fam, or
	// errNotFound.
	Get(fam schema.Family, key []byte) ([]byte, error)
	// NewTxn starts a write transaction. Nothing staged in it is visible until
	// Commit returns nil.
	NewTxn() Txn
	// Close flushes the region and releases the engine.
	Close() error
}

// Txn is a write transaction on a Region.
type Txn interface {
	Set(fam schema.Family, key, value []byte) error
	Commit() error
	// Discard drops whatever was not committed. It is safe to call after
	// Commit.
	Discard()
}

// openPolicy is how every region is opened. It is fixed for the tool: no
// history, families appear only once written to, no file descriptor cap, and
// the engine's own cache sizing. Regions the tool never writes are opened
// read-only.
type openPolicy struct {
	// readOnly opens the region without creating or modifying any file. The
	// region must already exist.
	readOnly bool
	// keepHistory retains superseded versions of a value.
	keepHistory bool
	// maxOpenFiles caps open table files, negative means no cap.
	maxOpenFiles int
	// cacheSize overrides the block cache size when positive.
	cacheSize int64
}

var defaultPolicy = openPolicy{
	readOnly:     false,
	keepHistory:  false,
	maxOpenFiles: -1,
	cacheSize:    0,
}

func policyFor(v variant) openPolicy {
	p := defaultPolicy
	p.readOnly = !v.writable
	return p
}

type opener func(dir string, p openPolicy) (Region, error)

var engines = map[string]opener{
	"badger": openBadger,
	"pebble": openPebble,
}

// DefaultEngine is used when Config.Engine is empty.
const DefaultEngine = "badger"

// Engines returns the names of the supported storage engines.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// familyKey lays out a key of family fam: the big-endian family id followed by
// the user key. Ordering by family first keeps each family contiguous.
func familyKey(fam schema.Family, key []byte) []byte {
	out := make([]byte, 4+len(key))
	binary.BigEndian.PutUint32(out, uint32(fam))
	copy(out[4:], key)
	return out
}
