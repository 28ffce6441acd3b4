/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package store opens one region of the store for a logical database and
// performs point reads and single-key transactional writes against it.
package store

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/kvinspect/schema"
)

// Config locates the store and picks the engine it was written with.
type Config struct {
	// Path is the store root. It must exist.
	Path string
	// Engine is one of Engines(). Empty selects DefaultEngine.
	Engine string
}

// Handle owns the single region opened for one logical database. It is not
// safe for concurrent use. The regions of the other databases are never
// opened.
type Handle struct {
	db     schema.Database
	v      variant
	engine string
	dir    string
	region Region
}

// Open checks that conf.Path exists and opens the region of db below it.
// Regions of databases that are not writable are opened read-only and must
// already exist.
func Open(db schema.Database, conf Config) (*Handle, error) {
	v, ok := variants[db]
	if !ok {
		return nil, &schema.UnknownDatabaseError{Name: db.String(), Known: schema.DatabaseNames()}
	}
	if err := CheckPath(conf.Path); err != nil {
		return nil, err
	}

	engine := conf.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	open, ok := engines[engine]
	if !ok {
		return nil, &UnknownEngineError{Name: engine, Known: Engines()}
	}

	dir := RegionDir(conf.Path, db)
	region, err := open(dir, policyFor(v))
	if err != nil {
		return nil, &EngineOpenError{Database: db, Engine: engine, Dir: dir, Cause: err}
	}
	glog.Infof("Opened %s database (%s) at %s", db, engine, dir)
	return &Handle{db: db, v: v, engine: engine, dir: dir, region: region}, nil
}

// CheckPath returns a PathNotFoundError unless path is an existing directory.
func CheckPath(path string) error {
	if path == "" {
		return &PathNotFoundError{Path: path, Reason: "no path given"}
	}
	fi, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return &PathNotFoundError{Path: path}
	case err != nil:
		return &PathNotFoundError{Path: path, Reason: err.Error()}
	case !fi.IsDir():
		return &PathNotFoundError{Path: path, Reason: "not a directory"}
	}
	return nil
}

// With opens db, runs fn with the handle, and shuts the handle down whether or
// not fn failed. The first error wins.
func With(db schema.Database, conf Config, fn func(h *Handle) error) (rerr error) {
	h, err := Open(db, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := h.Shutdown(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	return fn(h)
}

// Database returns the logical database the handle was opened for.
func (h *Handle) Database() schema.Database { return h.db }

// Dir returns the region directory backing the handle.
func (h *Handle) Dir() string { return h.dir }

// Writable reports whether Write is allowed on this handle.
func (h *Handle) Writable() bool { return h.v.writable }

func (h *Handle) check(col schema.Column) error {
	if h.region == nil {
		return ErrHandleShutdown
	}
	if col.IsZero() || col.Database() != h.db {
		return &ColumnMismatchError{Column: col, Handle: h.db}
	}
	return nil
}

// Get returns the value stored under key in col. A missing key is not an
// error: it returns found == false.
func (h *Handle) Get(col schema.Column, key []byte) (val []byte, found bool, err error) {
	if err := h.check(col); err != nil {
		return nil, false, err
	}
	val, err = h.region.Get(col.Family(), key)
	switch {
	case errors.Is(err, errNotFound):
		return nil, false, nil
	case err != nil:
		return nil, false, &StorageIOError{Op: "read", Database: h.db, Column: col, Cause: err}
	}
	return val, true, nil
}

// Write stores value under key in col inside its own transaction. Either the
// write is committed in full or the region is left as it was.
func (h *Handle) Write(col schema.Column, key, value []byte) error {
	if h.region == nil {
		return ErrHandleShutdown
	}
	if !h.v.writable {
		return &UnsupportedOperationError{Op: "write", Database: h.db}
	}
	if err := h.check(col); err != nil {
		return err
	}

	txn := h.region.NewTxn()
	defer txn.Discard()
	if err := txn.Set(col.Family(), key, value); err != nil {
		return &StorageIOError{Op: "write", Database: h.db, Column: col, Cause: err}
	}
	if err := txn.Commit(); err != nil {
		return &StorageIOError{Op: "commit", Database: h.db, Column: col, Cause: err}
	}
	glog.V(2).Infof("Committed %s value to %s", humanize.IBytes(uint64(len(value))), col)
	return nil
}

// Shutdown releases the engine. Committed writes are durable once it returns.
// The handle is unusable afterwards.
func (h *Handle) Shutdown() error {
	if h.region == nil {
		return ErrHandleShutdown
	}
	region := h.region
	h.region = nil
	if err := region.Close(); err != nil {
		return &StorageIOError{Op: "shutdown", Database: h.db, Cause: err}
	}
	glog.Infof("Closed %s database at %s", h.db, h.dir)
	return nil
}
