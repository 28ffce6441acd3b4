/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"math"

	"github.com/cockroachdb/pebble/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/x"
)

type pebbleRegion struct {
	db       *pebble.DB
	readOnly bool
}

func openPebble(dir string, p openPolicy) (Region, error) {
	// Pebble never keeps superseded versions around, so keepHistory has no
	// knob here.
	opts := &pebble.Options{
		Logger:   &x.ToGlog{},
		ReadOnly: p.readOnly,
	}
	switch {
	case p.maxOpenFiles < 0:
		opts.MaxOpenFiles = math.MaxInt32
	case p.maxOpenFiles > 0:
		opts.MaxOpenFiles = p.maxOpenFiles
	}
	if p.cacheSize > 0 {
		cache := pebble.NewCache(p.cacheSize)
		defer cache.Unref()
		opts.Cache = cache
	}

	glog.V(2).Infof("Opening pebble region at %s (read-only: %v)", dir, p.readOnly)
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening pebble at %s", dir)
	}
	return &pebbleRegion{db: db, readOnly: p.readOnly}, nil
}

func (r *pebbleRegion) Get(fam schema.Family, key []byte) ([]byte, error) {
	val, closer, err := r.db.Get(familyKey(fam, key))
	switch {
	case errors.Is(err, pebble.ErrNotFound):
		return nil, errNotFound
	case err != nil:
		return nil, err
	}
	defer closer.Close()
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (r *pebbleRegion) NewTxn() Txn {
	return &pebbleTxn{batch: r.db.NewBatch()}
}

func (r *pebbleRegion) Close() error {
	if r.readOnly {
		return r.db.Close()
	}
	if err := r.db.Flush(); err != nil {
		_ = r.db.Close()
		return errors.Wrap(err, "while flushing pebble")
	}
	return r.db.Close()
}

type pebbleTxn struct {
	batch  *pebble.Batch
	closed bool
}

func (t *pebbleTxn) Set(fam schema.Family, key, value []byte) error {
	return t.batch.Set(familyKey(fam, key), value, nil)
}

func (t *pebbleTxn) Commit() error {
	return t.batch.Commit(pebble.Sync)
}

func (t *pebbleTxn) Discard() {
	if t.closed {
		return
	}
	t.closed = true
	_ = t.batch.Close()
}
