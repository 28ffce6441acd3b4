/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"math"

	"github.com/dgraph-io/badger/v4"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/x"
)

type badgerRegion struct {
	db *badger.DB
}

func openBadger(dir string, p openPolicy) (Region, error) {
	versions := 1
	if p.keepHistory {
		versions = math.MaxInt32
	}
	// A commit must be on disk when it returns.
	opt := badger.DefaultOptions(dir).
		WithNumVersionsToKeep(versions).
		WithSyncWrites(true).
		WithLogger(&x.ToGlog{}).
		WithReadOnly(p.readOnly)
	if p.cacheSize > 0 {
		opt = opt.WithBlockCacheSize(p.cacheSize)
	}

	glog.V(2).Infof("Opening badger region at %s (read-only: %v)", dir, p.readOnly)
	db, err := badger.Open(opt)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening badger at %s", dir)
	}
	return &badgerRegion{db: db}, nil
}

func (r *badgerRegion) Get(fam schema.Family, key []byte) ([]byte, error) {
	var val []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(familyKey(fam, key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errNotFound
	case err != nil:
		return nil, err
	}
	if val == nil {
		val = []byte{}
	}
	return val, nil
}

func (r *badgerRegion) NewTxn() Txn {
	return &badgerTxn{txn: r.db.NewTransaction(true)}
}

func (r *badgerRegion) Close() error {
	return r.db.Close()
}

type badgerTxn struct {
	txn *badger.Txn
}

func (t *badgerTxn) Set(fam schema.Family, key, value []byte) error {
	return t.txn.Set(familyKey(fam, key), value)
}

func (t *badgerTxn) Commit() error {
	return t.txn.Commit()
}

func (t *badgerTxn) Discard() {
	t.txn.Discard()
}
