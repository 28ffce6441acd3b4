/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package command turns the loosely typed strings a user passes on the command
// line into a fully resolved Command, or the first reason they are not one.
package command

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/kvinspect/codec"
	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/store"
	"github.com/hypermodeinc/kvinspect/x"
)

// Kind is the operation a command performs.
type Kind uint8

const (
	// Inspect reads one key.
	Inspect Kind = iota + 1
	// Mutate writes one key.
	Mutate
)

func (k Kind) String() string {
	switch k {
	case Inspect:
		return "inspect"
	case Mutate:
		return "mutate"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ErrMissingValue is returned for a mutate command that carries no value.
var ErrMissingValue = &missingValueError{}

type missingValueError struct{}

func (*missingValueError) Error() string { return "mutate requires a value" }

func (*missingValueError) Is(target error) bool { return target == x.ErrInvalidInput }

// Input is the raw, unvalidated shape of one invocation.
type Input struct {
	Kind     Kind
	Database string
	Path     string
	Column   string
	Key      string
	// Value is only read when HasValue is set. An explicitly empty value is
	// a valid mutation.
	Value    string
	HasValue bool
	// Encoding names how Key and Value are turned into bytes. Empty means hex.
	Encoding string
	// Engine is passed through to the store. Empty means the default engine.
	Engine string
}

// Command is one fully validated operation. It is never modified after
// Validate returns it.
type Command struct {
	kind   Kind
	db     schema.Database
	col    schema.Column
	key    []byte
	value  []byte
	path   string
	engine string
}

// Validate checks in and resolves it into a Command. Checks run in a fixed
// order and the first failure is returned on its own:
// the value of a mutate, the database, the encoding, the key, the value, the
// column, and finally the store path.
func Validate(in Input) (*Command, error) {
	if in.Kind != Inspect && in.Kind != Mutate {
		return nil, errors.Errorf("unknown command kind: %s", in.Kind)
	}
	if in.Kind == Mutate && !in.HasValue {
		return nil, ErrMissingValue
	}

	db, err := schema.ParseDatabase(in.Database)
	if err != nil {
		return nil, err
	}
	enc, err := codec.ParseEncoding(in.Encoding)
	if err != nil {
		return nil, err
	}

	key, err := enc.Decode(in.Key)
	if err != nil {
		return nil, errors.Wrap(err, "key")
	}
	value := []byte{}
	if in.Kind == Mutate {
		if value, err = enc.Decode(in.Value); err != nil {
			return nil, errors.Wrap(err, "value")
		}
	}

	col, err := schema.Resolve(db, in.Column)
	if err != nil {
		return nil, err
	}
	if err := store.CheckPath(in.Path); err != nil {
		return nil, err
	}

	return &Command{
		kind:   in.Kind,
		db:     db,
		col:    col,
		key:    key,
		value:  value,
		path:   in.Path,
		engine: in.Engine,
	}, nil
}

// Kind returns whether the command reads or writes.
func (c *Command) Kind() Kind { return c.kind }

// Database returns the logical database the command targets.
func (c *Command) Database() schema.Database { return c.db }

// Column returns the column, already bound to Database.
func (c *Command) Column() schema.Column { return c.col }

// Path returns the store root. It existed when the command was validated.
func (c *Command) Path() string { return c.path }

// Key returns a copy of the decoded key.
func (c *Command) Key() []byte { return append([]byte{}, c.key...) }

// Value returns a copy of the decoded value. It is empty for Inspect.
func (c *Command) Value() []byte { return append([]byte{}, c.value...) }

// StoreConfig returns the store configuration the command should be run with.
func (c *Command) StoreConfig() store.Config {
	return store.Config{Path: c.path, Engine: c.engine}
}
