/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/kvinspect/schema"
	"github.com/hypermodeinc/kvinspect/x"
)

// ErrHandleShutdown is returned by every Handle method called after Shutdown.
var ErrHandleShutdown = errors.New("database handle already shut down")

// errNotFound is what regions return for a key that is absent.
var errNotFound = errors.New("key not found")

// PathNotFoundError is returned when the configured store path is missing.
type PathNotFoundError struct {
	Path   string
	Reason string
}

func (e *PathNotFoundError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("database path `%s` does not exist", e.Path)
	}
	return fmt.Sprintf("database path `%s` does not exist: %s", e.Path, e.Reason)
}

func (e *PathNotFoundError) Is(target error) bool { return target == x.ErrConfiguration }

// UnknownEngineError is returned for an engine name no opener is registered for.
type UnknownEngineError struct {
	Name  string
	Known []string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("invalid engine: %q. Expected one of %v", e.Name, e.Known)
}

func (e *UnknownEngineError) Is(target error) bool { return target == x.ErrInvalidInput }

// EngineOpenError wraps a failure of the engine to open a region.
type EngineOpenError struct {
	Database schema.Database
	Engine   string
	Dir      string
	Cause    error
}

func (e *EngineOpenError) Error() string {
	return fmt.Sprintf("while opening %s database (%s) at %s: %v",
		e.Database, e.Engine, e.Dir, e.Cause)
}

func (e *EngineOpenError) Unwrap() error { return e.Cause }
func (e *EngineOpenError) Is(target error) bool { return target == x.ErrEngine }

// StorageIOError wraps an engine failure during a read, write, commit or
// shutdown.
type StorageIOError struct {
	Op       string
	Database schema.Database
	Column   schema.Column
	Cause    error
}

func (e *StorageIOError) Error() string {
	if e.Column.IsZero() {
		return fmt.Sprintf("%s on %s database failed: %v", e.Op, e.Database, e.Cause)
	}
	return fmt.Sprintf("%s of column %s on %s database failed: %v",
		e.Op, e.Column.Name(), e.Database, e.Cause)
}

func (e *StorageIOError) Unwrap() error { return e.Cause }
func (e *StorageIOError) Is(target error) bool { return target == x.ErrEngine }

// UnsupportedOperationError is returned for operations a database refuses,
// such as writes to a read-only region.
type UnsupportedOperationError struct {
	Op       string
	Database schema.Database
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s database is not supported for %s operations", e.Database, e.Op)
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == x.ErrUnsupported }

// ColumnMismatchError is returned when a column resolved against one database
// is used with a handle opened for another.
type ColumnMismatchError struct {
	Column schema.Column
	Handle schema.Database
}

func (e *ColumnMismatchError) Error() string {
	return fmt.Sprintf("column %s cannot be used with a handle for the %s database",
		e.Column, e.Handle)
}

func (e *ColumnMismatchError) Is(target error) bool { return target == x.ErrInvalidInput }
