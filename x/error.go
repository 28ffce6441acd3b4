/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// This file contains some functions for error handling.
// Some common use cases are:
// (1) You hit an error while wiring the program together (registering flags,
//     binding config) and there is nothing sensible left to do. Use x.Check,
//     which logs fatal.
// (2) You receive an error from a storage engine or the filesystem and would
//     like to pass it on with context. Use errors.Wrapf and return it.
// (3) You want to tell the caller what kind of failure happened. Every typed
//     error in this module answers errors.Is for exactly one of the category
//     sentinels below, so the command layer can decide how to report it.

import (
	"log"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput marks failures the operator can fix by changing the
	// arguments: unknown database or column, malformed hex, missing value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration marks failures in the environment the tool was pointed
	// at, such as a store path that does not exist.
	ErrConfiguration = errors.New("configuration error")
	// ErrEngine marks failures reported by the storage engine.
	ErrEngine = errors.New("storage engine error")
	// ErrUnsupported marks operations this tool refuses to perform.
	ErrUnsupported = errors.New("unsupported operation")
)

// Category returns the category sentinel err belongs to, or nil when err does
// not carry one.
func Category(err error) error {
	for _, c := range []error{ErrInvalidInput, ErrConfiguration, ErrEngine, ErrUnsupported} {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrap(err, ""))
	}
}

// AssertTruef asserts that b is true. Otherwise, it would log fatal.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}
