/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package codec turns key and value arguments given on the command line into
// the raw bytes stored in the engine.
package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hypermodeinc/kvinspect/x"
)

// Encoding selects how a command line argument maps to bytes. The two
// encodings address different on-disk keys for the same argument, so the
// choice is always explicit.
type Encoding uint8

const (
	// Hex decodes pairs of hex digits, with an optional 0x prefix.
	Hex Encoding = iota
	// UTF8 takes the bytes of the argument as they are.
	UTF8
)

func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case UTF8:
		return "utf8"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// UnknownEncodingError is returned by ParseEncoding for names other than hex
// and utf8.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding: %q. Expected one of [hex utf8]", e.Name)
}

func (e *UnknownEncodingError) Is(target error) bool { return target == x.ErrInvalidInput }

// ParseEncoding returns the Encoding named s.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "":
		return Hex, nil
	case "utf8", "utf-8", "raw":
		return UTF8, nil
	}
	return 0, &UnknownEncodingError{Name: s}
}

// Decode converts s to bytes according to e.
func (e Encoding) Decode(s string) ([]byte, error) {
	switch e {
	case Hex:
		return DecodeHex(s)
	case UTF8:
		return []byte(s), nil
	default:
		return nil, &UnknownEncodingError{Name: e.String()}
	}
}

// MalformedHexError reports the first position in Input that is not part of a
// valid hex string. Positions count from the start of Input, prefix included.
type MalformedHexError struct {
	Input    string
	Position int
	Reason   string
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("malformed hex %q at position %d: %s", e.Input, e.Position, e.Reason)
}

func (e *MalformedHexError) Is(target error) bool { return target == x.ErrInvalidInput }

// DecodeHex decodes s, which may start with 0x or 0X, into bytes. An empty
// string, with or without the prefix, decodes to an empty slice.
func DecodeHex(s string) ([]byte, error) {
	offset := 0
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		offset = 2
	}
	digits := s[offset:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return nil, &MalformedHexError{
				Input:    s,
				Position: offset + i,
				Reason:   fmt.Sprintf("%q is not a hex digit", digits[i]),
			}
		}
	}
	if len(digits)%2 != 0 {
		return nil, &MalformedHexError{
			Input:    s,
			Position: len(s) - 1,
			Reason:   "odd number of hex digits",
		}
	}
	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, []byte(digits)); err != nil {
		return nil, &MalformedHexError{Input: s, Position: offset, Reason: err.Error()}
	}
	return out, nil
}

// EncodeHex returns b as lowercase hex with a 0x prefix.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
