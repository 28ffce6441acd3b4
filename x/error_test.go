/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type categorized struct{ cat error }

func (c categorized) Error() string { return "categorized" }
func (c categorized) Is(target error) bool { return target == c.cat }

func TestCategory(t *testing.T) {
	for _, cat := range []error{ErrInvalidInput, ErrConfiguration, ErrEngine, ErrUnsupported} {
		err := errors.Wrap(categorized{cat}, "while doing things")
		require.Equal(t, cat, Category(err))
	}
	require.Nil(t, Category(errors.New("plain")))
	require.Nil(t, Category(nil))
}
