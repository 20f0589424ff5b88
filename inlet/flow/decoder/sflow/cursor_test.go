// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTakeAdvancesPosition(t *testing.T) {
	c := newCursor([]byte{1, 2, 3, 4, 5})
	b, err := c.take(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, 2, c.remaining())
}

func TestCursorTakeTruncated(t *testing.T) {
	c := newCursor([]byte{1, 2})
	_, err := c.take(3)
	require.Error(t, err)
	var te *ErrTruncated
	require.ErrorAs(t, err, &te)
	assert.Equal(t, uint32(3), te.Need)
	assert.Equal(t, uint32(2), te.Have)
	// A failed read must not move the cursor.
	assert.Equal(t, 2, c.remaining())
}

func TestCursorSkipTruncated(t *testing.T) {
	c := newCursor([]byte{1, 2})
	err := c.skip(5)
	require.Error(t, err)
	assert.Equal(t, 2, c.remaining())
}

func TestCursorSubcursorIsIndependent(t *testing.T) {
	c := newCursor([]byte{1, 2, 3, 4, 5, 6})
	child, err := c.subcursor(4)
	require.NoError(t, err)
	assert.Equal(t, 2, c.remaining())
	assert.Equal(t, 4, child.remaining())

	_, err = child.take(4)
	require.NoError(t, err)
	assert.True(t, child.done())
	// Draining the child never moves the parent.
	assert.Equal(t, 2, c.remaining())
}

func TestCursorDone(t *testing.T) {
	c := newCursor(nil)
	assert.True(t, c.done())
	c = newCursor([]byte{1})
	assert.False(t, c.done())
}
