// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// cursor is a bounded reader over an immutable byte slice. It never mutates
// or aliases the slice it is handed beyond holding a reference to it; every
// value produced by the primitives in xdr.go is copied out before being
// returned. A cursor never grows: subcursor() only ever carves a narrower
// window out of the current one.
type cursor struct {
	buf []byte
	pos int
}

// newCursor wraps buf for reading from the start.
func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

// done reports whether the cursor has no unread bytes left.
func (c *cursor) done() bool {
	return c.remaining() == 0
}

// take returns the next n bytes and advances the cursor past them. It fails
// with ErrTruncated, leaving the cursor's position unchanged, if n exceeds
// what remains.
func (c *cursor) take(n uint32) ([]byte, error) {
	if n > uint32(c.remaining()) {
		return nil, &ErrTruncated{Need: n, Have: uint32(c.remaining())}
	}
	b := c.buf[c.pos : c.pos+int(n)]
	c.pos += int(n)
	return b, nil
}

// skip advances the cursor by n bytes without returning them. Same bound
// check and failure mode as take.
func (c *cursor) skip(n uint32) error {
	if n > uint32(c.remaining()) {
		return &ErrTruncated{Need: n, Have: uint32(c.remaining())}
	}
	c.pos += int(n)
	return nil
}

// subcursor carves an independent cursor over the next n bytes and advances
// the parent past them, in one bounds-checked step. The child is
// independent: reads through it never affect the parent's position, and the
// parent has already "spent" those n bytes whether or not the child is ever
// fully drained.
func (c *cursor) subcursor(n uint32) (*cursor, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return &cursor{buf: b}, nil
}
