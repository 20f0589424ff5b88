// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadU32BigEndian(t *testing.T) {
	c := newCursor([]byte{0x00, 0x00, 0x01, 0x02})
	v, err := c.readU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(258), v)
}

func TestReadBoolRejectsNonCanonical(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 2})
	_, err := c.readBool()
	require.Error(t, err)
	var iv *ErrInvalidValue
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "bool", iv.Context)
}

func TestReadBoolAcceptsZeroAndOne(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 0, 0, 0, 0, 1})
	v, err := c.readBool()
	require.NoError(t, err)
	assert.False(t, v)
	v, err = c.readBool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestOpaquePadding(t *testing.T) {
	// 3 bytes of opaque data followed by 1 pad byte to reach the 4-byte
	// boundary, then one more u32 that must not be shifted by the pad.
	c := newCursor([]byte{'a', 'b', 'c', 0x00, 0x00, 0x00, 0x00, 0x2a})
	b, err := c.readOpaque(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)
	v, err := c.readU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestCountedOpaqueRejectsOverCap(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 100})
	_, err := c.readCountedOpaque(10)
	require.Error(t, err)
	var tl *ErrTooLarge
	require.ErrorAs(t, err, &tl)
}

func TestReadAddressUnknownHasNoPayload(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 0, 0xff})
	addr, err := c.readAddress()
	require.NoError(t, err)
	assert.Equal(t, AddressUnknown, addr.Kind)
	// The trailing byte was never touched.
	assert.Equal(t, 1, c.remaining())
}

func TestReadAddressIPv4(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 1, 10, 0, 0, 1})
	addr, err := c.readAddress()
	require.NoError(t, err)
	assert.Equal(t, AddressIPv4, addr.Kind)
	assert.Equal(t, "10.0.0.1", addr.IP.String())
}

func TestReadMacPadding(t *testing.T) {
	c := newCursor([]byte{1, 2, 3, 4, 5, 6, 0, 0, 0xff})
	mac, err := c.readMac()
	require.NoError(t, err)
	assert.Equal(t, "01:02:03:04:05:06", mac.String())
	assert.Equal(t, 1, c.remaining())
}

func TestCountedArrayTooMany(t *testing.T) {
	c := newCursor([]byte{0xff, 0xff, 0xff, 0xff})
	_, err := readCountedArray(c, 10, "things", func(c *cursor) (uint32, error) {
		return c.readU32()
	})
	require.Error(t, err)
	var tm *ErrTooMany
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, uint32(10), tm.Limit)
	assert.Equal(t, uint32(0xffffffff), tm.Saw)
}

func TestPackedFieldRoundTrip(t *testing.T) {
	df := PackDataFormat(12345, 678)
	assert.Equal(t, uint32(12345), df.Enterprise())
	assert.Equal(t, uint32(678), df.Format())
	assert.Equal(t, df, PackDataFormat(df.Enterprise(), df.Format()))

	ds := PackDataSource(7, 1<<20+3)
	assert.Equal(t, uint32(7), ds.SourceType())
	assert.Equal(t, uint32(1<<20+3), ds.Index())
	assert.Equal(t, ds, PackDataSource(ds.SourceType(), ds.Index()))

	iface := PackInterface(2, 1<<28+9)
	assert.Equal(t, uint32(2), iface.Format())
	assert.Equal(t, uint32(1<<28+9), iface.Value())
	assert.Equal(t, iface, PackInterface(iface.Format(), iface.Value()))
}
