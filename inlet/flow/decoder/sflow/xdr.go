// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

import (
	"math"
	"net"
)

// XDR primitives built on cursor. Every reader below fails with
// ErrTruncated on short input and consumes exactly its documented width on
// success. A failing take or skip never advances the cursor, but a reader
// made of several reads (opaque plus padding, MAC plus padding, address
// discriminator plus body, length plus opaque) may fail after its earlier
// reads have already advanced it.

func (c *cursor) readU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return bigEndianUint32(b), nil
}

func (c *cursor) readU64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return bigEndianUint64(b), nil
}

func (c *cursor) readI32() (int32, error) {
	v, err := c.readU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (c *cursor) readI64() (int64, error) {
	v, err := c.readU64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readBool reads a u32 that must be 0 or 1.
func (c *cursor) readBool() (bool, error) {
	v, err := c.readU32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &ErrInvalidValue{Context: "bool", Value: v}
	}
}

// padLen returns the number of zero-pad bytes XDR requires after n bytes of
// opaque data to reach a 4-byte boundary.
func padLen(n uint32) uint32 {
	return (4 - n%4) % 4
}

// readOpaque reads n bytes of fixed-length opaque data, then skips XDR's
// alignment padding.
func (c *cursor) readOpaque(n uint32) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	if err := c.skip(padLen(n)); err != nil {
		return nil, err
	}
	// Copy out: callers own the returned slice independently of the input
	// buffer's lifetime.
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// readCountedOpaque reads a u32 length L (capped by maxBytes, checked
// before any allocation), then L bytes of opaque data plus padding.
func (c *cursor) readCountedOpaque(maxBytes uint32) (Opaque, error) {
	l, err := c.readU32()
	if err != nil {
		return nil, err
	}
	if l > maxBytes {
		return nil, &ErrTooLarge{Context: "opaque", Limit: maxBytes, Saw: l}
	}
	if l > uint32(c.remaining()) {
		return nil, &ErrTruncated{Need: l, Have: uint32(c.remaining())}
	}
	b, err := c.readOpaque(l)
	if err != nil {
		return nil, err
	}
	return Opaque(b), nil
}

// readCountedString has identical framing to readCountedOpaque; the value
// is stored verbatim with no UTF-8 validation.
func (c *cursor) readCountedString(maxBytes uint32) (CountedString, error) {
	o, err := c.readCountedOpaque(maxBytes)
	if err != nil {
		return nil, err
	}
	return CountedString(o), nil
}

// readAddress reads a u32 discriminator (1 = IPv4, 2 = IPv6, other =
// Unknown with no payload) followed by the address body, if any.
func (c *cursor) readAddress() (Address, error) {
	kind, err := c.readU32()
	if err != nil {
		return Address{}, err
	}
	switch AddressKind(kind) {
	case AddressIPv4:
		b, err := c.take(4)
		if err != nil {
			return Address{}, err
		}
		ip := make(net.IP, 4)
		copy(ip, b)
		return Address{Kind: AddressIPv4, IP: ip}, nil
	case AddressIPv6:
		b, err := c.take(16)
		if err != nil {
			return Address{}, err
		}
		ip := make(net.IP, 16)
		copy(ip, b)
		return Address{Kind: AddressIPv6, IP: ip}, nil
	default:
		return Address{Kind: AddressUnknown}, nil
	}
}

// readMac reads a 6-byte hardware address padded to 8 bytes, the padded
// form most sFlow sample records use for MAC fields.
func (c *cursor) readMac() (Mac, error) {
	b, err := c.take(6)
	if err != nil {
		return nil, err
	}
	if err := c.skip(2); err != nil {
		return nil, err
	}
	mac := make(net.HardwareAddr, 6)
	copy(mac, b)
	return Mac(mac), nil
}

// readFloat32 reads an IEEE-754 single-precision float, used by a handful
// of host-counter records (load averages).
func (c *cursor) readFloat32() (float32, error) {
	v, err := c.readU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// readCountedArray reads a u32 count N (rejected with ErrTooMany when it
// exceeds maxElems) then decodes N elements with decodeElem, in order.
func readCountedArray[T any](c *cursor, maxElems uint32, context string, decodeElem func(*cursor) (T, error)) ([]T, error) {
	n, err := c.readU32()
	if err != nil {
		return nil, err
	}
	if n > maxElems {
		return nil, &ErrTooMany{Context: context, Limit: maxElems, Saw: n}
	}
	// n is now known to be <= maxElems, a configured, bounded constant: the
	// allocation below is bounded regardless of what the wire claimed.
	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := decodeElem(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
