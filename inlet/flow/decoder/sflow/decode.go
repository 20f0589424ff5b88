// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// DecodeDatagram decodes a single, complete sFlow v5 datagram from b using
// the given resource Limits. It is a pure function: it performs no I/O,
// holds no state across calls, and may be called concurrently from
// arbitrary goroutines since each call owns its own cursor and produces
// values independent of b's lifetime.
func DecodeDatagram(b []byte, limits Limits) (Datagram, error) {
	if uint32(len(b)) > limits.MaxDatagramBytes {
		return Datagram{}, &ErrTooLarge{Context: "datagram", Limit: limits.MaxDatagramBytes, Saw: uint32(len(b))}
	}
	c := newCursor(b)
	return decodeDatagram(c, limits, true)
}

// DecodeDatagramDefault decodes b using DefaultLimits.
func DecodeDatagramDefault(b []byte) (Datagram, error) {
	return DecodeDatagram(b, DefaultLimits())
}

// DecodeDatagrams decodes as many concatenated sFlow v5 datagrams from b as
// it can. sFlow datagrams carry no outer framing of their own, so the
// boundary between one datagram and the next is inferred purely from the
// envelope's internal lengths (spec §4.7): after a successful decode, the
// cursor's position is exactly where the next datagram begins.
//
// On error, the datagrams successfully decoded so far are returned
// alongside the error and the number of bytes not yet consumed, so callers
// can choose to surface partial results or discard them.
func DecodeDatagrams(b []byte, limits Limits) ([]Datagram, int, error) {
	c := newCursor(b)
	var datagrams []Datagram
	for !c.done() {
		if uint32(c.remaining()) > limits.MaxDatagramBytes {
			return datagrams, c.remaining(), &ErrTooLarge{
				Context: "datagram", Limit: limits.MaxDatagramBytes, Saw: uint32(c.remaining()),
			}
		}
		before := c.pos
		dg, err := decodeDatagram(c, limits, false)
		if err != nil {
			// Decoding failed with the cursor mid-datagram: rewind to where
			// this datagram began, so the caller gets remaining() measured
			// from the start of the datagram that failed.
			c.pos = before
			return datagrams, c.remaining(), err
		}
		datagrams = append(datagrams, dg)
	}
	return datagrams, c.remaining(), nil
}

// DecodeDatagramsDefault decodes b using DefaultLimits.
func DecodeDatagramsDefault(b []byte) ([]Datagram, int, error) {
	return DecodeDatagrams(b, DefaultLimits())
}
