// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

import "testing"

// FuzzDecodeDatagram feeds arbitrary bytes through the default-limits entry
// point. Every input must produce either a Datagram or a typed error; it
// must never panic or hang (spec §1, §5: decode is total and bounded).
func FuzzDecodeDatagram(f *testing.F) {
	f.Add(emptyDatagramBytes())
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 5})
	f.Add([]byte{0, 0, 0, 4, 0, 0, 0, 1, 1, 2, 3, 4})

	f.Fuzz(func(t *testing.T, b []byte) {
		_, _ = DecodeDatagramDefault(b)
	})
}

// FuzzDecodeDatagrams is FuzzDecodeDatagram's multi-datagram counterpart: a
// bogus boundary partway through b must surface as an error with a
// consistent byte count, never a panic.
func FuzzDecodeDatagrams(f *testing.F) {
	d1 := emptyDatagramBytes()
	f.Add(append(append([]byte{}, d1...), d1...))
	f.Add([]byte{0, 0, 0, 5, 1})

	f.Fuzz(func(t *testing.T, b []byte) {
		dgs, remaining, err := DecodeDatagramsDefault(b)
		if err == nil && remaining != 0 {
			t.Fatalf("no error but %d bytes unconsumed", remaining)
		}
		_ = dgs
	})
}
