// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

// Package sflow decodes InMon sFlow v5 datagrams: the fixed-layout,
// XDR-encoded UDP payloads switches, routers and hosts emit to describe
// sampled packets and interface counters. Decoding is pure, synchronous and
// total — every byte sequence yields either a structured Datagram or a
// typed error, never a panic or an out-of-bounds read.
package sflow

import (
	"encoding/binary"
	"encoding/json"
	"net"
)

// AddressKind discriminates the tagged union an Address decodes to.
type AddressKind uint32

// The three AddressKind values an sFlow address discriminator can carry.
const (
	AddressUnknown AddressKind = 0
	AddressIPv4    AddressKind = 1
	AddressIPv6    AddressKind = 2
)

// Address is the sFlow agent/router address union: IPv4, IPv6, or Unknown
// (no payload). IP is nil when Kind is AddressUnknown.
type Address struct {
	Kind AddressKind
	IP   net.IP
}

// String renders the address for logging and diagnostics.
func (a Address) String() string {
	if a.Kind == AddressUnknown || a.IP == nil {
		return "unknown"
	}
	return a.IP.String()
}

// DataFormat is a packed u32: the top 20 bits are an enterprise namespace
// (0 = standard sFlow structures), the low 12 bits are a format code within
// that namespace.
type DataFormat uint32

// PackDataFormat builds a DataFormat from its two fields.
func PackDataFormat(enterprise uint32, format uint32) DataFormat {
	return DataFormat((enterprise << 12) | (format & 0xfff))
}

// Enterprise returns the top 20 bits.
func (f DataFormat) Enterprise() uint32 { return uint32(f) >> 12 }

// Format returns the low 12 bits.
func (f DataFormat) Format() uint32 { return uint32(f) & 0xfff }

// Key returns the (enterprise, format) pair used to key the record
// registries.
func (f DataFormat) Key() recordKey {
	return recordKey{enterprise: f.Enterprise(), format: f.Format()}
}

// DataSource is a packed u32 identifying the sampled entity: the top 8 bits
// are a source type (ifIndex, VLAN, ...), the low 24 bits are its index.
type DataSource uint32

// PackDataSource builds a DataSource from its two fields.
func PackDataSource(sourceType uint32, index uint32) DataSource {
	return DataSource((sourceType << 24) | (index & 0xffffff))
}

// SourceType returns the top 8 bits.
func (d DataSource) SourceType() uint32 { return uint32(d) >> 24 }

// Index returns the low 24 bits.
func (d DataSource) Index() uint32 { return uint32(d) & 0xffffff }

// Interface is a packed u32: the top 2 bits are a format code (0 = a single
// ifIndex value follows in the low 30 bits; other values carry the special
// meanings defined by the sFlow spec for "discarded" / "multiple" / etc.),
// the low 30 bits are the value.
type Interface uint32

// PackInterface builds an Interface from its two fields.
func PackInterface(format uint32, value uint32) Interface {
	return Interface((format << 30) | (value & 0x3fffffff))
}

// Format returns the top 2 bits.
func (i Interface) Format() uint32 { return uint32(i) >> 30 }

// Value returns the low 30 bits.
func (i Interface) Value() uint32 { return uint32(i) & 0x3fffffff }

// Mac is a 6-byte hardware address.
type Mac net.HardwareAddr

func (m Mac) String() string {
	return net.HardwareAddr(m).String()
}

// MarshalJSON renders a Mac as its colon-separated string form instead of
// the base64 blob json.Marshal would otherwise produce for a byte slice,
// so tools like sflowdump print something a human can read.
func (m Mac) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// CountedString is length-delimited, UTF-8-candidate payload stored
// verbatim; no validation is performed on its contents.
type CountedString []byte

func (s CountedString) String() string { return string(s) }

// MarshalJSON renders a CountedString as a plain JSON string rather than
// the base64 encoding json.Marshal defaults to for []byte-backed types.
func (s CountedString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Opaque is an owned, length-delimited byte sequence whose interpretation
// is deferred to the caller (used both for Unknown records and for fields
// the per-format decoders keep as raw bytes).
type Opaque []byte

// Datagram is one complete, decoded sFlow v5 UDP payload.
type Datagram struct {
	Version    uint32
	Agent      Address
	SubAgentID uint32
	Sequence   uint32
	UptimeMs   uint32
	Samples    []Sample
}

// SampleKind discriminates the Sample tagged union.
type SampleKind int

// The four known sample shapes, plus Unknown for anything else.
const (
	SampleFlow SampleKind = iota
	SampleCounters
	SampleFlowExpanded
	SampleCountersExpanded
	SampleUnknown
)

// Sample is one measurement envelope within a Datagram.
type Sample struct {
	Kind   SampleKind
	Format DataFormat // the envelope's own (enterprise, format), for Unknown

	Flow     *FlowSample     // set when Kind is SampleFlow or SampleFlowExpanded
	Counters *CountersSample // set when Kind is SampleCounters or SampleCountersExpanded

	Unknown Opaque // set when Kind is SampleUnknown: the envelope's raw body
}

// FlowSample is a flow-sampling envelope (compact or expanded form; the two
// differ only in how Source/Input/Output were encoded on the wire, not in
// this decoded shape).
type FlowSample struct {
	SequenceNumber uint32
	Source         DataSource
	SamplingRate   uint32
	SamplePool     uint32
	Drops          uint32
	Input          Interface
	Output         Interface
	Records        []FlowRecord
}

// CountersSample is a counters-sampling envelope (compact or expanded).
type CountersSample struct {
	SequenceNumber uint32
	Source         DataSource
	Records        []CounterRecord
}

// recordKey is the (enterprise, format) pair a record registry is keyed by.
type recordKey struct {
	enterprise uint32
	format     uint32
}

func bigEndianUint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func bigEndianUint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }
