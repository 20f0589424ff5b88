// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// decodeFramed is the sub-decoder framing contract (spec §4.3), the
// linchpin of the decoder's robustness: it reads a u32 length L, carves a
// child cursor of exactly L bytes, runs decode against the child, and
// requires the child be fully consumed. A bug in one record's decoder can
// therefore never desynchronize the records that follow it in the parent.
func decodeFramed[T any](c *cursor, limits Limits, context string, decode func(*cursor) (T, error)) (T, error) {
	var zero T
	l, err := c.readU32()
	if err != nil {
		return zero, err
	}
	if l > uint32(c.remaining()) {
		return zero, &ErrTruncated{Need: l, Have: uint32(c.remaining())}
	}
	if l > limits.MaxRecordBytes {
		return zero, &ErrTooLarge{Context: context, Limit: limits.MaxRecordBytes, Saw: l}
	}
	child, err := c.subcursor(l)
	if err != nil {
		return zero, err
	}
	v, err := decode(child)
	if err != nil {
		return zero, err
	}
	if !child.done() {
		return zero, &ErrTrailingBytes{Context: context, Count: uint32(child.remaining())}
	}
	return v, nil
}

// FlowRecordKind discriminates the FlowRecord tagged union.
type FlowRecordKind int

// FlowRecord is one typed piece of data within a flow sample, identified by
// an (enterprise, format) key. Exactly one of the typed fields is non-nil,
// matching Kind, except for an unknown record, which carries its raw bytes
// in the Unknown field instead.
type FlowRecord struct {
	Key  recordKeyPublic
	Kind FlowRecordKind

	SampledHeader  *SampledHeader
	SampledEthernet *SampledEthernet
	SampledIPv4    *SampledIPv4
	SampledIPv6    *SampledIPv6
	ExtendedSwitch *ExtendedSwitch
	ExtendedRouter *ExtendedRouter
	ExtendedGateway *ExtendedGateway
	ExtendedUser   *ExtendedUser
	ExtendedURL    *ExtendedURL
	ExtendedMPLS   *ExtendedMPLS
	ExtendedNAT    *ExtendedNAT
	ExtendedVLANTunnel *ExtendedVLANTunnel
	Extended80211Payload *Extended80211Payload
	Extended80211RX      *Extended80211RX
	Extended80211TX      *Extended80211TX

	Unknown Opaque
}

// CounterRecordKind discriminates the CounterRecord tagged union.
type CounterRecordKind int

// CounterRecord is one typed piece of data within a counters sample.
type CounterRecord struct {
	Key  recordKeyPublic
	Kind CounterRecordKind

	IfCounters          *IfCounters
	EthernetCounters    *EthernetCounters
	TokenRingCounters   *TokenRingCounters
	VGCounters          *VGCounters
	VLANCounters        *VLANCounters
	ProcessorCounters   *ProcessorCounters
	RadioUtilization    *RadioUtilization
	OpenflowPort        *OpenflowPort
	HostDescr           *HostDescr
	HostAdapters        *HostAdapters
	HostParent          *HostParent
	HostCPU             *HostCPU
	HostMemory          *HostMemory
	HostDiskIO          *HostDiskIO
	HostNetIO           *HostNetIO
	VirtNode            *VirtNode
	VirtCPU             *VirtCPU
	VirtMemory          *VirtMemory
	VirtDiskIO          *VirtDiskIO
	VirtNetIO           *VirtNetIO
	AppResources        *AppResources

	Unknown Opaque
}

// recordKeyPublic mirrors recordKey but is exported on decoded records so
// callers of the library can inspect the (enterprise, format) of any
// record, including Unknown ones, without reaching into internals.
type recordKeyPublic struct {
	Enterprise uint32
	Format     uint32
}

func (k recordKey) public() recordKeyPublic {
	return recordKeyPublic{Enterprise: k.enterprise, Format: k.format}
}

type flowRecordEntry struct {
	decode func(*cursor, Limits) (FlowRecord, error)
}

type counterRecordEntry struct {
	decode func(*cursor, Limits) (CounterRecord, error)
}

// flowRecordRegistry and counterRecordRegistry are disjoint (enterprise,
// format) namespaces. Lookup is a single map access: constant-time per
// spec §4.4. Unknown keys are not present here; the caller falls through
// to the Unknown-opaque path.
var flowRecordRegistry map[recordKey]flowRecordEntry
var counterRecordRegistry map[recordKey]counterRecordEntry

func stdFlowKey(format uint32) recordKey    { return recordKey{enterprise: 0, format: format} }
func stdCounterKey(format uint32) recordKey { return recordKey{enterprise: 0, format: format} }

func init() {
	flowRecordRegistry = map[recordKey]flowRecordEntry{
		stdFlowKey(1):  {decode: decodeSampledHeader},
		stdFlowKey(2):  {decode: decodeSampledEthernet},
		stdFlowKey(3):  {decode: decodeSampledIPv4},
		stdFlowKey(4):  {decode: decodeSampledIPv6},
		stdFlowKey(1001): {decode: decodeExtendedSwitch},
		stdFlowKey(1002): {decode: decodeExtendedRouter},
		stdFlowKey(1003): {decode: decodeExtendedGateway},
		stdFlowKey(1004): {decode: decodeExtendedUser},
		stdFlowKey(1005): {decode: decodeExtendedURL},
		stdFlowKey(1006): {decode: decodeExtendedMPLS},
		stdFlowKey(1007): {decode: decodeExtendedNAT},
		stdFlowKey(1012): {decode: decodeExtendedVLANTunnel},
		stdFlowKey(1013): {decode: decodeExtended80211Payload},
		stdFlowKey(1014): {decode: decodeExtended80211RX},
		stdFlowKey(1015): {decode: decodeExtended80211TX},
	}

	counterRecordRegistry = map[recordKey]counterRecordEntry{
		stdCounterKey(1):  {decode: decodeIfCounters},
		stdCounterKey(2):  {decode: decodeEthernetCounters},
		stdCounterKey(3):  {decode: decodeTokenRingCounters},
		stdCounterKey(4):  {decode: decodeVGCounters},
		stdCounterKey(5):  {decode: decodeVLANCounters},
		stdCounterKey(1001): {decode: decodeProcessorCounters},
		stdCounterKey(1002): {decode: decodeRadioUtilization},
		stdCounterKey(1004): {decode: decodeOpenflowPort},
		stdCounterKey(2000): {decode: decodeHostDescr},
		stdCounterKey(2001): {decode: decodeHostAdapters},
		stdCounterKey(2002): {decode: decodeHostParent},
		stdCounterKey(2003): {decode: decodeHostCPU},
		stdCounterKey(2004): {decode: decodeHostMemory},
		stdCounterKey(2005): {decode: decodeHostDiskIO},
		stdCounterKey(2006): {decode: decodeHostNetIO},
		stdCounterKey(2100): {decode: decodeVirtNode},
		stdCounterKey(2101): {decode: decodeVirtCPU},
		stdCounterKey(2102): {decode: decodeVirtMemory},
		stdCounterKey(2103): {decode: decodeVirtDiskIO},
		stdCounterKey(2104): {decode: decodeVirtNetIO},
		stdCounterKey(2202): {decode: decodeAppResources},
	}
}

// unknownRecordKind marks a FlowRecord/CounterRecord whose (enterprise,
// format) was not found in the registry; only Unknown is populated.
const unknownRecordKind = -1

// decodeUnknownBody drains the child cursor entirely and returns its bytes
// as an owned Opaque, so the framed sub-decoder's trailing-bytes check
// never fires on the unknown-record fallback path (spec §4.3).
func decodeUnknownBody(child *cursor) (Opaque, error) {
	b, err := child.take(uint32(child.remaining()))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Opaque(out), nil
}

// decodeFlowRecord dispatches one flow record by its (enterprise, format)
// key, framed via decodeFramed so a missing registry entry or a decoder bug
// never desynchronizes the sample's record vector.
func decodeFlowRecord(c *cursor, limits Limits) (FlowRecord, error) {
	format, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	key := DataFormat(format).Key()
	entry, ok := flowRecordRegistry[key]
	var rec FlowRecord
	if !ok {
		rec, err = decodeFramed(c, limits, "unknown flow record", func(child *cursor) (FlowRecord, error) {
			data, err := decodeUnknownBody(child)
			if err != nil {
				return FlowRecord{}, err
			}
			return FlowRecord{Kind: unknownRecordKind, Unknown: data}, nil
		})
	} else {
		rec, err = decodeFramed(c, limits, "flow record", func(child *cursor) (FlowRecord, error) {
			return entry.decode(child, limits)
		})
	}
	if err != nil {
		return FlowRecord{}, err
	}
	rec.Key = key.public()
	return rec, nil
}

// decodeCounterRecord is decodeFlowRecord's counterpart for the counters
// namespace.
func decodeCounterRecord(c *cursor, limits Limits) (CounterRecord, error) {
	format, err := c.readU32()
	if err != nil {
		return CounterRecord{}, err
	}
	key := DataFormat(format).Key()
	entry, ok := counterRecordRegistry[key]
	var rec CounterRecord
	if !ok {
		rec, err = decodeFramed(c, limits, "unknown counter record", func(child *cursor) (CounterRecord, error) {
			data, err := decodeUnknownBody(child)
			if err != nil {
				return CounterRecord{}, err
			}
			return CounterRecord{Kind: unknownRecordKind, Unknown: data}, nil
		})
	} else {
		rec, err = decodeFramed(c, limits, "counter record", func(child *cursor) (CounterRecord, error) {
			return entry.decode(child, limits)
		})
	}
	if err != nil {
		return CounterRecord{}, err
	}
	rec.Key = key.public()
	return rec, nil
}
