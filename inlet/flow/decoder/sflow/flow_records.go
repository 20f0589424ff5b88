// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// The FlowRecordKind enumeration and per-format decoders below. Each
// decoder is a straight-line sequence of XDR primitive reads matching its
// record's field order in the sFlow structures spec; none of them consume
// more than the framed child cursor they are handed (spec §4.4).

const (
	FlowRecordSampledHeader FlowRecordKind = iota + 1
	FlowRecordSampledEthernet
	FlowRecordSampledIPv4
	FlowRecordSampledIPv6
	FlowRecordExtendedSwitch
	FlowRecordExtendedRouter
	FlowRecordExtendedGateway
	FlowRecordExtendedUser
	FlowRecordExtendedURL
	FlowRecordExtendedMPLS
	FlowRecordExtendedNAT
	FlowRecordExtendedVLANTunnel
	FlowRecordExtended80211Payload
	FlowRecordExtended80211RX
	FlowRecordExtended80211TX
)

// SampledHeader is a raw sampled packet header (flow format 1).
type SampledHeader struct {
	Protocol     uint32
	FrameLength  uint32
	Stripped     uint32
	Header       Opaque
}

func decodeSampledHeader(c *cursor, limits Limits) (FlowRecord, error) {
	protocol, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	frameLength, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	stripped, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	header, err := c.readCountedOpaque(limits.MaxOpaqueBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordSampledHeader, SampledHeader: &SampledHeader{
		Protocol: protocol, FrameLength: frameLength, Stripped: stripped, Header: header,
	}}, nil
}

// SampledEthernet is a pre-parsed ethernet header (flow format 2).
type SampledEthernet struct {
	Length  uint32
	SrcMac  Mac
	DstMac  Mac
	EthType uint32
}

func decodeSampledEthernet(c *cursor, _ Limits) (FlowRecord, error) {
	length, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcMac, err := c.readMac()
	if err != nil {
		return FlowRecord{}, err
	}
	dstMac, err := c.readMac()
	if err != nil {
		return FlowRecord{}, err
	}
	ethType, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordSampledEthernet, SampledEthernet: &SampledEthernet{
		Length: length, SrcMac: srcMac, DstMac: dstMac, EthType: ethType,
	}}, nil
}

// SampledIPv4 is a pre-parsed IPv4 header plus transport ports (flow format 3).
type SampledIPv4 struct {
	Length   uint32
	Protocol uint32
	SrcIP    Address
	DstIP    Address
	SrcPort  uint32
	DstPort  uint32
	TCPFlags uint32
	TOS      uint32
}

func decodeSampledIPv4(c *cursor, _ Limits) (FlowRecord, error) {
	length, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	protocol, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcIP, err := c.readFixedIP(4)
	if err != nil {
		return FlowRecord{}, err
	}
	dstIP, err := c.readFixedIP(4)
	if err != nil {
		return FlowRecord{}, err
	}
	srcPort, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstPort, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	tcpFlags, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	tos, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordSampledIPv4, SampledIPv4: &SampledIPv4{
		Length: length, Protocol: protocol, SrcIP: srcIP, DstIP: dstIP,
		SrcPort: srcPort, DstPort: dstPort, TCPFlags: tcpFlags, TOS: tos,
	}}, nil
}

// SampledIPv6 is SampledIPv4's IPv6 counterpart (flow format 4); it carries
// a traffic-class "priority" field instead of ToS.
type SampledIPv6 struct {
	Length   uint32
	Protocol uint32
	SrcIP    Address
	DstIP    Address
	SrcPort  uint32
	DstPort  uint32
	TCPFlags uint32
	Priority uint32
}

func decodeSampledIPv6(c *cursor, _ Limits) (FlowRecord, error) {
	length, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	protocol, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcIP, err := c.readFixedIP(16)
	if err != nil {
		return FlowRecord{}, err
	}
	dstIP, err := c.readFixedIP(16)
	if err != nil {
		return FlowRecord{}, err
	}
	srcPort, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstPort, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	tcpFlags, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	priority, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordSampledIPv6, SampledIPv6: &SampledIPv6{
		Length: length, Protocol: protocol, SrcIP: srcIP, DstIP: dstIP,
		SrcPort: srcPort, DstPort: dstPort, TCPFlags: tcpFlags, Priority: priority,
	}}, nil
}

// ExtendedSwitch carries 802.1Q VLAN tags (flow format 1001).
type ExtendedSwitch struct {
	SrcVLAN     uint32
	SrcPriority uint32
	DstVLAN     uint32
	DstPriority uint32
}

func decodeExtendedSwitch(c *cursor, _ Limits) (FlowRecord, error) {
	srcVLAN, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcPrio, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstVLAN, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstPrio, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedSwitch, ExtendedSwitch: &ExtendedSwitch{
		SrcVLAN: srcVLAN, SrcPriority: srcPrio, DstVLAN: dstVLAN, DstPriority: dstPrio,
	}}, nil
}

// ExtendedRouter carries next-hop routing info (flow format 1002).
type ExtendedRouter struct {
	NextHop    Address
	SrcMaskLen uint32
	DstMaskLen uint32
}

func decodeExtendedRouter(c *cursor, _ Limits) (FlowRecord, error) {
	nextHop, err := c.readAddress()
	if err != nil {
		return FlowRecord{}, err
	}
	srcMask, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstMask, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedRouter, ExtendedRouter: &ExtendedRouter{
		NextHop: nextHop, SrcMaskLen: srcMask, DstMaskLen: dstMask,
	}}, nil
}

// ASPathSegment is one element of a BGP AS path (type 1 = set, 2 = sequence).
type ASPathSegment struct {
	Type uint32
	AS   []uint32
}

// ExtendedGateway carries BGP info about the sampled flow (flow format 1003).
type ExtendedGateway struct {
	NextHop    Address
	AS         uint32
	SrcAS      uint32
	SrcPeerAS  uint32
	DstASPath  []ASPathSegment
	Communities []uint32
	LocalPref  uint32
}

func decodeExtendedGateway(c *cursor, limits Limits) (FlowRecord, error) {
	nextHop, err := c.readAddress()
	if err != nil {
		return FlowRecord{}, err
	}
	as, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcAS, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcPeerAS, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstASPath, err := readCountedArray(c, limits.MaxRecordsPerSample, "as path segments", func(c *cursor) (ASPathSegment, error) {
		segType, err := c.readU32()
		if err != nil {
			return ASPathSegment{}, err
		}
		as, err := readCountedArray(c, limits.MaxRecordsPerSample, "as path", func(c *cursor) (uint32, error) {
			return c.readU32()
		})
		if err != nil {
			return ASPathSegment{}, err
		}
		return ASPathSegment{Type: segType, AS: as}, nil
	})
	if err != nil {
		return FlowRecord{}, err
	}
	communities, err := readCountedArray(c, limits.MaxRecordsPerSample, "communities", func(c *cursor) (uint32, error) {
		return c.readU32()
	})
	if err != nil {
		return FlowRecord{}, err
	}
	localPref, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedGateway, ExtendedGateway: &ExtendedGateway{
		NextHop: nextHop, AS: as, SrcAS: srcAS, SrcPeerAS: srcPeerAS,
		DstASPath: dstASPath, Communities: communities, LocalPref: localPref,
	}}, nil
}

// ExtendedUser carries charset-tagged user identity strings (flow format 1004).
type ExtendedUser struct {
	SrcCharset uint32
	SrcUser    CountedString
	DstCharset uint32
	DstUser    CountedString
}

func decodeExtendedUser(c *cursor, limits Limits) (FlowRecord, error) {
	srcCharset, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	srcUser, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	dstCharset, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	dstUser, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedUser, ExtendedUser: &ExtendedUser{
		SrcCharset: srcCharset, SrcUser: srcUser, DstCharset: dstCharset, DstUser: dstUser,
	}}, nil
}

// ExtendedURL carries an HTTP URL and host (flow format 1005). Direction is
// 1 = src, 2 = dst.
type ExtendedURL struct {
	Direction uint32
	URL       CountedString
	Host      CountedString
}

func decodeExtendedURL(c *cursor, limits Limits) (FlowRecord, error) {
	direction, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	url, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	host, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedURL, ExtendedURL: &ExtendedURL{
		Direction: direction, URL: url, Host: host,
	}}, nil
}

// ExtendedMPLS carries the MPLS label stacks a flow traversed (flow format 1006).
type ExtendedMPLS struct {
	NextHop   Address
	InLabels  []uint32
	OutLabels []uint32
}

func decodeExtendedMPLS(c *cursor, limits Limits) (FlowRecord, error) {
	nextHop, err := c.readAddress()
	if err != nil {
		return FlowRecord{}, err
	}
	inLabels, err := readCountedArray(c, limits.MaxRecordsPerSample, "mpls in labels", func(c *cursor) (uint32, error) {
		return c.readU32()
	})
	if err != nil {
		return FlowRecord{}, err
	}
	outLabels, err := readCountedArray(c, limits.MaxRecordsPerSample, "mpls out labels", func(c *cursor) (uint32, error) {
		return c.readU32()
	})
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedMPLS, ExtendedMPLS: &ExtendedMPLS{
		NextHop: nextHop, InLabels: inLabels, OutLabels: outLabels,
	}}, nil
}

// ExtendedNAT carries the pre- and post-NAT addresses of a flow (flow format 1007).
type ExtendedNAT struct {
	SrcAddress Address
	DstAddress Address
}

func decodeExtendedNAT(c *cursor, _ Limits) (FlowRecord, error) {
	src, err := c.readAddress()
	if err != nil {
		return FlowRecord{}, err
	}
	dst, err := c.readAddress()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedNAT, ExtendedNAT: &ExtendedNAT{
		SrcAddress: src, DstAddress: dst,
	}}, nil
}

// ExtendedVLANTunnel carries the stack of VLAN tags an 802.1ad/QinQ tunnel
// imposed on a flow (flow format 1012).
type ExtendedVLANTunnel struct {
	Layers []uint32
}

func decodeExtendedVLANTunnel(c *cursor, limits Limits) (FlowRecord, error) {
	layers, err := readCountedArray(c, limits.MaxRecordsPerSample, "vlan tunnel layers", func(c *cursor) (uint32, error) {
		return c.readU32()
	})
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtendedVLANTunnel, ExtendedVLANTunnel: &ExtendedVLANTunnel{Layers: layers}}, nil
}

// Extended80211Payload carries a captured 802.11 frame body (flow format 1013).
type Extended80211Payload struct {
	CipherSuite uint32
	Data        Opaque
}

func decodeExtended80211Payload(c *cursor, limits Limits) (FlowRecord, error) {
	cipher, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	data, err := c.readCountedOpaque(limits.MaxOpaqueBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtended80211Payload, Extended80211Payload: &Extended80211Payload{
		CipherSuite: cipher, Data: data,
	}}, nil
}

// Extended80211RX describes the radio conditions of a received 802.11 frame
// (flow format 1014).
type Extended80211RX struct {
	SSID       CountedString
	BSSID      Mac
	Version    uint32
	Channel    uint32
	Speed      uint64
	RSNI       uint32
	RCPI       uint32
	PacketDuration uint32
}

func decodeExtended80211RX(c *cursor, limits Limits) (FlowRecord, error) {
	ssid, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	bssid, err := c.readMac()
	if err != nil {
		return FlowRecord{}, err
	}
	version, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	channel, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	speed, err := c.readU64()
	if err != nil {
		return FlowRecord{}, err
	}
	rsni, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	rcpi, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	duration, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtended80211RX, Extended80211RX: &Extended80211RX{
		SSID: ssid, BSSID: bssid, Version: version, Channel: channel,
		Speed: speed, RSNI: rsni, RCPI: rcpi, PacketDuration: duration,
	}}, nil
}

// Extended80211TX describes the radio conditions of a transmitted 802.11
// frame (flow format 1015).
type Extended80211TX struct {
	SSID             CountedString
	BSSID            Mac
	Version          uint32
	TransmissionsRetries uint32
	PacketDuration   uint32
	RetransmissionDuration uint32
	Channel          uint32
	Speed            uint64
	Power            uint32
}

func decodeExtended80211TX(c *cursor, limits Limits) (FlowRecord, error) {
	ssid, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return FlowRecord{}, err
	}
	bssid, err := c.readMac()
	if err != nil {
		return FlowRecord{}, err
	}
	version, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	retries, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	duration, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	retransDuration, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	channel, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	speed, err := c.readU64()
	if err != nil {
		return FlowRecord{}, err
	}
	power, err := c.readU32()
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{Kind: FlowRecordExtended80211TX, Extended80211TX: &Extended80211TX{
		SSID: ssid, BSSID: bssid, Version: version, TransmissionsRetries: retries,
		PacketDuration: duration, RetransmissionDuration: retransDuration,
		Channel: channel, Speed: speed, Power: power,
	}}, nil
}

// readFixedIP reads a fixed-length (4 or 16 byte) address body with no
// discriminator, used by the sampled_ipv4/sampled_ipv6 records where the
// IP version is implied by the record format rather than encoded inline.
func (c *cursor) readFixedIP(n uint32) (Address, error) {
	b, err := c.take(n)
	if err != nil {
		return Address{}, err
	}
	ip := make([]byte, n)
	copy(ip, b)
	kind := AddressIPv4
	if n == 16 {
		kind = AddressIPv6
	}
	return Address{Kind: kind, IP: ip}, nil
}
