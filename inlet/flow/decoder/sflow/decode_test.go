// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builder assembles test fixtures field by field; it exists only to keep
// the scenario tests below readable, not as part of the decoder.
type builder struct {
	buf []byte
}

func (b *builder) u32(v uint32) *builder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *builder) u64(v uint64) *builder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *builder) bytes(raw ...byte) *builder {
	b.buf = append(b.buf, raw...)
	return b
}

func (b *builder) bytesFramed(raw []byte) *builder {
	return b.u32(uint32(len(raw))).bytes(raw...)
}

func (b *builder) build() []byte { return b.buf }

func emptyDatagramBytes() []byte {
	return (&builder{}).
		u32(5).        // version
		u32(1).        // agent: IPv4
		bytes(1, 2, 3, 4).
		u32(0).        // sub-agent
		u32(0).        // sequence
		u32(0x12345678). // uptime
		u32(0).        // samples count
		build()
}

func TestS1MinimalWellFormedEmptyDatagram(t *testing.T) {
	dg, err := DecodeDatagramDefault(emptyDatagramBytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(5), dg.Version)
	assert.Equal(t, AddressIPv4, dg.Agent.Kind)
	assert.Equal(t, "1.2.3.4", dg.Agent.IP.String())
	assert.Equal(t, uint32(0), dg.SubAgentID)
	assert.Equal(t, uint32(0), dg.Sequence)
	assert.Equal(t, uint32(0x12345678), dg.UptimeMs)
	assert.Empty(t, dg.Samples)
}

func TestS2VersionCheck(t *testing.T) {
	b := emptyDatagramBytes()
	binary.BigEndian.PutUint32(b[0:4], 4)
	_, err := DecodeDatagramDefault(b)
	require.Error(t, err)
	var uv *ErrUnsupportedVersion
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, uint32(4), uv.Version)
}

func TestS3Truncation(t *testing.T) {
	b := (&builder{}).u32(5).u32(1).bytes(1, 2, 3, 4).build()
	_, err := DecodeDatagramDefault(b)
	require.Error(t, err)
	var tr *ErrTruncated
	require.ErrorAs(t, err, &tr)
}

// flowSampleCompactBytes builds a compact flow-sample envelope (sample
// type (0,1)) around a single framed record body.
func flowSampleCompactBytes(recordFormat uint32, recordBody []byte) []byte {
	record := (&builder{}).u32(recordFormat).bytesFramed(recordBody).build()
	body := (&builder{}).
		u32(1).        // flow sample sequence number
		u32(uint32(PackDataSource(0, 1))). // source
		u32(1).        // sampling rate
		u32(0).        // sample pool
		u32(0).        // drops
		u32(0).        // input
		u32(0).        // output
		u32(1).        // records count
		bytes(record...).
		build()
	return (&builder{}).u32(1).bytesFramed(body).build() // sample type (0,1), framed
}

func datagramWithSample(sampleBytes []byte) []byte {
	return (&builder{}).
		u32(5).u32(1).bytes(1, 2, 3, 4).u32(0).u32(0).u32(0).
		u32(1). // samples count
		bytes(sampleBytes...).
		build()
}

func TestS4UnknownRecordKeptAsOpaque(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4}
	sample := flowSampleCompactBytes(999999, data)
	dg, err := DecodeDatagramDefault(datagramWithSample(sample))
	require.NoError(t, err)
	require.Len(t, dg.Samples, 1)
	require.NotNil(t, dg.Samples[0].Flow)
	require.Len(t, dg.Samples[0].Flow.Records, 1)
	rec := dg.Samples[0].Flow.Records[0]
	// 999999 does not fit the 12-bit format field: the packed word splits
	// into enterprise 244 (999999 >> 12) and format 575 (999999 & 0xfff).
	assert.Equal(t, recordKeyPublic{Enterprise: 244, Format: 575}, rec.Key)
	assert.Equal(t, data, []byte(rec.Unknown))
}

func TestS5SampleCountCap(t *testing.T) {
	b := (&builder{}).
		u32(5).u32(1).bytes(1, 2, 3, 4).u32(0).u32(0).u32(0).
		u32(0xFFFFFFFF). // samples count
		build()
	_, err := DecodeDatagramDefault(b)
	require.Error(t, err)
	var tm *ErrTooMany
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, DefaultLimits().MaxSamplesPerDatagram, tm.Limit)
	assert.Equal(t, uint32(0xFFFFFFFF), tm.Saw)
}

func TestS6TrailingBytesInsideRecord(t *testing.T) {
	// An Extended Switch record's true body is 16 bytes (4 u32 fields);
	// declare 20 so the framed sub-decoder finds 4 leftover bytes.
	body := make([]byte, 16)
	record := (&builder{}).u32(1001).u32(20).bytes(body...).bytes(0, 0, 0, 0).build()
	sampleBody := (&builder{}).
		u32(1).u32(uint32(PackDataSource(0, 1))).u32(1).u32(0).u32(0).u32(0).u32(0).
		u32(1).bytes(record...).build()
	sample := (&builder{}).u32(1).bytesFramed(sampleBody).build()

	_, err := DecodeDatagramDefault(datagramWithSample(sample))
	require.Error(t, err)
	var tb *ErrTrailingBytes
	require.ErrorAs(t, err, &tb)
	assert.Equal(t, uint32(4), tb.Count)
}

func TestTruncatedSampleCountVsSuppliedBytes(t *testing.T) {
	// Declares 2 samples but only supplies one.
	sample := flowSampleCompactBytes(1001, make([]byte, 16))
	b := (&builder{}).
		u32(5).u32(1).bytes(1, 2, 3, 4).u32(0).u32(0).u32(0).
		u32(2).
		bytes(sample...).
		build()
	_, err := DecodeDatagramDefault(b)
	require.Error(t, err)
	var tr *ErrTruncated
	require.ErrorAs(t, err, &tr)
}

func TestSampleLengthExceedsRemainingIsTruncated(t *testing.T) {
	b := (&builder{}).
		u32(5).u32(1).bytes(1, 2, 3, 4).u32(0).u32(0).u32(0).
		u32(1).
		u32(1).    // sample type
		u32(1000). // declared sample length, far beyond what follows
		bytes(1, 2, 3).
		build()
	_, err := DecodeDatagramDefault(b)
	require.Error(t, err)
	var tr *ErrTruncated
	require.ErrorAs(t, err, &tr)
}

func TestMultiDatagramConcatenation(t *testing.T) {
	d1 := emptyDatagramBytes()
	d2 := emptyDatagramBytes()
	binary.BigEndian.PutUint32(d2[len(d2)-12:len(d2)-8], 42) // tweak sequence of d2 so they differ
	combined := append(append([]byte{}, d1...), d2...)

	dgs, remaining, err := DecodeDatagramsDefault(combined)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	require.Len(t, dgs, 2)
	assert.Equal(t, uint32(0), dgs[0].Sequence)
	assert.Equal(t, uint32(42), dgs[1].Sequence)
}

func TestDecodeDatagramsReturnsPartialResultsOnError(t *testing.T) {
	d1 := emptyDatagramBytes()
	bad := []byte{0, 0, 0, 5, 1, 2} // version ok, then truncated
	combined := append(append([]byte{}, d1...), bad...)

	dgs, remaining, err := DecodeDatagramsDefault(combined)
	require.Error(t, err)
	require.Len(t, dgs, 1)
	assert.Equal(t, len(bad), remaining)
}

func TestRecordCountCapRejectedBeforeDecode(t *testing.T) {
	body := (&builder{}).
		u32(1).u32(uint32(PackDataSource(0, 1))).u32(1).u32(0).u32(0).u32(0).u32(0).
		u32(0xFFFFFFFF). // records count
		build()
	sample := (&builder{}).u32(1).bytesFramed(body).build()
	_, err := DecodeDatagramDefault(datagramWithSample(sample))
	require.Error(t, err)
	var tm *ErrTooMany
	require.ErrorAs(t, err, &tm)
}
