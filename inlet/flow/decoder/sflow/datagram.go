// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// sflowVersion is the only wire version this decoder accepts.
const sflowVersion = 5

// decodeDatagram reads the top-level sFlow envelope (spec §4.6): version,
// agent address, sub-agent id, sequence, uptime, then the sample vector.
// When requireDone is set, the cursor must be fully drained afterwards;
// any byte sFlow agents send beyond the declared sample vector is a
// wire-format bug, not data to silently ignore. Multi-datagram mode clears
// requireDone because an sFlow datagram is not self-delimited: the bytes
// following one datagram's sample vector are the start of the next one
// (spec §4.7), so the cursor is expected to have bytes left over.
func decodeDatagram(c *cursor, limits Limits, requireDone bool) (Datagram, error) {
	version, err := c.readU32()
	if err != nil {
		return Datagram{}, err
	}
	if version != sflowVersion {
		return Datagram{}, &ErrUnsupportedVersion{Version: version}
	}

	agent, err := c.readAddress()
	if err != nil {
		return Datagram{}, err
	}
	subAgentID, err := c.readU32()
	if err != nil {
		return Datagram{}, err
	}
	sequence, err := c.readU32()
	if err != nil {
		return Datagram{}, err
	}
	uptime, err := c.readU32()
	if err != nil {
		return Datagram{}, err
	}

	samples, err := readCountedArray(c, limits.MaxSamplesPerDatagram, "samples", func(c *cursor) (Sample, error) {
		return decodeSample(c, limits)
	})
	if err != nil {
		return Datagram{}, err
	}

	if requireDone && !c.done() {
		return Datagram{}, &ErrTrailingBytes{Context: "datagram", Count: uint32(c.remaining())}
	}

	return Datagram{
		Version:    version,
		Agent:      agent,
		SubAgentID: subAgentID,
		Sequence:   sequence,
		UptimeMs:   uptime,
		Samples:    samples,
	}, nil
}
