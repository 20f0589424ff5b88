// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// decodeSample reads one sample envelope (spec §4.5): a (enterprise,
// format) tag, a u32 body length, then a framed body matching one of the
// four known shapes, or an Unknown fallback for anything else.
func decodeSample(c *cursor, limits Limits) (Sample, error) {
	format, err := c.readU32()
	if err != nil {
		return Sample{}, err
	}
	df := DataFormat(format)

	return decodeFramed(c, limits, "sample", func(child *cursor) (Sample, error) {
		switch df.Key() {
		case stdFlowKey(1):
			fs, err := decodeFlowSampleBody(child, limits, false)
			if err != nil {
				return Sample{}, err
			}
			return Sample{Kind: SampleFlow, Format: df, Flow: fs}, nil
		case stdCounterKey(2):
			cs, err := decodeCountersSampleBody(child, limits, false)
			if err != nil {
				return Sample{}, err
			}
			return Sample{Kind: SampleCounters, Format: df, Counters: cs}, nil
		case stdFlowKey(3):
			fs, err := decodeFlowSampleBody(child, limits, true)
			if err != nil {
				return Sample{}, err
			}
			return Sample{Kind: SampleFlowExpanded, Format: df, Flow: fs}, nil
		case stdCounterKey(4):
			cs, err := decodeCountersSampleBody(child, limits, true)
			if err != nil {
				return Sample{}, err
			}
			return Sample{Kind: SampleCountersExpanded, Format: df, Counters: cs}, nil
		default:
			data, err := decodeUnknownBody(child)
			if err != nil {
				return Sample{}, err
			}
			return Sample{Kind: SampleUnknown, Format: df, Unknown: data}, nil
		}
	})
}

// decodeFlowSampleBody decodes the part of a flow sample that follows the
// sample-type/length framing already handled by decodeSample. expanded
// selects between the compact (packed u32 fields) and expanded (separate
// u32 fields) encodings; the decoded shape is identical either way.
func decodeFlowSampleBody(c *cursor, limits Limits, expanded bool) (*FlowSample, error) {
	seq, err := c.readU32()
	if err != nil {
		return nil, err
	}

	var source DataSource
	var input, output Interface
	if expanded {
		sourceType, err := c.readU32()
		if err != nil {
			return nil, err
		}
		sourceIndex, err := c.readU32()
		if err != nil {
			return nil, err
		}
		source = PackDataSource(sourceType, sourceIndex)
	} else {
		raw, err := c.readU32()
		if err != nil {
			return nil, err
		}
		source = DataSource(raw)
	}

	samplingRate, err := c.readU32()
	if err != nil {
		return nil, err
	}
	samplePool, err := c.readU32()
	if err != nil {
		return nil, err
	}
	drops, err := c.readU32()
	if err != nil {
		return nil, err
	}

	if expanded {
		inFormat, err := c.readU32()
		if err != nil {
			return nil, err
		}
		inValue, err := c.readU32()
		if err != nil {
			return nil, err
		}
		input = PackInterface(inFormat, inValue)
		outFormat, err := c.readU32()
		if err != nil {
			return nil, err
		}
		outValue, err := c.readU32()
		if err != nil {
			return nil, err
		}
		output = PackInterface(outFormat, outValue)
	} else {
		raw, err := c.readU32()
		if err != nil {
			return nil, err
		}
		input = Interface(raw)
		raw, err = c.readU32()
		if err != nil {
			return nil, err
		}
		output = Interface(raw)
	}

	records, err := readCountedArray(c, limits.MaxRecordsPerSample, "flow records", func(c *cursor) (FlowRecord, error) {
		return decodeFlowRecord(c, limits)
	})
	if err != nil {
		return nil, err
	}

	return &FlowSample{
		SequenceNumber: seq,
		Source:         source,
		SamplingRate:   samplingRate,
		SamplePool:     samplePool,
		Drops:          drops,
		Input:          input,
		Output:         output,
		Records:        records,
	}, nil
}

// decodeCountersSampleBody is decodeFlowSampleBody's counters-sample
// counterpart: only the source field differs between compact and expanded.
func decodeCountersSampleBody(c *cursor, limits Limits, expanded bool) (*CountersSample, error) {
	seq, err := c.readU32()
	if err != nil {
		return nil, err
	}

	var source DataSource
	if expanded {
		sourceType, err := c.readU32()
		if err != nil {
			return nil, err
		}
		sourceIndex, err := c.readU32()
		if err != nil {
			return nil, err
		}
		source = PackDataSource(sourceType, sourceIndex)
	} else {
		raw, err := c.readU32()
		if err != nil {
			return nil, err
		}
		source = DataSource(raw)
	}

	records, err := readCountedArray(c, limits.MaxRecordsPerSample, "counter records", func(c *cursor) (CounterRecord, error) {
		return decodeCounterRecord(c, limits)
	})
	if err != nil {
		return nil, err
	}

	return &CountersSample{
		SequenceNumber: seq,
		Source:         source,
		Records:        records,
	}, nil
}
