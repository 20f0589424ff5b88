// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

import (
	"net"
	"time"

	"akvorado/sflow/common/reporter"
)

// RawDatagram is one received UDP payload, tagged with where it came from
// and when. It is the boundary value between a transport layer (a UDP
// socket, a capture file reader, ...) and this package; this package never
// does I/O itself.
type RawDatagram struct {
	Payload      []byte
	Source       net.Addr
	TimeReceived time.Time
}

// Decoder wraps the pure decode functions with per-exporter metrics and
// logging, the way the rest of this module's ingestion components are
// structured: a thin, stateful adapter around a stateless core.
type Decoder struct {
	r      *reporter.Reporter
	limits Limits

	metrics struct {
		errors  *reporter.CounterVec
		count   *reporter.CounterVec
		samples *reporter.CounterVec
		records *reporter.CounterVec
	}
}

// New instantiates a Decoder reporting through r and enforcing limits on
// every datagram it decodes.
func New(r *reporter.Reporter, limits Limits) *Decoder {
	d := &Decoder{r: r, limits: limits}

	d.metrics.errors = r.CounterVec(reporter.CounterOpts{
		Subsystem: "decoder_sflow",
		Name:      "errors_total",
		Help:      "sFlow datagrams that failed to decode, by error kind.",
	}, []string{"exporter", "error"})

	d.metrics.count = r.CounterVec(reporter.CounterOpts{
		Subsystem: "decoder_sflow",
		Name:      "datagrams_total",
		Help:      "sFlow datagrams decoded successfully, by agent.",
	}, []string{"exporter", "agent"})

	d.metrics.samples = r.CounterVec(reporter.CounterOpts{
		Subsystem: "decoder_sflow",
		Name:      "samples_total",
		Help:      "sFlow samples decoded, by kind.",
	}, []string{"exporter", "agent", "kind"})

	d.metrics.records = r.CounterVec(reporter.CounterOpts{
		Subsystem: "decoder_sflow",
		Name:      "records_total",
		Help:      "sFlow records decoded within samples, by kind.",
	}, []string{"exporter", "agent", "kind"})

	return d
}

// Decode decodes one raw UDP payload and records metrics about the
// outcome. A decode failure is not returned as a Go error to the caller of
// this adapter — matching the teacher's Decode signature, which treats a
// bad datagram as something to count and drop rather than propagate — but
// the underlying typed error is always what decided the metric label.
func (d *Decoder) Decode(in RawDatagram) *Datagram {
	key := "unknown"
	if in.Source != nil {
		key = in.Source.String()
	}

	dg, err := DecodeDatagram(in.Payload, d.limits)
	if err != nil {
		d.metrics.errors.WithLabelValues(key, errorKind(err)).Inc()
		d.r.Logger().Debug().Err(err).Str("exporter", key).Msg("sflow decode failed")
		return nil
	}

	agent := dg.Agent.String()
	d.metrics.count.WithLabelValues(key, agent).Inc()
	for _, s := range dg.Samples {
		kind := sampleKindLabel(s.Kind)
		d.metrics.samples.WithLabelValues(key, agent, kind).Inc()
		switch {
		case s.Flow != nil:
			for _, rec := range s.Flow.Records {
				d.metrics.records.WithLabelValues(key, agent, flowRecordKindLabel(rec)).Inc()
			}
		case s.Counters != nil:
			for _, rec := range s.Counters.Records {
				d.metrics.records.WithLabelValues(key, agent, counterRecordKindLabel(rec)).Inc()
			}
		}
	}

	return &dg
}

// Name returns the name of the decoder, matching the Decoder-interface
// convention the rest of this module's ingestion adapters follow.
func (d *Decoder) Name() string {
	return "sflow"
}

func sampleKindLabel(k SampleKind) string {
	switch k {
	case SampleFlow:
		return "flow_sample"
	case SampleCounters:
		return "counters_sample"
	case SampleFlowExpanded:
		return "flow_sample_expanded"
	case SampleCountersExpanded:
		return "counters_sample_expanded"
	default:
		return "unknown"
	}
}

func flowRecordKindLabel(r FlowRecord) string {
	if r.Kind == unknownRecordKind {
		return "unknown"
	}
	return "flow_record"
}

func counterRecordKindLabel(r CounterRecord) string {
	if r.Kind == unknownRecordKind {
		return "unknown"
	}
	return "counter_record"
}
