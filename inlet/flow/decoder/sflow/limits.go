// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

// Limits bounds the resources a single decode may consume, checked before
// any allocation proportional to a declared length. These are the
// decoder's sole defense against adversarial input; every field must stay
// positive, enforced by validator tags for operators who load Limits from
// configuration (see inlet/flow/decoder/sflow/limits/config.go).
type Limits struct {
	MaxDatagramBytes      uint32 `yaml:"max-datagram-bytes"      mapstructure:"max-datagram-bytes"      validate:"gte=1"`
	MaxSamplesPerDatagram uint32 `yaml:"max-samples-per-datagram" mapstructure:"max-samples-per-datagram" validate:"gte=1"`
	MaxRecordsPerSample   uint32 `yaml:"max-records-per-sample"  mapstructure:"max-records-per-sample"  validate:"gte=1"`
	MaxRecordBytes        uint32 `yaml:"max-record-bytes"        mapstructure:"max-record-bytes"        validate:"gte=1"`
	MaxStringBytes        uint32 `yaml:"max-string-bytes"        mapstructure:"max-string-bytes"        validate:"gte=1"`
	MaxOpaqueBytes        uint32 `yaml:"max-opaque-bytes"        mapstructure:"max-opaque-bytes"        validate:"gte=1"`
}

// DefaultLimits returns the suggested defaults from the resource-cap table.
func DefaultLimits() Limits {
	return Limits{
		MaxDatagramBytes:      65535,
		MaxSamplesPerDatagram: 1024,
		MaxRecordsPerSample:   1024,
		MaxRecordBytes:        65535,
		MaxStringBytes:        65535,
		MaxOpaqueBytes:        65535,
	}
}
