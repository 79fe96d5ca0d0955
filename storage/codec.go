package storage

import (
	"descstats/stats"
	"fmt"
	"github.com/tinylib/msgp/msgp"
)

// Samples are stored as a msgpack array of float64, summaries as a msgpack
// map keyed by field name.

const (
	fieldMean   = "mean"
	fieldMin    = "min"
	fieldQ25    = "q25"
	fieldMedian = "median"
	fieldQ75    = "q75"
	fieldMax    = "max"
)

func EncodeSample(sample []float64) []byte {
	buf := msgp.Require(nil, msgp.ArrayHeaderSize+len(sample)*msgp.Float64Size)
	buf = msgp.AppendArrayHeader(buf, uint32(len(sample)))
	for _, v := range sample {
		buf = msgp.AppendFloat64(buf, v)
	}
	return buf
}

func DecodeSample(buf []byte) ([]float64, error) {
	n, o, err := msgp.ReadArrayHeaderBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("decode sample header: %w", err)
	}
	sample := make([]float64, n)
	for i := range sample {
		sample[i], o, err = msgp.ReadFloat64Bytes(o)
		if err != nil {
			return nil, fmt.Errorf("decode sample value %d: %w", i, err)
		}
	}
	return sample, nil
}

func EncodeSummary(s stats.SummaryStats) []byte {
	buf := msgp.AppendMapHeader(nil, 6)
	buf = msgp.AppendString(buf, fieldMean)
	buf = msgp.AppendFloat64(buf, s.Mean)
	buf = msgp.AppendString(buf, fieldMin)
	buf = msgp.AppendFloat64(buf, s.Min)
	buf = msgp.AppendString(buf, fieldQ25)
	buf = msgp.AppendFloat64(buf, s.Q25)
	buf = msgp.AppendString(buf, fieldMedian)
	buf = msgp.AppendFloat64(buf, s.Median)
	buf = msgp.AppendString(buf, fieldQ75)
	buf = msgp.AppendFloat64(buf, s.Q75)
	buf = msgp.AppendString(buf, fieldMax)
	buf = msgp.AppendFloat64(buf, s.Max)
	return buf
}

func DecodeSummary(buf []byte) (stats.SummaryStats, error) {
	var s stats.SummaryStats
	n, o, err := msgp.ReadMapHeaderBytes(buf)
	if err != nil {
		return s, fmt.Errorf("decode summary header: %w", err)
	}
	for i := uint32(0); i < n; i++ {
		var field string
		field, o, err = msgp.ReadStringBytes(o)
		if err != nil {
			return s, fmt.Errorf("decode summary field: %w", err)
		}
		var dst *float64
		switch field {
		case fieldMean:
			dst = &s.Mean
		case fieldMin:
			dst = &s.Min
		case fieldQ25:
			dst = &s.Q25
		case fieldMedian:
			dst = &s.Median
		case fieldQ75:
			dst = &s.Q75
		case fieldMax:
			dst = &s.Max
		default:
			o, err = msgp.Skip(o)
			if err != nil {
				return s, fmt.Errorf("skip summary field %q: %w", field, err)
			}
			continue
		}
		*dst, o, err = msgp.ReadFloat64Bytes(o)
		if err != nil {
			return s, fmt.Errorf("decode summary field %q: %w", field, err)
		}
	}
	return s, nil
}
