package core

import (
	"bytes"
	"descstats/stats"
	"fmt"
	"sort"
)

// Report gathers every descriptive statistic of one sample.
type Report struct {
	Name      string
	Count     int
	Summary   stats.SummaryStats
	Skewness  float64
	Kurtosis  float64
	Variation float64
	SEM       float64
	MAD       float64
	IQR       float64
	Range     float64
	MidRange  float64
	Modes     []float64
}

func NewReport(name string, sample []float64) (*Report, error) {
	modes, err := stats.Modes(sample)
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", name, err)
	}
	sort.Float64s(modes)

	return &Report{
		Name:      name,
		Count:     len(sample),
		Summary:   stats.Summarize(sample),
		Skewness:  stats.Skewness(sample),
		Kurtosis:  stats.Kurtosis(sample),
		Variation: stats.Variation(sample),
		SEM:       stats.SEM(sample),
		MAD:       stats.MAD(sample),
		IQR:       stats.IQR(sample),
		Range:     stats.Range(sample),
		MidRange:  stats.MidRange(sample),
		Modes:     modes,
	}, nil
}

func (r *Report) String() string {
	var buf bytes.Buffer
	r.Summary.WriteTo(&buf)
	fmt.Fprintf(&buf, "Count:        %d\n", r.Count)
	fmt.Fprintf(&buf, "Skewness:     %.6f\n", r.Skewness)
	fmt.Fprintf(&buf, "Kurtosis:     %.6f\n", r.Kurtosis)
	fmt.Fprintf(&buf, "Variation:    %.6f\n", r.Variation)
	fmt.Fprintf(&buf, "SEM:          %.6f\n", r.SEM)
	fmt.Fprintf(&buf, "MAD:          %.6f\n", r.MAD)
	fmt.Fprintf(&buf, "IQR:          %.6f\n", r.IQR)
	fmt.Fprintf(&buf, "Range:        %.6f\n", r.Range)
	fmt.Fprintf(&buf, "Mid-range:    %.6f\n", r.MidRange)
	fmt.Fprintf(&buf, "Modes:        %v\n", r.Modes)
	return buf.String()
}
