package stats

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/stat"
)

type SummaryStats struct {
	Mean   float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Summarize computes the mean and five-number summary of x.
func Summarize[T Number](x []T) SummaryStats {
	s := sortedCopy(x)
	qs := quantilesAt(s, []float64{0, 0.25, 0.5, 0.75, 1})
	return SummaryStats{
		Mean:   stat.Mean(s, nil),
		Min:    qs[0],
		Q25:    qs[1],
		Median: qs[2],
		Q75:    qs[3],
		Max:    qs[4],
	}
}

func (s SummaryStats) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Summary Stats:\n"+
		"Mean:         %.6f\n"+
		"Minimum:      %.6f\n"+
		"1st Quartile: %.6f\n"+
		"Median:       %.6f\n"+
		"3rd Quartile: %.6f\n"+
		"Maximum:      %.6f\n",
		s.Mean, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	return int64(n), err
}

func (s SummaryStats) String() string {
	var buf bytes.Buffer
	s.WriteTo(&buf)
	return buf.String()
}

// Fdescribe writes the summary report of x to w.
func Fdescribe[T Number](w io.Writer, x []T) error {
	_, err := Summarize(x).WriteTo(w)
	return err
}

// Describe prints the summary report of x to standard output.
func Describe[T Number](x []T) error {
	return Fdescribe(os.Stdout, x)
}
