package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/data"
)

// Mean computes the average of a slice. An empty slice has mean 0.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Std computes the population standard deviation of a slice.
func Std(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	_, v := stat.PopMeanVariance(x, nil)
	return math.Sqrt(v)
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) float64 {
	return Quantile(x, 0.5)
}

// Quantile returns the p-quantile with linear interpolation between ranks,
// the same convention as pandas' describe.
func Quantile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := slices.Clone(x)
	slices.Sort(cp)
	rank := p * float64(n-1)
	lower := int(rank)
	if lower+1 >= n {
		return cp[n-1]
	}
	weight := rank - float64(lower)
	return cp[lower]*(1-weight) + cp[lower+1]*weight
}

// Summary holds descriptive statistics of a single column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Zeros  int
}

// Summarize describes x. Std uses the n-1 denominator.
func Summarize(x []float64) Summary {
	s := Summary{Count: len(x)}
	if len(x) == 0 {
		return s
	}
	s.Mean = stat.Mean(x, nil)
	if len(x) > 1 {
		s.Std = stat.StdDev(x, nil)
	}
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	s.Q1 = Quantile(x, 0.25)
	s.Median = Quantile(x, 0.5)
	s.Q3 = Quantile(x, 0.75)
	for _, v := range x {
		if v == 0 {
			s.Zeros++
		}
	}
	return s
}

// ColumnSummary is a Summary tagged with its column name.
type ColumnSummary struct {
	Name string
	Summary
}

// Describe summarizes every column of t in header order.
func Describe(t *data.Table) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(t.Names()))
	for _, name := range t.Names() {
		col, err := t.Column(name)
		if err != nil {
			continue
		}
		out = append(out, ColumnSummary{Name: name, Summary: Summarize(col)})
	}
	return out
}

// CorrelationMatrix returns the Pearson correlation between every pair of
// the named columns. A constant column correlates as 0 with the others.
func CorrelationMatrix(t *data.Table, names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	out := make([][]float64, len(names))
	for i := range names {
		out[i] = make([]float64, len(names))
		for j := range names {
			if i == j {
				out[i][j] = 1
				continue
			}
			r := stat.Correlation(cols[i], cols[j], nil)
			if math.IsNaN(r) {
				r = 0
			}
			out[i][j] = r
		}
	}
	return out, nil
}
