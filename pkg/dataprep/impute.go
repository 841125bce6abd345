package dataprep

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/data"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/stats"
)

// ZeroSentinelColumns are the predictors where 0 stands for a missing
// measurement. Pregnancies is excluded since 0 is a real count there.
var ZeroSentinelColumns = []string{
	data.Glucose, data.BloodPressure, data.SkinThickness, data.Insulin,
	data.BMI, data.DiabetesPedigreeFunction, data.Age,
}

// Strategy picks the fill value for a column.
type Strategy int

const (
	// MeanIncludingZeros averages the column as it stands, sentinels included.
	MeanIncludingZeros Strategy = iota
	// MeanExcludingZeros averages only the non-zero cells.
	MeanExcludingZeros
	// MedianExcludingZeros takes the median of the non-zero cells.
	MedianExcludingZeros
)

func (s Strategy) String() string {
	switch s {
	case MeanIncludingZeros:
		return "mean"
	case MeanExcludingZeros:
		return "mean-nonzero"
	case MedianExcludingZeros:
		return "median-nonzero"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{MeanIncludingZeros, MeanExcludingZeros, MedianExcludingZeros} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown imputation strategy %q", name)
}

type options struct {
	strategy Strategy
}

// Option configures ImputeZeros.
type Option func(*options)

// WithStrategy overrides the default MeanIncludingZeros fill.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// ImputeZeros returns a new table in which every 0 in each of cols is
// replaced by that column's fill value. Columns are processed in the order
// given; the label and unlisted columns are copied unchanged. A column that
// is all zeros (or has no non-zero cells for the excluding strategies)
// fills with 0 and so stays as it was.
func ImputeZeros(t *data.Table, cols []string, opts ...Option) (*data.Table, error) {
	o := options{strategy: MeanIncludingZeros}
	for _, opt := range opts {
		opt(&o)
	}

	out := t
	for _, name := range cols {
		if name == data.Label {
			return nil, fmt.Errorf("impute: refusing to impute label column %q", name)
		}
		col, err := out.Column(name)
		if err != nil {
			return nil, fmt.Errorf("impute %q: %w", name, err)
		}
		fill := fillValue(col, o.strategy)
		replaced := ReplaceZeros(col, fill)
		out, err = out.WithColumn(name, replaced)
		if err != nil {
			return nil, fmt.Errorf("impute %q: %w", name, err)
		}
		log.Debug().Str("column", name).Str("strategy", o.strategy.String()).
			Float64("fill", fill).Msg("imputed zero sentinels")
	}
	return out, nil
}

// ReplaceZeros returns a copy of col with every 0 replaced by fill.
func ReplaceZeros(col []float64, fill float64) []float64 {
	out := slices.Clone(col)
	for i, v := range out {
		if v == 0 {
			out[i] = fill
		}
	}
	return out
}

func fillValue(col []float64, s Strategy) float64 {
	switch s {
	case MeanExcludingZeros:
		return stats.Mean(nonZero(col))
	case MedianExcludingZeros:
		return stats.Median(nonZero(col))
	default:
		return stats.Mean(col)
	}
}

func nonZero(col []float64) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}
