package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler rescales each feature to zero mean and unit variance using
// statistics learned from the training rows only.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

// NewStandardScaler returns an unfitted scaler.
func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit learns per-column mean and population standard deviation. A constant
// column keeps a scale of 1.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scaler: no rows to fit")
	}
	r, c := len(X), len(X[0])
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			col[i] = X[i][j]
		}
		m, v := stat.PopMeanVariance(col, nil)
		s.Mean[j] = m
		s.Std[j] = math.Sqrt(v)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a scaled copy of X. An unfitted scaler returns X as is.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	Y := make([][]float64, len(X))
	for i, row := range X {
		out := make([]float64, len(row))
		for j, v := range row {
			out[j] = (v - s.Mean[j]) / s.Std[j]
		}
		Y[i] = out
	}
	return Y
}

// FitTransform fits on X and returns X scaled.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X), nil
}
