package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned by Predict before a successful Fit.
	ErrNotFitted = errors.New("model not fitted")
	// ErrInvalidK reports a neighbour count outside [1, len(train)].
	ErrInvalidK = errors.New("invalid neighbour count")
	// ErrLabel reports a label outside {0, 1}.
	ErrLabel = errors.New("label outside {0, 1}")
	// ErrShape reports mismatched or ragged inputs.
	ErrShape = errors.New("shape mismatch")
)

// Classifier is a binary supervised model over dense feature rows.
type Classifier interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}

// Score returns the accuracy of c's predictions on X against y.
func Score(c Classifier, X [][]float64, y []float64) (float64, error) {
	pred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}
	return Accuracy(y, pred), nil
}

// checkTrainingSet validates a labelled 0/1 training set with k neighbours.
func checkTrainingSet(X [][]float64, y []float64, k int) error {
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d feature rows for %d labels", ErrShape, len(X), len(y))
	}
	if len(X) == 0 {
		return fmt.Errorf("%w: empty training set", ErrShape)
	}
	if k < 1 || k > len(X) {
		return fmt.Errorf("%w: k=%d with %d training rows", ErrInvalidK, k, len(X))
	}
	dim := len(X[0])
	for i, row := range X {
		if len(row) != dim {
			return fmt.Errorf("%w: row %d has %d features, want %d", ErrShape, i, len(row), dim)
		}
		if y[i] != 0 && y[i] != 1 {
			return fmt.Errorf("%w: row %d has label %v", ErrLabel, i, y[i])
		}
	}
	return nil
}
