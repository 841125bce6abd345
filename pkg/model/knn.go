package model

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// KNN classifies 0/1 labels by majority vote among the K nearest training
// rows under Euclidean distance. Equidistant neighbours are taken in training
// order, and a tied vote goes to label 0.
type KNN struct {
	K int
	X [][]float64
	y []float64
}

// NewKNN creates and returns a new KNN model.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

// Fit stores the training rows and labels verbatim.
func (m *KNN) Fit(X [][]float64, y []float64) error {
	if err := checkTrainingSet(X, y, m.K); err != nil {
		return err
	}
	m.X = X
	m.y = y
	return nil
}

// Predict labels each row of X. Rows are interleaved across up to GOMAXPROCS
// workers, each writing only its own slots of the result.
func (m *KNN) Predict(X [][]float64) ([]float64, error) {
	if m.X == nil {
		return nil, ErrNotFitted
	}
	dim := len(m.X[0])
	for i, row := range X {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: query row %d has %d features, want %d", ErrShape, i, len(row), dim)
		}
	}
	if len(X) == 0 {
		return nil, nil
	}

	out := make([]float64, len(X))
	workers := min(runtime.GOMAXPROCS(0), len(X))
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		// Worker w owns rows w, w+workers, w+2*workers, ...
		go func() {
			defer wg.Done()
			for i := w; i < len(X); i += workers {
				out[i] = m.predictSingle(X[i])
			}
		}()
	}
	wg.Wait()
	return out, nil
}

// predictSingle finds the K nearest neighbours of xi and returns their vote.
func (m *KNN) predictSingle(xi []float64) float64 {
	type pair struct {
		d float64
		v float64
	}

	// nbrs stays sorted by distance; stable insertion keeps earlier training
	// rows ahead of later ones at equal distance.
	nbrs := make([]pair, 0, m.K+1)
	for j, xj := range m.X {
		d := floats.Distance(xi, xj, 2)
		if len(nbrs) == m.K && d >= nbrs[len(nbrs)-1].d {
			continue
		}
		at := sort.Search(len(nbrs), func(a int) bool { return nbrs[a].d > d })
		nbrs = append(nbrs, pair{})
		copy(nbrs[at+1:], nbrs[at:])
		nbrs[at] = pair{d: d, v: m.y[j]}
		if len(nbrs) > m.K {
			nbrs = nbrs[:m.K]
		}
	}

	ones := 0
	for _, p := range nbrs {
		if p.v == 1 {
			ones++
		}
	}
	if 2*ones > len(nbrs) {
		return 1
	}
	return 0
}

