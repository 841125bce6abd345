package loader

import (
	"fmt"
	"math"
	"math/rand"
)

// Split partitions row indices 0..n-1 into train and test sets. The test set
// holds round(n*testRatio) rows. The same n, ratio and seed always give the
// same partition.
func Split(n int, testRatio float64, seed int64) (train, test []int, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("test ratio %v outside (0, 1)", testRatio)
	}
	nTest := int(math.Round(float64(n) * testRatio))
	if nTest == 0 || nTest == n {
		return nil, nil, fmt.Errorf("split of %d rows at ratio %v leaves an empty partition", n, testRatio)
	}
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	test = indices[:nTest]
	train = indices[nTest:]
	return train, test, nil
}

// TrainTestSplit splits X, Y row-aligned into train and test sets by ratio.
func TrainTestSplit(X [][]float64, Y []float64, testRatio float64, seed int64) (XTrain, XTest [][]float64, YTrain, YTest []float64, err error) {
	if len(X) != len(Y) {
		return nil, nil, nil, nil, fmt.Errorf("%d feature rows for %d labels", len(X), len(Y))
	}
	train, test, err := Split(len(X), testRatio, seed)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	XTrain, YTrain = Take(X, Y, train)
	XTest, YTest = Take(X, Y, test)
	return XTrain, XTest, YTrain, YTest, nil
}

// Take selects the given rows of X and Y.
func Take(X [][]float64, Y []float64, rows []int) ([][]float64, []float64) {
	xs := make([][]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = X[r]
		ys[i] = Y[r]
	}
	return xs, ys
}
