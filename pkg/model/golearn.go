package model

import (
	"fmt"
	"strconv"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/knn"
)

// GolearnKNN delegates neighbour search and voting to golearn's linear
// Euclidean KNN. Vote ties follow golearn's own policy.
type GolearnKNN struct {
	K int

	cls   *knn.KNNClassifier
	attrs []base.Attribute
	class *base.CategoricalAttribute
}

// NewGolearnKNN returns an unfitted golearn-backed classifier with k neighbours.
func NewGolearnKNN(k int) *GolearnKNN {
	return &GolearnKNN{K: k}
}

// Fit converts the training set to golearn instances and fits on them.
func (g *GolearnKNN) Fit(X [][]float64, y []float64) error {
	if err := checkTrainingSet(X, y, g.K); err != nil {
		return err
	}
	g.attrs = make([]base.Attribute, len(X[0]))
	for j := range g.attrs {
		g.attrs[j] = base.NewFloatAttribute(fmt.Sprintf("x%d", j))
	}
	g.class = base.NewCategoricalAttribute()
	g.class.SetName("label")
	// Register both values up front so train and query grids agree.
	g.class.GetSysValFromString("0")
	g.class.GetSysValFromString("1")

	train, err := g.instances(X, y)
	if err != nil {
		return err
	}
	cls := knn.NewKnnClassifier("euclidean", "linear", g.K)
	if err := cls.Fit(train); err != nil {
		return fmt.Errorf("golearn fit: %w", err)
	}
	g.cls = cls
	return nil
}

// Predict labels each row of X.
func (g *GolearnKNN) Predict(X [][]float64) ([]float64, error) {
	if g.cls == nil {
		return nil, ErrNotFitted
	}
	if len(X) == 0 {
		return nil, nil
	}
	pred, err := g.predictGrid(X, nil)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(X))
	for i := range out {
		v, err := strconv.ParseFloat(base.GetClass(pred, i), 64)
		if err != nil {
			return nil, fmt.Errorf("golearn predict row %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Summary returns golearn's per-class precision/recall report for X, y.
func (g *GolearnKNN) Summary(X [][]float64, y []float64) (string, error) {
	if g.cls == nil {
		return "", ErrNotFitted
	}
	ref, err := g.instances(X, y)
	if err != nil {
		return "", err
	}
	pred, err := g.cls.Predict(ref)
	if err != nil {
		return "", fmt.Errorf("golearn predict: %w", err)
	}
	cm, err := evaluation.GetConfusionMatrix(ref, pred)
	if err != nil {
		return "", fmt.Errorf("golearn confusion matrix: %w", err)
	}
	return evaluation.GetSummary(cm), nil
}

func (g *GolearnKNN) predictGrid(X [][]float64, y []float64) (base.FixedDataGrid, error) {
	if len(X[0]) != len(g.attrs) {
		return nil, fmt.Errorf("%w: query rows have %d features, want %d", ErrShape, len(X[0]), len(g.attrs))
	}
	query, err := g.instances(X, y)
	if err != nil {
		return nil, err
	}
	pred, err := g.cls.Predict(query)
	if err != nil {
		return nil, fmt.Errorf("golearn predict: %w", err)
	}
	return pred, nil
}

// instances packs X and y into a dense grid over the shared attributes. A nil
// y fills the class column with 0.
func (g *GolearnKNN) instances(X [][]float64, y []float64) (*base.DenseInstances, error) {
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(g.attrs))
	for j, a := range g.attrs {
		specs[j] = inst.AddAttribute(a)
	}
	classSpec := inst.AddAttribute(g.class)
	if err := inst.AddClassAttribute(g.class); err != nil {
		return nil, fmt.Errorf("golearn class attribute: %w", err)
	}
	if err := inst.Extend(len(X)); err != nil {
		return nil, fmt.Errorf("golearn extend: %w", err)
	}
	for i, row := range X {
		if len(row) != len(specs) {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrShape, i, len(row), len(specs))
		}
		for j, v := range row {
			inst.Set(specs[j], i, base.PackFloatToBytes(v))
		}
		label := "0"
		if y != nil && y[i] == 1 {
			label = "1"
		}
		inst.Set(classSpec, i, g.class.GetSysValFromString(label))
	}
	return inst, nil
}
