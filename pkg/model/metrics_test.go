package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfusionMatrix(t *testing.T) {
	yTrue := []float64{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	yPred := []float64{0, 0, 0, 0, 0, 1, 1, 1, 0, 0}

	cm := NewConfusionMatrix(yTrue, yPred)
	assert.Equal(t, ConfusionMatrix{{5, 1}, {2, 2}}, cm)
	assert.Equal(t, 10, cm.Total())
	assert.InDelta(t, 0.7, cm.Accuracy(), 1e-12)
	assert.InDelta(t, Accuracy(yTrue, yPred), cm.Accuracy(), 1e-12)

	tnr, ok := cm.Recall(0)
	assert.True(t, ok)
	assert.InDelta(t, 5.0/6, tnr, 1e-12)
	tpr, _ := cm.Recall(1)
	assert.InDelta(t, 0.5, tpr, 1e-12)

	assert.InDelta(t, (5.0/6+0.5)/2, cm.BalancedAccuracy(), 1e-12)
	assert.InDelta(t, cm.BalancedAccuracy(), BalancedAccuracy(yTrue, yPred), 1e-12)

	norm := cm.Normalized()
	assert.InDelta(t, 1.0, norm[0][0]+norm[0][1], 1e-12)
	assert.InDelta(t, 1.0, norm[1][0]+norm[1][1], 1e-12)
	assert.InDelta(t, 0.5, norm[1][1], 1e-12)

	prec, rec, f1 := cm.PrecisionRecallF1()
	assert.InDelta(t, 2.0/3, prec, 1e-12)
	assert.InDelta(t, 0.5, rec, 1e-12)
	assert.InDelta(t, 4.0/7, f1, 1e-12)
}

func TestBalancedAccuracyEqualsAccuracyWhenBalanced(t *testing.T) {
	yTrue := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	yPred := []float64{0, 1, 0, 0, 1, 0, 1, 1}
	assert.InDelta(t, Accuracy(yTrue, yPred), BalancedAccuracy(yTrue, yPred), 1e-12)
}

func TestBalancedAccuracyBounds(t *testing.T) {
	assert.Equal(t, 0.0, BalancedAccuracy([]float64{0, 1}, []float64{1, 0}))
	assert.Equal(t, 1.0, BalancedAccuracy([]float64{0, 1}, []float64{0, 1}))
	// Only one class present: its recall alone.
	assert.Equal(t, 0.5, BalancedAccuracy([]float64{1, 1}, []float64{1, 0}))
	assert.Equal(t, 0.0, BalancedAccuracy(nil, nil))
	assert.Equal(t, [2][2]float64{}, ConfusionMatrix{}.Normalized())
}

func TestMajorityBaseline(t *testing.T) {
	label, acc := MajorityBaseline([]float64{0, 0, 1}, []float64{0, 1, 0, 0})
	assert.Equal(t, 0.0, label)
	assert.InDelta(t, 0.75, acc, 1e-12)

	label, _ = MajorityBaseline([]float64{1, 1, 0}, nil)
	assert.Equal(t, 1.0, label)
}
