package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/data"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/dataprep"
)

func imputed(t *testing.T) *data.Table {
	t.Helper()
	raw := data.Synthetic(768, 0.35, 42)
	tbl, err := dataprep.ImputeZeros(raw, dataprep.ZeroSentinelColumns)
	require.NoError(t, err)
	return tbl
}

func TestEvaluateBeatsMajorityBaseline(t *testing.T) {
	tbl := imputed(t)
	counts := tbl.ClassCounts()
	require.Greater(t, counts[0], counts[1], "label distribution should be imbalanced")

	rep, err := Evaluate(tbl, DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, rep.Test, 192)
	assert.Len(t, rep.Train, 576)
	assert.Equal(t, 0.0, rep.BaselineLabel)
	require.Len(t, rep.Runs, 2)

	run := rep.Runs[0]
	assert.Equal(t, 3, run.K)
	assert.Greater(t, run.TestAccuracy, rep.BaselineAccuracy)
	assert.Equal(t, 192, run.Confusion.Total())
	assert.InDelta(t, run.TestAccuracy, run.Accuracy, 1e-12)
	assert.GreaterOrEqual(t, run.BalancedAccuracy, 0.0)
	assert.LessOrEqual(t, run.BalancedAccuracy, 1.0)
	assert.Empty(t, run.Summary)

	tnr, _ := run.Confusion.Recall(0)
	tpr, _ := run.Confusion.Recall(1)
	assert.InDelta(t, (tnr+tpr)/2, run.BalancedAccuracy, 1e-12)
	assert.InDelta(t, tpr, run.Normalized[1][1], 1e-12)
}

func TestEvaluateSharesPartitionAcrossK(t *testing.T) {
	tbl := imputed(t)

	cfg := DefaultConfig()
	cfg.Ks = []int{3}
	rep3, err := Evaluate(tbl, cfg)
	require.NoError(t, err)

	cfg.Ks = []int{7}
	rep7, err := Evaluate(tbl, cfg)
	require.NoError(t, err)

	assert.Equal(t, rep3.Train, rep7.Train)
	assert.Equal(t, rep3.Test, rep7.Test)
	assert.Equal(t, 7, rep7.Runs[0].K)

	both, err := Evaluate(tbl, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, rep3.Runs[0], both.Runs[0])
	assert.Equal(t, rep7.Runs[0], both.Runs[1])
}

func TestEvaluateScaledAndGolearn(t *testing.T) {
	tbl := imputed(t)

	cfg := DefaultConfig()
	cfg.Ks = []int{3}
	cfg.Scale = true
	rep, err := Evaluate(tbl, cfg)
	require.NoError(t, err)
	assert.Greater(t, rep.Runs[0].TestAccuracy, rep.BaselineAccuracy)

	cfg.Scale = false
	cfg.Backend = BackendGolearn
	rep, err = Evaluate(tbl, cfg)
	require.NoError(t, err)
	assert.Greater(t, rep.Runs[0].TestAccuracy, rep.BaselineAccuracy)
	assert.NotEmpty(t, rep.Runs[0].Summary)
}

func TestEvaluateErrors(t *testing.T) {
	tbl := imputed(t)

	cfg := DefaultConfig()
	cfg.Ks = []int{1000}
	_, err := Evaluate(tbl, cfg)
	assert.ErrorIs(t, err, ErrEvaluate)

	cfg = DefaultConfig()
	cfg.Ks = nil
	_, err = Evaluate(tbl, cfg)
	assert.ErrorIs(t, err, ErrEvaluate)

	cfg = DefaultConfig()
	cfg.TestRatio = 1.5
	_, err = Evaluate(tbl, cfg)
	assert.ErrorIs(t, err, ErrEvaluate)

	cfg = DefaultConfig()
	cfg.Backend = "svm"
	_, err = Evaluate(tbl, cfg)
	assert.ErrorIs(t, err, ErrEvaluate)
}
