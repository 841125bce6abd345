package eval

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/data"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/loader"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/model"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/stats"
)

// ErrEvaluate wraps every failure of an evaluation run.
var ErrEvaluate = errors.New("evaluation failed")

// Backend names accepted by Config.Backend.
const (
	BackendNative  = "native"
	BackendGolearn = "golearn"
)

// Config controls one evaluation run.
type Config struct {
	TestRatio float64
	Seed      int64
	Ks        []int
	Backend   string
	// Scale standardizes features with statistics from the training rows.
	Scale bool
}

// DefaultConfig holds out a quarter of the rows with seed 0 and compares
// k=3 against k=7.
func DefaultConfig() Config {
	return Config{
		TestRatio: 0.25,
		Seed:      0,
		Ks:        []int{3, 7},
		Backend:   BackendNative,
	}
}

// Run holds the scores of one fitted classifier.
type Run struct {
	K                int
	TestAccuracy     float64
	TrainAccuracy    float64
	Confusion        model.ConfusionMatrix
	Normalized       [2][2]float64
	Accuracy         float64
	BalancedAccuracy float64
	// Summary is golearn's report text, empty for the native backend.
	Summary string
}

// Report is the outcome of Evaluate. Every run shares the same partition.
type Report struct {
	Train, Test      []int
	BaselineLabel    float64
	BaselineAccuracy float64
	Runs             []Run
}

// NewClassifier builds a classifier for backend with k neighbours.
func NewClassifier(backend string, k int) (model.Classifier, error) {
	switch backend {
	case "", BackendNative:
		return model.NewKNN(k), nil
	case BackendGolearn:
		return model.NewGolearnKNN(k), nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

// Evaluate separates the label from the predictors, splits the rows once and
// fits a fresh classifier on the training rows for every k in cfg.Ks.
func Evaluate(t *data.Table, cfg Config) (*Report, error) {
	if len(cfg.Ks) == 0 {
		return nil, fmt.Errorf("%w: no neighbour counts given", ErrEvaluate)
	}
	X, y := t.XY()
	trainIdx, testIdx, err := loader.Split(len(X), cfg.TestRatio, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluate, err)
	}
	XTrain, yTrain := loader.Take(X, y, trainIdx)
	XTest, yTest := loader.Take(X, y, testIdx)

	if cfg.Scale {
		scaler := stats.NewStandardScaler()
		if XTrain, err = scaler.FitTransform(XTrain); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEvaluate, err)
		}
		XTest = scaler.Transform(XTest)
	}

	rep := &Report{Train: trainIdx, Test: testIdx}
	rep.BaselineLabel, rep.BaselineAccuracy = model.MajorityBaseline(yTrain, yTest)
	log.Debug().Int("train", len(trainIdx)).Int("test", len(testIdx)).
		Float64("baseline", rep.BaselineAccuracy).Msg("split rows")

	for _, k := range cfg.Ks {
		start := time.Now()
		run, err := evaluateK(cfg.Backend, k, XTrain, yTrain, XTest, yTest)
		if err != nil {
			return nil, fmt.Errorf("%w: k=%d: %w", ErrEvaluate, k, err)
		}
		log.Debug().Int("k", k).Float64("test_accuracy", run.TestAccuracy).
			Dur("elapsed", time.Since(start)).Msg("evaluated classifier")
		rep.Runs = append(rep.Runs, run)
	}
	return rep, nil
}

func evaluateK(backend string, k int, XTrain [][]float64, yTrain []float64, XTest [][]float64, yTest []float64) (Run, error) {
	cls, err := NewClassifier(backend, k)
	if err != nil {
		return Run{}, err
	}
	if err := cls.Fit(XTrain, yTrain); err != nil {
		return Run{}, err
	}
	testPred, err := cls.Predict(XTest)
	if err != nil {
		return Run{}, err
	}
	trainAcc, err := model.Score(cls, XTrain, yTrain)
	if err != nil {
		return Run{}, err
	}

	cm := model.NewConfusionMatrix(yTest, testPred)
	run := Run{
		K:                k,
		TestAccuracy:     model.Accuracy(yTest, testPred),
		TrainAccuracy:    trainAcc,
		Confusion:        cm,
		Normalized:       cm.Normalized(),
		Accuracy:         cm.Accuracy(),
		BalancedAccuracy: cm.BalancedAccuracy(),
	}
	if g, ok := cls.(*model.GolearnKNN); ok {
		if run.Summary, err = g.Summary(XTest, yTest); err != nil {
			return Run{}, err
		}
	}
	return run, nil
}
