package model

// Accuracy is the fraction of predictions equal to the truth.
func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// ConfusionMatrix counts binary outcomes. Rows are the actual label, columns
// the predicted one: [0][0] true negatives, [0][1] false positives,
// [1][0] false negatives, [1][1] true positives.
type ConfusionMatrix [2][2]int

// NewConfusionMatrix tallies predictions against 0/1 truth.
func NewConfusionMatrix(yTrue, yPred []float64) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := range yTrue {
		cm[int(yTrue[i])][int(yPred[i])]++
	}
	return cm
}

// Total is the number of tallied predictions.
func (cm ConfusionMatrix) Total() int {
	return cm[0][0] + cm[0][1] + cm[1][0] + cm[1][1]
}

// Accuracy is the diagonal share of the matrix.
func (cm ConfusionMatrix) Accuracy() float64 {
	n := cm.Total()
	if n == 0 {
		return 0
	}
	return float64(cm[0][0]+cm[1][1]) / float64(n)
}

// Recall is the share of actual class rows predicted as class. It reports
// false when the class never occurs.
func (cm ConfusionMatrix) Recall(class int) (float64, bool) {
	support := cm[class][0] + cm[class][1]
	if support == 0 {
		return 0, false
	}
	return float64(cm[class][class]) / float64(support), true
}

// BalancedAccuracy is the unweighted mean of per-class recall over the
// classes present in the truth.
func (cm ConfusionMatrix) BalancedAccuracy() float64 {
	sum, n := 0.0, 0
	for class := range 2 {
		if r, ok := cm.Recall(class); ok {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Normalized divides each row by its total. Empty rows stay zero.
func (cm ConfusionMatrix) Normalized() [2][2]float64 {
	var out [2][2]float64
	for r := range 2 {
		support := cm[r][0] + cm[r][1]
		if support == 0 {
			continue
		}
		for c := range 2 {
			out[r][c] = float64(cm[r][c]) / float64(support)
		}
	}
	return out
}

// PrecisionRecallF1 reports precision, recall and F1 for the positive class.
func (cm ConfusionMatrix) PrecisionRecallF1() (prec, rec, f1 float64) {
	tp, fp, fn := cm[1][1], cm[0][1], cm[1][0]
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}

// BalancedAccuracy is the mean per-class recall of yPred against yTrue.
func BalancedAccuracy(yTrue, yPred []float64) float64 {
	return NewConfusionMatrix(yTrue, yPred).BalancedAccuracy()
}

// MajorityBaseline returns the majority label of yTrain and the accuracy of
// always predicting it on yTest. A tie picks 0.
func MajorityBaseline(yTrain, yTest []float64) (label, accuracy float64) {
	ones := 0
	for _, v := range yTrain {
		if v == 1 {
			ones++
		}
	}
	if 2*ones > len(yTrain) {
		label = 1
	}
	pred := make([]float64, len(yTest))
	for i := range pred {
		pred[i] = label
	}
	return label, Accuracy(yTest, pred)
}
