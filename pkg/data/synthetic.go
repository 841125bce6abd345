package data

import (
	"math"
	"math/rand"
)

// Synthetic generates an n-row table shaped like the diabetes dataset. About
// positiveRate of the rows are labelled 1, and positives run higher on
// Glucose, BMI and Age. SkinThickness, Insulin and BloodPressure carry zero
// sentinels at fixed rates. The same seed always gives the same table.
func Synthetic(n int, positiveRate float64, seed int64) *Table {
	r := rand.New(rand.NewSource(seed))
	cols := make(map[string][]float64, len(Columns))
	for _, name := range Columns {
		cols[name] = make([]float64, n)
	}

	normal := func(mean, std float64) float64 {
		return math.Max(1, mean+std*r.NormFloat64())
	}
	sentinel := func(p, v float64) float64 {
		if r.Float64() < p {
			return 0
		}
		return v
	}

	for i := range n {
		pos := r.Float64() < positiveRate
		shift := 0.0
		if pos {
			cols[Outcome][i] = 1
			shift = 1
		}
		cols[Pregnancies][i] = float64(r.Intn(10))
		cols[Glucose][i] = normal(100+60*shift, 12)
		cols[BloodPressure][i] = sentinel(0.05, normal(70, 8))
		cols[SkinThickness][i] = sentinel(0.25, normal(25, 5))
		cols[Insulin][i] = sentinel(0.10, normal(80, 15))
		cols[BMI][i] = normal(30+6*shift, 5)
		cols[DiabetesPedigreeFunction][i] = math.Max(0.05, 0.4+0.2*shift+0.1*r.NormFloat64())
		cols[Age][i] = normal(30+10*shift, 10)
	}

	ordered := make([][]float64, len(Columns))
	for i, name := range Columns {
		ordered[i] = cols[name]
	}
	t, err := NewTable(Columns, ordered)
	if err != nil {
		panic(err)
	}
	return t
}
