package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Pregnancies,Glucose,BloodPressure,SkinThickness,Insulin,BMI,DiabetesPedigreeFunction,Age,Outcome
6,148,72,35,0,33.6,0.627,50,1
1,85,66,29,0,26.6,0.351,31,0
8,183,64,0,0,23.3,0.672,32,1
1,89,66,23,94,28.1,0.167,21,0
`

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 4, tbl.Nrow())
	assert.Equal(t, Columns, tbl.Names())

	glucose, err := tbl.Column(Glucose)
	require.NoError(t, err)
	assert.Equal(t, []float64{148, 85, 183, 89}, glucose)
	assert.Equal(t, map[int]int{0: 2, 1: 2}, tbl.ClassCounts())
}

func TestReadCSVSchemaErrors(t *testing.T) {
	cases := map[string]string{
		"missing column": "Pregnancies,Glucose\n1,2\n",
		"non numeric":    strings.Replace(sample, "148", "abc", 1),
		"bad label":      strings.Replace(sample, "50,1", "50,2", 1),
		"extra column": strings.Replace(strings.Replace(sample, "Outcome\n", "Outcome,Extra\n", 1),
			",1\n", ",1,9\n", -1),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchema), "got %v", err)
		})
	}
}

func TestXY(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	X, y := tbl.XY()
	require.Len(t, X, 4)
	assert.Equal(t, []float64{6, 148, 72, 35, 0, 33.6, 0.627, 50}, X[0])
	assert.Equal(t, []float64{1, 0, 1, 0}, y)
}

func TestWithColumnLeavesReceiver(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	next, err := tbl.WithColumn(Insulin, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	before, _ := tbl.Column(Insulin)
	after, _ := next.Column(Insulin)
	assert.Equal(t, []float64{0, 0, 0, 94}, before)
	assert.Equal(t, []float64{1, 2, 3, 4}, after)

	_, err = tbl.WithColumn("Nope", []float64{1, 2, 3, 4})
	assert.Error(t, err)
	_, err = tbl.WithColumn(Insulin, []float64{1})
	assert.Error(t, err)
}

func TestSubset(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	sub := tbl.Subset([]int{2, 0})
	age, err := sub.Column(Age)
	require.NoError(t, err)
	assert.Equal(t, []float64{32, 50}, age)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diabetes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	tbl, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Nrow())

	_, err = Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/diabetes.csv" {
			_, _ = w.Write([]byte(sample))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	tbl, err := Fetch(context.Background(), srv.Client(), srv.URL+"/diabetes.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Nrow())

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/other.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))

	tbl, err = Load(context.Background(), srv.URL+"/diabetes.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Nrow())
}

func TestNewTable(t *testing.T) {
	cols := make([][]float64, len(Columns))
	for i := range cols {
		cols[i] = []float64{1, 0}
	}
	tbl, err := NewTable(Columns, cols)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Nrow())

	_, err = NewTable(Columns[:3], cols[:3])
	assert.ErrorIs(t, err, ErrSchema)
}

func TestSynthetic(t *testing.T) {
	a := Synthetic(768, 0.35, 7)
	b := Synthetic(768, 0.35, 7)
	assert.Equal(t, a.DataFrame().Records(), b.DataFrame().Records())

	counts := a.ClassCounts()
	assert.Equal(t, 768, counts[0]+counts[1])
	assert.InDelta(t, 0.65, float64(counts[0])/768, 0.06)

	skin, err := a.Column(SkinThickness)
	require.NoError(t, err)
	assert.Contains(t, skin, 0.0)

	assert.Equal(t, len(Columns), a.Describe().Ncol()-1)
}
