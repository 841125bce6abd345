package data

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the diabetes table, in header order.
const (
	Pregnancies              = "Pregnancies"
	Glucose                  = "Glucose"
	BloodPressure            = "BloodPressure"
	SkinThickness            = "SkinThickness"
	Insulin                  = "Insulin"
	BMI                      = "BMI"
	DiabetesPedigreeFunction = "DiabetesPedigreeFunction"
	Age                      = "Age"
	Outcome                  = "Outcome"
)

// Label is the binary target column.
const Label = Outcome

// Features are the predictor columns, in the order used for feature vectors.
var Features = []string{
	Pregnancies, Glucose, BloodPressure, SkinThickness,
	Insulin, BMI, DiabetesPedigreeFunction, Age,
}

// Columns is the full header: the predictors followed by the label.
var Columns = append(slices.Clone(Features), Outcome)

// ErrSchema reports a table that does not match the expected header or values.
var ErrSchema = errors.New("schema mismatch")

// Table is a read-only view over a dataframe. Every operation that changes
// values returns a new Table and leaves the receiver as it was.
type Table struct {
	df dataframe.DataFrame
}

// NewTable builds a table from named float columns and validates it.
func NewTable(names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrSchema, len(names), len(cols))
	}
	ss := make([]series.Series, len(cols))
	for i, c := range cols {
		ss[i] = series.New(slices.Clone(c), series.Float, names[i])
	}
	df := dataframe.New(ss...)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, df.Err)
	}
	return fromFrame(df)
}

func fromFrame(df dataframe.DataFrame) (*Table, error) {
	t := &Table{df: df}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate checks the header against Columns, that every cell is numeric
// and that the label only holds 0 and 1.
func (t *Table) validate() error {
	names := t.df.Names()
	if len(names) != len(Columns) {
		return fmt.Errorf("%w: want %d columns, got %d", ErrSchema, len(Columns), len(names))
	}
	for _, name := range Columns {
		if !slices.Contains(names, name) {
			return fmt.Errorf("%w: missing column %q", ErrSchema, name)
		}
	}
	for _, name := range names {
		for row, v := range t.df.Col(name).Float() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d column %q is not numeric", ErrSchema, row, name)
			}
			if name == Label && v != 0 && v != 1 {
				return fmt.Errorf("%w: row %d label %v outside {0, 1}", ErrSchema, row, v)
			}
		}
	}
	return nil
}

// Nrow returns the number of records.
func (t *Table) Nrow() int { return t.df.Nrow() }

// Names returns the column names in table order.
func (t *Table) Names() []string { return t.df.Names() }

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	s := t.df.Col(name)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Float(), nil
}

// WithColumn returns a new table in which the named column holds vals.
func (t *Table) WithColumn(name string, vals []float64) (*Table, error) {
	if !slices.Contains(t.df.Names(), name) {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	if len(vals) != t.df.Nrow() {
		return nil, fmt.Errorf("column %q: %d values for %d rows", name, len(vals), t.df.Nrow())
	}
	df := t.df.Mutate(series.New(slices.Clone(vals), series.Float, name))
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df}, nil
}

// Subset returns the given rows, in the given order.
func (t *Table) Subset(rows []int) *Table {
	return &Table{df: t.df.Subset(rows)}
}

// XY splits the table into a row-major feature matrix over Features and the
// label vector.
func (t *Table) XY() ([][]float64, []float64) {
	n := t.df.Nrow()
	X := make([][]float64, n)
	for i := range n {
		X[i] = make([]float64, len(Features))
	}
	for j, name := range Features {
		for i, v := range t.df.Col(name).Float() {
			X[i][j] = v
		}
	}
	return X, t.df.Col(Label).Float()
}

// ClassCounts counts records per label value.
func (t *Table) ClassCounts() map[int]int {
	counts := make(map[int]int)
	for _, v := range t.df.Col(Label).Float() {
		counts[int(v)]++
	}
	return counts
}

// Describe returns the dataframe's own descriptive summary.
func (t *Table) Describe() dataframe.DataFrame {
	return t.df.Describe()
}

// DataFrame returns a copy of the underlying dataframe.
func (t *Table) DataFrame() dataframe.DataFrame {
	return t.df.Copy()
}
