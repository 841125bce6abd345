package viz

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/data"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/model"
)

// ClassDistributionFile is where the class chart is written, relative to the
// output directory.
const ClassDistributionFile = "class_distribution.png"

var (
	negColor = color.RGBA{R: 50, G: 110, B: 220, A: 255}
	posColor = color.RGBA{R: 230, G: 80, B: 40, A: 255}
)

var outcomeNames = []string{"0 (no diabetes)", "1 (diabetes)"}

// ClassDistribution draws a bar per Outcome value and saves it to path.
func ClassDistribution(t *data.Table, path string) error {
	counts := t.ClassCounts()
	p := plot.New()
	p.Title.Text = "Outcome distribution"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(plotter.Values{float64(counts[0]), float64(counts[1])}, vg.Points(50))
	if err != nil {
		return err
	}
	bars.Color = negColor
	p.Add(bars)
	p.NominalX(outcomeNames...)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

// FeatureHistograms writes one histogram per predictor into dir and returns
// the file paths in Features order.
func FeatureHistograms(t *data.Table, dir string, bins int) ([]string, error) {
	paths := make([]string, 0, len(data.Features))
	for _, name := range data.Features {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		p := plot.New()
		p.Title.Text = name
		p.X.Label.Text = name
		p.Y.Label.Text = "Count"

		h, err := plotter.NewHist(plotter.Values(col), bins)
		if err != nil {
			return nil, fmt.Errorf("histogram %s: %w", name, err)
		}
		h.FillColor = negColor
		p.Add(h)

		path := filepath.Join(dir, "hist_"+name+".png")
		if err := p.Save(4*vg.Inch, 3*vg.Inch, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// BoxByOutcome draws the distribution of feature for each Outcome side by side.
func BoxByOutcome(t *data.Table, feature, path string) error {
	col, err := t.Column(feature)
	if err != nil {
		return err
	}
	label, err := t.Column(data.Label)
	if err != nil {
		return err
	}
	groups := [2]plotter.Values{}
	for i, v := range col {
		c := int(label[i])
		groups[c] = append(groups[c], v)
	}

	p := plot.New()
	p.Title.Text = feature + " by outcome"
	p.Y.Label.Text = feature
	for i, g := range groups {
		if len(g) == 0 {
			return fmt.Errorf("box plot %s: no rows with outcome %d", feature, i)
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(i), g)
		if err != nil {
			return err
		}
		b.FillColor = negColor
		if i == 1 {
			b.FillColor = posColor
		}
		p.Add(b)
	}
	p.NominalX(outcomeNames...)
	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

// matrixGrid exposes a square matrix as a heat map grid; row 0 is drawn at
// the bottom.
type matrixGrid [][]float64

func (g matrixGrid) Dims() (c, r int)   { return len(g[0]), len(g) }
func (g matrixGrid) Z(c, r int) float64 { return g[r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

func heatmap(title string, m [][]float64, lo, hi float64, xNames, yNames, cells []string, path string) error {
	if len(m) < 2 || len(m[0]) < 2 {
		return fmt.Errorf("heat map %q needs at least a 2x2 matrix", title)
	}
	p := plot.New()
	p.Title.Text = title

	hm := plotter.NewHeatMap(matrixGrid(m), palette.Heat(12, 1))
	hm.Min, hm.Max = lo, hi
	p.Add(hm)

	xys := make(plotter.XYs, 0, len(cells))
	for r := range m {
		for c := range m[r] {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: cells})
	if err != nil {
		return err
	}
	p.Add(labels)
	p.NominalX(xNames...)
	p.NominalY(yNames...)

	size := vg.Length(len(m)) * 0.9 * vg.Inch
	if size < 4*vg.Inch {
		size = 4 * vg.Inch
	}
	return p.Save(size, size, path)
}

// CorrelationHeatmap renders a correlation matrix over names.
func CorrelationHeatmap(names []string, corr [][]float64, path string) error {
	var cells []string
	for r := range corr {
		for c := range corr[r] {
			cells = append(cells, fmt.Sprintf("%.2f", corr[r][c]))
		}
	}
	short := make([]string, len(names))
	for i, n := range names {
		if len(n) > 8 {
			n = n[:8]
		}
		short[i] = n
	}
	return heatmap("Feature correlation", corr, -1, 1, short, short, cells, path)
}

// ConfusionHeatmap shades each cell by its row rate and prints the raw count.
func ConfusionHeatmap(cm model.ConfusionMatrix, path string) error {
	norm := cm.Normalized()
	m := [][]float64{norm[0][:], norm[1][:]}
	var cells []string
	for r := range 2 {
		for c := range 2 {
			cells = append(cells, fmt.Sprintf("%d (%.2f)", cm[r][c], norm[r][c]))
		}
	}
	return heatmap("Confusion matrix (rows: actual)", m, 0, 1,
		[]string{"pred 0", "pred 1"}, []string{"actual 0", "actual 1"}, cells, path)
}
