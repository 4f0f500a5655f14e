package adapter

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	m "github.com/mouse-blink/regdump/internal/model"
)

const logHistBins = 50

// Series pairs a label with the integer sample it plots.
type Series struct {
	Label  string
	Values []int
}

// PlotWriter renders the analysis charts to PNG files. Empty samples write
// nothing and succeed, so callers do not have to special-case sparse
// artifact sets.
type PlotWriter interface {
	// IntHist draws a unit-bin count histogram. xMax and yMax clamp the
	// axes when positive.
	IntHist(values []int, title, xlabel string, path m.Path, xMax, yMax float64) error

	// FloatHist draws a fixed-bin histogram of float values.
	FloatHist(values []float64, bins int, title, xlabel string, path m.Path) error

	// LogHist draws a histogram over log-spaced bins on a log x axis.
	LogHist(values []int, title, xlabel string, path m.Path) error

	// LogHistNB is LogHist plus a dashed expected-count overlay computed
	// from a fitted pmf, starting at k = nbMin. A nil pmf skips the
	// overlay.
	LogHistNB(values []int, pmf []float64, nbMin int, title, xlabel string, path m.Path, xMax, yMax float64) error

	// ECDF draws empirical distribution steps for each series, optionally
	// overlaying dashed model CDFs built from the matching pmfs entry.
	ECDF(series []Series, pmfs [][]float64, title, xlabel string, path m.Path, xMax float64, logX bool) error
}

// GonumPlots is the gonum/plot backed PlotWriter used by the real CLI.
type GonumPlots struct{}

// NewPlotWriter constructs a GonumPlots instance.
func NewPlotWriter() *GonumPlots {
	return &GonumPlots{}
}

// IntHist draws a unit-bin count histogram.
func (g *GonumPlots) IntHist(values []int, title, xlabel string, path m.Path, xMax, yMax float64) error {
	if len(values) == 0 {
		return nil
	}

	p := newPlot(title, xlabel, "count")

	h, err := plotter.NewHist(intValues(values), unitBins(values))
	if err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}

	h.FillColor = plotutil.Color(0)
	p.Add(h)

	if xMax > 0 {
		p.X.Min, p.X.Max = 0, xMax
	}

	if yMax > 0 {
		p.Y.Min, p.Y.Max = 0, yMax
	}

	return save(p, path)
}

// FloatHist draws a fixed-bin histogram of float values.
func (g *GonumPlots) FloatHist(values []float64, bins int, title, xlabel string, path m.Path) error {
	if len(values) == 0 {
		return nil
	}

	p := newPlot(title, xlabel, "count")

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}

	h.FillColor = plotutil.Color(0)
	p.Add(h)

	return save(p, path)
}

// LogHist draws a histogram over log-spaced bins on a log x axis.
func (g *GonumPlots) LogHist(values []int, title, xlabel string, path m.Path) error {
	return g.LogHistNB(values, nil, 0, title, xlabel, path, 0, 0)
}

// LogHistNB draws the log-x histogram with an optional expected-count
// overlay from a fitted pmf.
func (g *GonumPlots) LogHistNB(values []int, pmf []float64, nbMin int, title, xlabel string, path m.Path, xMax, yMax float64) error {
	positive := keepPositive(values)
	if len(positive) == 0 {
		return nil
	}

	hi := xMax
	if hi <= 0 {
		hi = float64(slicesMax(positive))
	}

	edges := logEdges(1, hi, logHistBins)

	p := newPlot(title, xlabel, "count")
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	counts := binCounts(positive, edges)

	observed, err := stepLine(edges, counts)
	if err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}

	observed.Color = plotutil.Color(0)
	p.Add(observed)
	p.Legend.Add("observed", observed)

	if pmf != nil {
		expected, err := stepLine(edges, expectedCounts(len(values), pmf, nbMin, edges))
		if err != nil {
			return fmt.Errorf("histogram %s: %w", path, err)
		}

		expected.Color = plotutil.Color(1)
		expected.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(expected)
		p.Legend.Add("NB fit", expected)
	}

	p.Legend.Top = true
	p.X.Min, p.X.Max = 1, hi

	if yMax > 0 {
		p.Y.Min, p.Y.Max = 0, yMax
	}

	return save(p, path)
}

// ECDF draws empirical distribution steps, optionally with model CDFs.
func (g *GonumPlots) ECDF(series []Series, pmfs [][]float64, title, xlabel string, path m.Path, xMax float64, logX bool) error {
	p := newPlot(title, xlabel, "fraction <= x")

	if logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.X.Min = 1
	}

	plotted := 0

	for i, s := range series {
		values := s.Values
		if logX {
			values = keepPositive(values)
		}

		if len(values) == 0 {
			continue
		}

		line, err := plotter.NewLine(ecdfPoints(values))
		if err != nil {
			return fmt.Errorf("ecdf %s: %w", path, err)
		}

		line.StepStyle = plotter.PostStep
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Label, line)

		plotted++

		if i < len(pmfs) && pmfs[i] != nil {
			model, err := plotter.NewLine(cdfPoints(pmfs[i], logX))
			if err != nil {
				return fmt.Errorf("ecdf %s: %w", path, err)
			}

			model.Color = plotutil.Color(i)
			model.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(model)
			p.Legend.Add(s.Label+" (NB fit)", model)
		}
	}

	if plotted == 0 {
		return nil
	}

	if xMax > 0 {
		p.X.Max = xMax
	}

	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false

	return save(p, path)
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	return p
}

func save(p *plot.Plot, path m.Path) error {
	if err := p.Save(8*vg.Inch, 5*vg.Inch, string(path)); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}

	return nil
}

func intValues(values []int) plotter.Values {
	vs := make(plotter.Values, len(values))
	for i, v := range values {
		vs[i] = float64(v)
	}

	return vs
}

// unitBins sizes a histogram so each integer gets its own bin, capped to
// keep pathological ranges renderable.
func unitBins(values []int) int {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}

	return min(hi-lo+1, 1000)
}

func keepPositive(values []int) []int {
	var out []int

	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}

	return out
}

func slicesMax(values []int) int {
	out := values[0]
	for _, v := range values {
		out = max(out, v)
	}

	return out
}

// logEdges builds n log-spaced bin edges from lo to hi inclusive.
func logEdges(lo, hi float64, n int) []float64 {
	if hi <= lo {
		hi = lo * 10
	}

	edges := make([]float64, n+1)

	llo, lhi := math.Log10(lo), math.Log10(hi)
	for i := range edges {
		edges[i] = math.Pow(10, llo+(lhi-llo)*float64(i)/float64(n))
	}

	return edges
}

// binCounts counts values into half-open bins [edge[i], edge[i+1]), with
// the final bin closed on the right.
func binCounts(values []int, edges []float64) []float64 {
	counts := make([]float64, len(edges)-1)

	for _, v := range values {
		f := float64(v)
		if f < edges[0] || f > edges[len(edges)-1] {
			continue
		}

		i := sort.SearchFloat64s(edges, f)
		if i > 0 && (i == len(edges) || edges[i] != f) {
			i--
		}

		if i == len(counts) {
			i--
		}

		counts[i]++
	}

	return counts
}

// expectedCounts folds a fitted pmf into per-bin expected counts for a
// sample of size n, ignoring k below nbMin.
func expectedCounts(n int, pmf []float64, nbMin int, edges []float64) []float64 {
	counts := make([]float64, len(edges)-1)

	for k := nbMin; k < len(pmf); k++ {
		f := float64(k)
		if f < edges[0] || f > edges[len(edges)-1] {
			continue
		}

		i := sort.SearchFloat64s(edges, f)
		if i > 0 && (i == len(edges) || edges[i] != f) {
			i--
		}

		if i == len(counts) {
			i--
		}

		counts[i] += pmf[k] * float64(n)
	}

	return counts
}

// stepLine renders binned counts as a post-step outline, which reads as a
// histogram on a log axis where bar widths would be misleading.
func stepLine(edges, counts []float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, 0, len(counts)+1)

	for i, c := range counts {
		pts = append(pts, plotter.XY{X: edges[i], Y: c})
	}

	pts = append(pts, plotter.XY{X: edges[len(edges)-1], Y: counts[len(counts)-1]})

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}

	line.StepStyle = plotter.PostStep

	return line, nil
}

func ecdfPoints(values []int) plotter.XYs {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	pts := make(plotter.XYs, len(sorted))

	n := float64(len(sorted))
	for i, v := range sorted {
		pts[i] = plotter.XY{X: float64(v), Y: float64(i+1) / n}
	}

	return pts
}

// cdfPoints accumulates a pmf into CDF points. On a log axis k = 0 cannot
// be placed, so its mass folds into k = 1.
func cdfPoints(pmf []float64, logX bool) plotter.XYs {
	var pts plotter.XYs

	acc := 0.0

	for k, pk := range pmf {
		acc += pk

		if logX && k < 1 {
			continue
		}

		pts = append(pts, plotter.XY{X: float64(k), Y: acc})
	}

	return pts
}
