package domain

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/regdump/internal/adapter"
	m "github.com/mouse-blink/regdump/internal/model"
)

// CompareArgs carries the compare operation's inputs.
type CompareArgs struct {
	Left           m.Path
	Right          m.Path
	MaxChangedVars int
	Interactive    bool
}

// TopArgs carries the largest-cluster ranking inputs. Path may be a single
// CSV artifact or a directory scanned with Pattern. Out optionally names a
// CSV file to write the full ranking to.
type TopArgs struct {
	Path    m.Path
	Pattern string
	Top     int
	Out     m.Path
}

// StatsArgs carries the count-summary inputs.
type StatsArgs struct {
	Path    m.Path
	Pattern string
	OutDir  m.Path
}

// StructureArgs carries the structure-report inputs. MaxRows caps how many
// rows are ingested; zero means no cap.
type StructureArgs struct {
	Path    m.Path
	Pattern string
	OutDir  m.Path
	MaxRows int
}

// FitArgs carries the negative binomial fit inputs. MaxX bounds the fitted
// pmf tabulation and the plots' x axes; MaxY clamps histogram y axes.
type FitArgs struct {
	Path    m.Path
	Pattern string
	OutDir  m.Path
	MaxX    int
	MaxY    int
}

// Workflow is the surface the CLI drives. The pure algorithms live beside
// it in this package; the workflow binds them to the filesystem, the plot
// writer and the user interface.
type Workflow interface {
	// Compare diffs two dumps and displays the report. It returns whether
	// any difference was found.
	Compare(args CompareArgs) (bool, error)

	// TopSCCs ranks SCC rows by largest cluster size.
	TopSCCs(args TopArgs) error

	// Stats summarizes block and kernel counts and writes histograms.
	Stats(args StatsArgs) error

	// Structure computes per-CFG structure metrics, prints the aggregate
	// report and writes the per-row CSV plus charts.
	Structure(args StructureArgs) error

	// Fit fits a negative binomial to the count distributions and writes
	// overlay charts.
	Fit(args FitArgs) error
}

type workflow struct {
	fs    adapter.FS
	plots adapter.PlotWriter
	newUI UIFactory
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.FS, plots adapter.PlotWriter, newUI UIFactory) Workflow {
	return &workflow{fs: fs, plots: plots, newUI: newUI}
}

// Compare parses both dumps concurrently; they are independent inputs and
// real dumps run to hundreds of megabytes.
func (w *workflow) Compare(args CompareArgs) (bool, error) {
	var left, right *m.Dump

	var g errgroup.Group

	g.Go(func() error {
		d, err := w.readDump(args.Left)
		left = d

		return err
	})

	g.Go(func() error {
		d, err := w.readDump(args.Right)
		right = d

		return err
	})

	if err := g.Wait(); err != nil {
		return false, err
	}

	rep := CompareDumps(left, right, args.MaxChangedVars)

	ui := w.newUI(args.Interactive)
	if err := ui.DisplayReport(rep); err != nil {
		return false, err
	}

	return !rep.Empty(), nil
}

func (w *workflow) readDump(path m.Path) (*m.Dump, error) {
	start := time.Now()

	rc, err := w.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}

	defer func() { _ = rc.Close() }()

	dump, err := ParseDump(rc, path)
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed dump",
		"path", path,
		"functions", len(dump.Sections),
		"elapsed", time.Since(start))

	return dump, nil
}

// TopSCCs ranks all parsed rows by (largest cluster, block count), shows
// the head of the ranking and optionally writes the whole ranking as CSV.
func (w *workflow) TopSCCs(args TopArgs) error {
	files, err := w.findSCCFiles(args.Path, args.Pattern)
	if err != nil {
		return err
	}

	var rows []m.SCCTopRow

	err = w.eachSCCRow(files, 0, func(ref m.SCCRowRef) {
		maxCluster, nontrivial := TopMetrics(ref.Row)

		rows = append(rows, m.SCCTopRow{
			File:       filepath.Base(string(ref.File)),
			Line:       ref.Line,
			Func:       ref.Row.Func,
			Blocks:     ref.Row.Blocks,
			Kernels:    ref.Row.Kernels,
			MaxCluster: maxCluster,
			Nontrivial: nontrivial,
		})
	})
	if err != nil {
		return err
	}

	ui := w.newUI(false)

	if len(rows) == 0 {
		ui.Printf("No SCC rows found under %s\n", args.Path)

		return nil
	}

	SortTopRows(rows)

	ui.Printf("Found %d rows from %s\n\n", len(rows), args.Path)
	ui.DisplayTopRows(rows, args.Top)

	if args.Out != "" {
		if err := w.writeCSV(args.Out, topCSVHeader, topCSVRecords(rows)); err != nil {
			return err
		}

		ui.Printf("\nWrote: %s\n", args.Out)
	}

	return nil
}

// Stats prints count summaries for blocks and kernels and writes the
// histogram and ECDF charts.
func (w *workflow) Stats(args StatsArgs) error {
	files, err := w.findSCCFiles(args.Path, args.Pattern)
	if err != nil {
		return err
	}

	blocks, kernels, err := w.readCounts(files)
	if err != nil {
		return err
	}

	ui := w.newUI(false)
	ui.Printf("Files: %d\n", len(files))
	ui.DisplayCountSummary("Combined blocks", Summarize(blocks))
	ui.DisplayCountSummary("Combined clusters", Summarize(kernels))

	if err := w.fs.MkdirAll(args.OutDir); err != nil {
		return fmt.Errorf("creating %s: %w", args.OutDir, err)
	}

	out := func(name string) m.Path { return w.fs.JoinPath(string(args.OutDir), name) }

	if err := w.plots.IntHist(blocks, "Histogram: #blocks", "#blocks",
		out("blocks_hist.png"), statsXMax, statsYMax); err != nil {
		return err
	}

	if err := w.plots.IntHist(kernels, "Histogram: #SCC kernels", "#kernels",
		out("clusters_hist.png"), statsXMax, statsYMax); err != nil {
		return err
	}

	series := []adapter.Series{{Label: "#blocks", Values: blocks}, {Label: "#kernels", Values: kernels}}
	if err := w.plots.ECDF(series, nil, "ECDF: blocks vs SCC kernels", "count",
		out("blocks_vs_clusters_ecdf.png"), statsXMax, false); err != nil {
		return err
	}

	ui.Printf("Wrote plots to: %s\n", args.OutDir)

	return nil
}

const (
	statsXMax = 500
	statsYMax = 10000
)

// Structure ingests rows, derives per-CFG metrics, prints the aggregate
// report, and writes the per-row summary CSV and the structure charts.
func (w *workflow) Structure(args StructureArgs) error {
	files, err := w.findSCCFiles(args.Path, args.Pattern)
	if err != nil {
		return err
	}

	var rows []m.StructureRow

	err = w.eachSCCRow(files, args.MaxRows, func(ref m.SCCRowRef) {
		row, ok := BuildStructureRow(ref)
		if ok {
			rows = append(rows, row)
		}
	})
	if err != nil {
		return err
	}

	sum := AggregateStructure(rows, len(files))

	ui := w.newUI(false)
	ui.DisplayStructureSummary(sum)

	if err := w.fs.MkdirAll(args.OutDir); err != nil {
		return fmt.Errorf("creating %s: %w", args.OutDir, err)
	}

	out := func(name string) m.Path { return w.fs.JoinPath(string(args.OutDir), name) }

	csvPath := out("scc_struct_summary.csv")
	if err := w.writeCSV(csvPath, structureCSVHeader, structureCSVRecords(rows)); err != nil {
		return err
	}

	if err := w.writeStructurePlots(rows, out); err != nil {
		return err
	}

	ui.Printf("\nWrote: %s\n", csvPath)
	ui.Printf("Wrote plots to: %s\n", args.OutDir)

	return nil
}

func (w *workflow) writeStructurePlots(rows []m.StructureRow, out func(string) m.Path) error {
	var (
		nontrivCounts []int
		loopyLargest  []int
		fracs         []float64
		oneSizes      []int
	)

	for _, r := range rows {
		nontrivCounts = append(nontrivCounts, r.Nontrivial)
		fracs = append(fracs, r.NontrivialFrac)

		if r.Loopy {
			loopyLargest = append(loopyLargest, r.Largest)
		}

		if r.OneNontrivial {
			oneSizes = append(oneSizes, r.OneNontrivialSize)
		}
	}

	if err := w.plots.IntHist(nontrivCounts, "Non-trivial SCC count per CFG", "#non-trivial SCCs",
		out("nontriv_scc_count_hist.png"), 0, 0); err != nil {
		return err
	}

	if err := w.plots.LogHist(loopyLargest, "Largest SCC size (loopy CFGs)", "largest SCC size",
		out("largest_scc_hist_logx.png")); err != nil {
		return err
	}

	if err := w.plots.FloatHist(fracs, 50, "Fraction of nodes in non-trivial SCCs", "fraction",
		out("frac_nodes_in_nontriv_hist.png")); err != nil {
		return err
	}

	return w.plots.LogHist(oneSizes, "Single non-trivial SCC size", "SCC size",
		out("one_nontriv_size_hist_logx.png"))
}

// Fit fits NB(r, p) to both count distributions and writes the log-x
// histogram and ECDF charts with the fitted overlays.
func (w *workflow) Fit(args FitArgs) error {
	files, err := w.findSCCFiles(args.Path, args.Pattern)
	if err != nil {
		return err
	}

	blocks, kernels, err := w.readCounts(files)
	if err != nil {
		return err
	}

	ui := w.newUI(false)
	ui.Printf("Files: %d\n", len(files))
	ui.DisplayCountSummary("blocks", Summarize(blocks))
	ui.DisplayCountSummary("clusters", Summarize(kernels))

	fitB := FitNegativeBinomial(blocks)
	fitC := FitNegativeBinomial(kernels)

	ui.Printf("\nNB fit (method of moments)\n")
	ui.DisplayNBFit("blocks", fitB)
	ui.DisplayNBFit("clusters", fitC)
	ui.Printf("(r is the size/shape parameter, p the success probability)\n")

	if err := w.fs.MkdirAll(args.OutDir); err != nil {
		return fmt.Errorf("creating %s: %w", args.OutDir, err)
	}

	out := func(name string) m.Path { return w.fs.JoinPath(string(args.OutDir), name) }

	pmfB := NBPMF(args.MaxX, fitB)
	pmfC := NBPMF(args.MaxX, fitC)

	if err := w.plots.LogHistNB(blocks, pmfB, nbOverlayMin, "Histogram (log x) + NB fit: #blocks",
		"#blocks", out("blocks_hist_logx_nb.png"), float64(args.MaxX), float64(args.MaxY)); err != nil {
		return err
	}

	if err := w.plots.LogHistNB(kernels, pmfC, nbOverlayMin, "Histogram (log x) + NB fit: #SCC kernels",
		"#kernels", out("clusters_hist_logx_nb.png"), float64(args.MaxX), float64(args.MaxY)); err != nil {
		return err
	}

	series := []adapter.Series{{Label: "blocks", Values: blocks}, {Label: "kernels", Values: kernels}}
	if err := w.plots.ECDF(series, [][]float64{pmfB, pmfC}, "ECDF (log x): blocks vs kernels + NB fit",
		"count", out("ecdf_logx_blocks_vs_clusters_nb.png"), float64(args.MaxX), true); err != nil {
		return err
	}

	ui.Printf("\nWrote plots to: %s\n", args.OutDir)

	return nil
}

// nbOverlayMin is the smallest k drawn from the fitted pmf: the fit is for
// the tail, and the head would dominate the log-x chart.
const nbOverlayMin = 20

// findSCCFiles resolves the artifact set: a file path is taken as-is, a
// directory is scanned for names matching pattern, sorted.
func (w *workflow) findSCCFiles(path m.Path, pattern string) ([]m.Path, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return []m.Path{path}, nil
	}

	names, err := w.fs.ListDir(path)
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		if ok {
			files = append(files, w.fs.JoinPath(string(path), name))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files matching %q under %s", pattern, path)
	}

	slog.Debug("matched artifact files", "count", len(files), "path", path, "pattern", pattern)

	return files, nil
}

// eachSCCRow streams parsed rows from the files in order, stopping after
// maxRows rows when maxRows is positive.
func (w *workflow) eachSCCRow(files []m.Path, maxRows int, fn func(m.SCCRowRef)) error {
	total := 0

	for _, file := range files {
		err := w.eachLine(file, func(line int, text string) bool {
			row, ok := ParseSCCRow(text)
			if !ok {
				return true
			}

			fn(m.SCCRowRef{File: file, Line: line, Row: row})

			total++

			return maxRows <= 0 || total < maxRows
		})
		if err != nil {
			return err
		}

		if maxRows > 0 && total >= maxRows {
			return nil
		}
	}

	return nil
}

// readCounts ingests just the count columns, tolerating both artifact
// generations: full rows and the older bare numeric layout.
func (w *workflow) readCounts(files []m.Path) (blocks, kernels []int, err error) {
	for _, file := range files {
		err := w.eachLine(file, func(_ int, text string) bool {
			b, k, ok := ParseCountRow(text)
			if ok {
				blocks = append(blocks, b)
				kernels = append(kernels, k)
			}

			return true
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return blocks, kernels, nil
}

func (w *workflow) eachLine(path m.Path, fn func(line int, text string) bool) error {
	rc, err := w.fs.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, scanBufInitial), scanBufMax)

	for line := 1; sc.Scan(); line++ {
		if !fn(line, sc.Text()) {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	return nil
}

func (w *workflow) writeCSV(path m.Path, header []string, records [][]string) error {
	wc, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() { _ = wc.Close() }()

	cw := csv.NewWriter(wc)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

var topCSVHeader = []string{"file", "row", "func", "blocks", "kernels", "max_cluster_size", "nontrivial_sccs"}

func topCSVRecords(rows []m.SCCTopRow) [][]string {
	records := make([][]string, len(rows))

	for i, r := range rows {
		records[i] = []string{
			r.File,
			strconv.Itoa(r.Line),
			r.Func,
			strconv.Itoa(r.Blocks),
			strconv.Itoa(r.Kernels),
			strconv.Itoa(r.MaxCluster),
			strconv.Itoa(r.Nontrivial),
		}
	}

	return records
}

var structureCSVHeader = []string{
	"file", "row_number", "func", "blocks_hdr", "kernels_hdr",
	"blocks_parsed", "scc_count_parsed", "nontriv_scc_count", "largest_scc",
	"nontriv_nodes", "frac_nodes_in_nontriv_scc", "is_all_singletons",
	"is_loopy", "is_one_nontriv", "one_nontriv_size", "num_singleton_scc",
	"num_size2_scc", "num_size3_scc", "merge_mass_parsed",
	"merge_mass_header", "hhi_sizes",
}

func structureCSVRecords(rows []m.StructureRow) [][]string {
	records := make([][]string, len(rows))

	for i, r := range rows {
		oneSize := ""
		if r.OneNontrivial {
			oneSize = strconv.Itoa(r.OneNontrivialSize)
		}

		singletons, size2, size3 := "", "", ""
		if r.Loopy {
			singletons = strconv.Itoa(r.Singletons)
			size2 = strconv.Itoa(r.Size2)
			size3 = strconv.Itoa(r.Size3)
		}

		records[i] = []string{
			r.File,
			strconv.Itoa(r.Line),
			r.Func,
			strconv.Itoa(r.BlocksHeader),
			strconv.Itoa(r.KernelsHeader),
			strconv.Itoa(r.BlocksParsed),
			strconv.Itoa(r.SCCCount),
			strconv.Itoa(r.Nontrivial),
			strconv.Itoa(r.Largest),
			strconv.Itoa(r.NontrivialNodes),
			formatFloatField(r.NontrivialFrac),
			strconv.FormatBool(r.AllSingletons),
			strconv.FormatBool(r.Loopy),
			strconv.FormatBool(r.OneNontrivial),
			oneSize,
			singletons,
			size2,
			size3,
			strconv.Itoa(r.MergeMass),
			strconv.Itoa(r.MergeMassHeader),
			formatFloatField(r.HHI),
		}
	}

	return records
}

// formatFloatField renders a float for CSV output, with NaN as an empty
// field.
func formatFloatField(f float64) string {
	if math.IsNaN(f) {
		return ""
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
