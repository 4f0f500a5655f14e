package model

import "math"

// SCCRow is one parsed row of an SCC structure CSV artifact: the strongly
// connected component partition the allocator dumps per function. Function
// names may themselves contain commas, so rows are decoded right-anchored.
type SCCRow struct {
	Func      string
	Blocks    int
	Kernels   int
	Structure string
}

// SCCRowRef ties a parsed row to its source file and 1-based line number.
type SCCRowRef struct {
	File Path
	Line int
	Row  SCCRow
}

// SCCTopRow is one record in the largest-cluster ranking.
type SCCTopRow struct {
	File       string
	Line       int
	Func       string
	Blocks     int
	Kernels    int
	MaxCluster int
	Nontrivial int
}

// CountSummary describes an integer sample. Percentiles interpolate
// linearly between order statistics; Var is the unbiased sample variance.
type CountSummary struct {
	N          int
	Min        int
	Max        int
	P10        float64
	Median     float64
	P90        float64
	Mean       float64
	Var        float64
	Dispersion float64
}

// NBFit is a negative binomial fit NB(r, p) obtained by method of moments.
type NBFit struct {
	Mu  float64
	Var float64
	R   float64
	P   float64
}

// Degenerate reports whether the sample was not over-dispersed and the fit
// fell back to the Poisson-edge marker (r = +Inf, p = 1).
func (f NBFit) Degenerate() bool {
	return math.IsInf(f.R, 1)
}

// StructureRow carries the per-CFG structure metrics derived from one SCC
// row. OneNontrivialSize is meaningful only when OneNontrivial is set, and
// the Singletons/Size2/Size3 counts only when Loopy is set.
type StructureRow struct {
	File              string
	Line              int
	Func              string
	BlocksHeader      int
	KernelsHeader     int
	BlocksParsed      int
	SCCCount          int
	Nontrivial        int
	Largest           int
	NontrivialNodes   int
	NontrivialFrac    float64
	AllSingletons     bool
	Loopy             bool
	OneNontrivial     bool
	OneNontrivialSize int
	Singletons        int
	Size2             int
	Size3             int
	MergeMass         int
	MergeMassHeader   int
	HHI               float64
}

// SizeSummary summarizes the single non-trivial SCC size distribution.
type SizeSummary struct {
	N      int
	Min    int
	Max    int
	Median float64
	P90    float64
	P99    float64
	Mean   float64
}

// Bucket is a (value, count) pair for small histogram printouts.
type Bucket struct {
	Value int
	Count int
}

// StructureSummary aggregates StructureRows for the printed report.
type StructureSummary struct {
	Files           int
	Rows            int
	Acyclic         int
	Loopy           int
	OneNontrivial   int
	LoopySCCs       int
	LoopySingletons int
	LoopySize2      int
	LoopySize3      int
	AvgSingletons   float64
	AvgSize2        float64
	AvgSize3        float64
	OneSize         SizeSummary
	Buckets         []Bucket
	MoreBuckets     bool
	FracMedian      float64
	FracP90         float64
	FracP99         float64
	FracMax         float64
}
