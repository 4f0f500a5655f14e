package domain

import (
	"math"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/regdump/internal/model"
)

// ParseSCCRow decodes one line of an SCC structure CSV. Rows look like
//
//	func_name, blocks, kernels, [[b1] [b6 b4 b10]]
//
// but function names may contain commas themselves, so the split is
// anchored from the right: the rightmost comma whose suffix scans as
// ", blocks, kernels, [structure]" wins. Lines that do not fit are not an
// error; they are skipped by callers.
func ParseSCCRow(line string) (m.SCCRow, bool) {
	s := strings.TrimSpace(line)
	if s == "" || !strings.HasSuffix(s, "]") {
		return m.SCCRow{}, false
	}

	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != ',' {
			continue
		}

		row, ok := scanRowSuffix(s, i)
		if ok {
			return row, true
		}
	}

	return m.SCCRow{}, false
}

func scanRowSuffix(s string, cut int) (m.SCCRow, bool) {
	blocks, rest, ok := scanCountField(s[cut+1:])
	if !ok {
		return m.SCCRow{}, false
	}

	kernels, rest, ok := scanCountField(rest)
	if !ok {
		return m.SCCRow{}, false
	}

	structure := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(structure, "[") {
		return m.SCCRow{}, false
	}

	return m.SCCRow{
		Func:      strings.TrimSpace(s[:cut]),
		Blocks:    blocks,
		Kernels:   kernels,
		Structure: structure,
	}, true
}

// scanCountField scans "<ws><digits><ws>," and returns the value plus the
// remainder after the comma.
func scanCountField(s string) (int, string, bool) {
	s = strings.TrimLeft(s, " \t")

	n := digitRun(s)
	if n == 0 {
		return 0, "", false
	}

	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, "", false
	}

	rest := strings.TrimLeft(s[n:], " \t")
	if !strings.HasPrefix(rest, ",") {
		return 0, "", false
	}

	return v, rest[1:], true
}

// ParseCountRow extracts just the blocks/kernels pair from a CSV line. Full
// rows decode right-anchored; bare "blocks,kernels" numeric rows from the
// older artifact format are accepted too. Anything else is skipped.
func ParseCountRow(line string) (blocks, kernels int, ok bool) {
	if row, ok := ParseSCCRow(line); ok {
		return row.Blocks, row.Kernels, true
	}

	parts := strings.SplitN(line, ",", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}

	b, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}

	k, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}

	return b, k, true
}

// StructureSizes decodes a structure field into its component sizes. Only
// innermost bracket groups count, each contributing the number of "b<N>"
// tokens it holds; groups without any are dropped.
func StructureSizes(structure string) []int {
	var sizes []int

	open := -1

	for i := 0; i < len(structure); i++ {
		switch structure[i] {
		case '[':
			open = i
		case ']':
			if open < 0 {
				continue
			}

			if n := countBlockTokens(structure[open+1 : i]); n > 0 {
				sizes = append(sizes, n)
			}

			open = -1
		}
	}

	return sizes
}

func countBlockTokens(group string) int {
	count := 0

	for i := 0; i < len(group); {
		if group[i] != 'b' {
			i++

			continue
		}

		n := digitRun(group[i+1:])
		if n == 0 {
			i++

			continue
		}

		count++
		i += 1 + n
	}

	return count
}

// TopMetrics derives the ranking metrics for one row: the largest component
// size and the number of non-trivial (size > 1) components. An empty
// structure means every block is its own component, so the largest cluster
// of any non-empty CFG is 1.
func TopMetrics(row m.SCCRow) (maxCluster, nontrivial int) {
	sizes := StructureSizes(row.Structure)
	if len(sizes) == 0 {
		if row.Blocks > 0 {
			return 1, 0
		}

		return 0, 0
	}

	for _, s := range sizes {
		if s > 1 {
			nontrivial++
		}
	}

	return slices.Max(sizes), nontrivial
}

// SortTopRows orders ranking rows by largest cluster, then block count,
// both descending. The sort is stable so ties keep file order.
func SortTopRows(rows []m.SCCTopRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MaxCluster != rows[j].MaxCluster {
			return rows[i].MaxCluster > rows[j].MaxCluster
		}

		return rows[i].Blocks > rows[j].Blocks
	})
}

// BuildStructureRow computes the per-CFG structure metrics for one parsed
// row. An empty structure field describes an acyclic CFG where every block
// is a singleton component. A structure field that is neither empty nor
// decodable yields no row.
func BuildStructureRow(ref m.SCCRowRef) (m.StructureRow, bool) {
	row := ref.Row

	out := m.StructureRow{
		File:            filepath.Base(string(ref.File)),
		Line:            ref.Line,
		Func:            row.Func,
		BlocksHeader:    row.Blocks,
		KernelsHeader:   row.Kernels,
		MergeMassHeader: row.Blocks - row.Kernels,
	}

	stripped := strings.ReplaceAll(row.Structure, " ", "")
	if stripped == "" || stripped == "[]" {
		out.BlocksParsed = row.Blocks
		out.SCCCount = row.Blocks
		out.AllSingletons = true
		out.HHI = math.NaN()

		if row.Blocks > 0 {
			out.Largest = 1
			out.HHI = 1 / float64(row.Blocks)
		}

		return out, true
	}

	sizes := StructureSizes(row.Structure)
	if len(sizes) == 0 {
		return m.StructureRow{}, false
	}

	total := 0
	for _, s := range sizes {
		total += s

		out.MergeMass += s - 1
		out.Largest = max(out.Largest, s)

		switch {
		case s == 1:
			out.Singletons++
		case s == 2:
			out.Size2++
		case s == 3:
			out.Size3++
		}

		if s > 1 {
			out.Nontrivial++
			out.NontrivialNodes += s

			if out.Nontrivial == 1 {
				out.OneNontrivialSize = s
			}
		}
	}

	out.BlocksParsed = total
	out.SCCCount = len(sizes)
	out.AllSingletons = out.Nontrivial == 0
	out.Loopy = out.Nontrivial > 0
	out.OneNontrivial = out.Nontrivial == 1

	if !out.OneNontrivial {
		out.OneNontrivialSize = 0
	}

	out.HHI = math.NaN()

	if total > 0 {
		out.NontrivialFrac = float64(out.NontrivialNodes) / float64(total)

		hhi := 0.0
		for _, s := range sizes {
			share := float64(s) / float64(total)
			hhi += share * share
		}

		out.HHI = hhi
	}

	return out, true
}

// AggregateStructure folds per-CFG rows into the corpus-level summary.
func AggregateStructure(rows []m.StructureRow, files int) m.StructureSummary {
	sum := m.StructureSummary{Files: files, Rows: len(rows)}

	var oneSizes []int

	var fracs []float64

	buckets := make(map[int]int)

	for _, r := range rows {
		buckets[r.Nontrivial]++
		fracs = append(fracs, r.NontrivialFrac)

		if r.AllSingletons {
			sum.Acyclic++
		}

		if r.Loopy {
			sum.Loopy++
			sum.LoopySCCs += r.SCCCount
			sum.LoopySingletons += r.Singletons
			sum.LoopySize2 += r.Size2
			sum.LoopySize3 += r.Size3
		}

		if r.OneNontrivial {
			sum.OneNontrivial++
			oneSizes = append(oneSizes, r.OneNontrivialSize)
		}
	}

	if sum.Loopy > 0 {
		sum.AvgSingletons = float64(sum.LoopySingletons) / float64(sum.Loopy)
		sum.AvgSize2 = float64(sum.LoopySize2) / float64(sum.Loopy)
		sum.AvgSize3 = float64(sum.LoopySize3) / float64(sum.Loopy)
	}

	sum.OneSize = summarizeSizes(oneSizes)
	sum.Buckets, sum.MoreBuckets = topBuckets(buckets, 10)

	if len(fracs) > 0 {
		sort.Float64s(fracs)
		sum.FracMedian = percentile(fracs, 50)
		sum.FracP90 = percentile(fracs, 90)
		sum.FracP99 = percentile(fracs, 99)
		sum.FracMax = fracs[len(fracs)-1]
	}

	return sum
}

func summarizeSizes(sizes []int) m.SizeSummary {
	if len(sizes) == 0 {
		return m.SizeSummary{}
	}

	fs := toFloats(sizes)
	sort.Float64s(fs)

	total := 0.0
	for _, f := range fs {
		total += f
	}

	return m.SizeSummary{
		N:      len(sizes),
		Min:    int(fs[0]),
		Max:    int(fs[len(fs)-1]),
		Median: percentile(fs, 50),
		P90:    percentile(fs, 90),
		P99:    percentile(fs, 99),
		Mean:   total / float64(len(fs)),
	}
}

// topBuckets returns the lowest limit bucket values in ascending order and
// whether more buckets exist beyond them.
func topBuckets(counts map[int]int, limit int) ([]m.Bucket, bool) {
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}

	slices.Sort(values)

	more := len(values) > limit
	if more {
		values = values[:limit]
	}

	out := make([]m.Bucket, len(values))
	for i, v := range values {
		out[i] = m.Bucket{Value: v, Count: counts[v]}
	}

	return out, more
}
