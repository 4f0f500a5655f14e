package domain

import (
	"math"
	"slices"
	"testing"

	m "github.com/mouse-blink/regdump/internal/model"
)

func TestParseSCCRow(t *testing.T) {
	t.Run("plain row", func(t *testing.T) {
		row, ok := ParseSCCRow("main.compute, 12, 9, [[b1 b2] [b3]]")
		if !ok {
			t.Fatal("row rejected")
		}

		want := m.SCCRow{Func: "main.compute", Blocks: 12, Kernels: 9, Structure: "[[b1 b2] [b3]]"}
		if row != want {
			t.Errorf("row = %+v, want %+v", row, want)
		}
	})

	t.Run("comma inside function name", func(t *testing.T) {
		row, ok := ParseSCCRow("wrap(x, y), 5, 5, []")
		if !ok {
			t.Fatal("row rejected")
		}
		if row.Func != "wrap(x, y)" || row.Blocks != 5 || row.Kernels != 5 || row.Structure != "[]" {
			t.Errorf("row = %+v", row)
		}
	})

	t.Run("no spaces after commas", func(t *testing.T) {
		row, ok := ParseSCCRow("f,3,2,[[b1 b2]]")
		if !ok {
			t.Fatal("row rejected")
		}
		if row.Func != "f" || row.Blocks != 3 || row.Kernels != 2 {
			t.Errorf("row = %+v", row)
		}
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		row, ok := ParseSCCRow("  f, 1, 1, []  ")
		if !ok {
			t.Fatal("row rejected")
		}
		if row.Func != "f" || row.Structure != "[]" {
			t.Errorf("row = %+v", row)
		}
	})

	t.Run("empty function name", func(t *testing.T) {
		row, ok := ParseSCCRow(", 3, 2, []")
		if !ok {
			t.Fatal("row rejected")
		}
		if row.Func != "" || row.Blocks != 3 || row.Kernels != 2 {
			t.Errorf("row = %+v", row)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		for _, line := range []string{
			"",
			"   ",
			"func,blocks,kernels,structure",
			"regalloc: not a data row",
			"f, 3, 2, no brackets",
			"f, x, 2, []",
			"f, 3, 2",
			"f, 3, 2, [[b1]",
		} {
			if _, ok := ParseSCCRow(line); ok {
				t.Errorf("accepted %q", line)
			}
		}
	})
}

func TestParseCountRow(t *testing.T) {
	t.Run("full structure row", func(t *testing.T) {
		b, k, ok := ParseCountRow("main.f, 12, 9, [[b1 b2]]")
		if !ok || b != 12 || k != 9 {
			t.Errorf("got %d, %d, %v", b, k, ok)
		}
	})

	t.Run("bare count pair", func(t *testing.T) {
		b, k, ok := ParseCountRow("12, 7")
		if !ok || b != 12 || k != 7 {
			t.Errorf("got %d, %d, %v", b, k, ok)
		}
	})

	t.Run("count pair with trailing fields", func(t *testing.T) {
		b, k, ok := ParseCountRow("4,3,whatever,else")
		if !ok || b != 4 || k != 3 {
			t.Errorf("got %d, %d, %v", b, k, ok)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		for _, line := range []string{"", "blocks,kernels", "12", "a, 7"} {
			if _, _, ok := ParseCountRow(line); ok {
				t.Errorf("accepted %q", line)
			}
		}
	})
}

func TestStructureSizes(t *testing.T) {
	tests := []struct {
		structure string
		want      []int
	}{
		{"[[b1 b2 b3] [b7 b8] [b11]]", []int{3, 2, 1}},
		{"[]", nil},
		{"[ ]", nil},
		{"b1 b2", nil},
		{"[x y]", nil},
		{"[a[b5]c]", []int{1}},
		{"[bb12]", []int{1}},
		{"[[b1][b2 b3]]", []int{1, 2}},
		{"[b p4 b9x b10]", []int{2}},
	}

	for _, tt := range tests {
		if got := StructureSizes(tt.structure); !slices.Equal(got, tt.want) {
			t.Errorf("StructureSizes(%q) = %v, want %v", tt.structure, got, tt.want)
		}
	}
}

func TestTopMetrics(t *testing.T) {
	t.Run("empty structure counts one block per component", func(t *testing.T) {
		maxC, nt := TopMetrics(m.SCCRow{Blocks: 7, Structure: "[]"})
		if maxC != 1 || nt != 0 {
			t.Errorf("got %d, %d", maxC, nt)
		}
	})

	t.Run("empty structure with no blocks", func(t *testing.T) {
		maxC, nt := TopMetrics(m.SCCRow{Blocks: 0, Structure: "[]"})
		if maxC != 0 || nt != 0 {
			t.Errorf("got %d, %d", maxC, nt)
		}
	})

	t.Run("mixed component sizes", func(t *testing.T) {
		maxC, nt := TopMetrics(m.SCCRow{Blocks: 6, Structure: "[[b1 b2] [b3] [b4 b5 b6]]"})
		if maxC != 3 || nt != 2 {
			t.Errorf("got %d, %d", maxC, nt)
		}
	})
}

func TestSortTopRows(t *testing.T) {
	rows := []m.SCCTopRow{
		{Func: "a", MaxCluster: 5, Blocks: 10},
		{Func: "b", MaxCluster: 5, Blocks: 20},
		{Func: "c", MaxCluster: 9, Blocks: 1},
		{Func: "d", MaxCluster: 5, Blocks: 10},
	}

	SortTopRows(rows)

	var order []string
	for _, r := range rows {
		order = append(order, r.Func)
	}

	// Largest cluster first, block count breaks ties, equal rows keep their
	// original order.
	if !slices.Equal(order, []string{"c", "b", "a", "d"}) {
		t.Errorf("order = %v", order)
	}
}

func TestBuildStructureRow(t *testing.T) {
	ref := func(row m.SCCRow) m.SCCRowRef {
		return m.SCCRowRef{File: "out/sample_scc.csv", Line: 3, Row: row}
	}

	t.Run("acyclic", func(t *testing.T) {
		out, ok := BuildStructureRow(ref(m.SCCRow{Func: "f", Blocks: 5, Kernels: 5, Structure: "[]"}))
		if !ok {
			t.Fatal("row dropped")
		}

		if out.File != "sample_scc.csv" || out.Line != 3 {
			t.Errorf("source ref = %q line %d", out.File, out.Line)
		}
		if out.BlocksParsed != 5 || out.SCCCount != 5 || out.Largest != 1 {
			t.Errorf("row = %+v", out)
		}
		if !out.AllSingletons || out.Loopy {
			t.Errorf("classification = %+v", out)
		}
		if out.MergeMassHeader != 0 {
			t.Errorf("merge mass header = %d", out.MergeMassHeader)
		}
		if !near(out.HHI, 0.2) {
			t.Errorf("hhi = %v", out.HHI)
		}
	})

	t.Run("acyclic with spaces inside brackets", func(t *testing.T) {
		out, ok := BuildStructureRow(ref(m.SCCRow{Func: "f", Blocks: 3, Kernels: 3, Structure: "[ ]"}))
		if !ok {
			t.Fatal("row dropped")
		}
		if out.SCCCount != 3 || !out.AllSingletons {
			t.Errorf("row = %+v", out)
		}
	})

	t.Run("acyclic with zero blocks", func(t *testing.T) {
		out, ok := BuildStructureRow(ref(m.SCCRow{Func: "f", Structure: ""}))
		if !ok {
			t.Fatal("row dropped")
		}
		if out.SCCCount != 0 || out.Largest != 0 || !math.IsNaN(out.HHI) {
			t.Errorf("row = %+v", out)
		}
	})

	t.Run("loopy", func(t *testing.T) {
		out, ok := BuildStructureRow(ref(m.SCCRow{
			Func: "f", Blocks: 12, Kernels: 9, Structure: "[[b1 b2 b3] [b7 b8]]",
		}))
		if !ok {
			t.Fatal("row dropped")
		}

		if out.BlocksParsed != 5 || out.SCCCount != 2 || out.Largest != 3 {
			t.Errorf("row = %+v", out)
		}
		if out.Nontrivial != 2 || out.NontrivialNodes != 5 || !near(out.NontrivialFrac, 1) {
			t.Errorf("nontrivial fields = %+v", out)
		}
		if out.MergeMass != 3 || out.MergeMassHeader != 3 {
			t.Errorf("merge mass = %d header %d", out.MergeMass, out.MergeMassHeader)
		}
		if out.Singletons != 0 || out.Size2 != 1 || out.Size3 != 1 {
			t.Errorf("size counts = %+v", out)
		}
		if !out.Loopy || out.AllSingletons || out.OneNontrivial || out.OneNontrivialSize != 0 {
			t.Errorf("classification = %+v", out)
		}
		if !near(out.HHI, 0.52) {
			t.Errorf("hhi = %v", out.HHI)
		}
	})

	t.Run("single nontrivial component", func(t *testing.T) {
		out, ok := BuildStructureRow(ref(m.SCCRow{
			Func: "f", Blocks: 3, Kernels: 2, Structure: "[[b1 b2] [b3]]",
		}))
		if !ok {
			t.Fatal("row dropped")
		}

		if !out.OneNontrivial || out.OneNontrivialSize != 2 {
			t.Errorf("row = %+v", out)
		}
		if out.Singletons != 1 || out.Size2 != 1 {
			t.Errorf("size counts = %+v", out)
		}
		if !near(out.NontrivialFrac, 2.0/3.0) {
			t.Errorf("frac = %v", out.NontrivialFrac)
		}
	})

	t.Run("undecodable structure dropped", func(t *testing.T) {
		if _, ok := BuildStructureRow(ref(m.SCCRow{Func: "f", Blocks: 2, Structure: "[x]"})); ok {
			t.Error("expected drop")
		}
	})
}

func TestAggregateStructure(t *testing.T) {
	rows := structureRows(t,
		m.SCCRow{Func: "a", Blocks: 4, Kernels: 4, Structure: "[]"},
		m.SCCRow{Func: "b", Blocks: 3, Kernels: 2, Structure: "[[b1 b2] [b3]]"},
		m.SCCRow{Func: "c", Blocks: 12, Kernels: 9, Structure: "[[b1 b2 b3] [b7 b8]]"},
	)

	sum := AggregateStructure(rows, 2)

	if sum.Files != 2 || sum.Rows != 3 {
		t.Errorf("counts = %+v", sum)
	}
	if sum.Acyclic != 1 || sum.Loopy != 2 || sum.OneNontrivial != 1 {
		t.Errorf("classes = %+v", sum)
	}
	if sum.LoopySCCs != 4 || sum.LoopySingletons != 1 || sum.LoopySize2 != 2 || sum.LoopySize3 != 1 {
		t.Errorf("loopy totals = %+v", sum)
	}
	if !near(sum.AvgSingletons, 0.5) || !near(sum.AvgSize2, 1) || !near(sum.AvgSize3, 0.5) {
		t.Errorf("loopy averages = %+v", sum)
	}
	if sum.OneSize.N != 1 || sum.OneSize.Min != 2 || sum.OneSize.Max != 2 || !near(sum.OneSize.Mean, 2) {
		t.Errorf("one-size summary = %+v", sum.OneSize)
	}

	wantBuckets := []m.Bucket{{Value: 0, Count: 1}, {Value: 1, Count: 1}, {Value: 2, Count: 1}}
	if !slices.Equal(sum.Buckets, wantBuckets) || sum.MoreBuckets {
		t.Errorf("buckets = %+v more=%v", sum.Buckets, sum.MoreBuckets)
	}

	if !near(sum.FracMedian, 2.0/3.0) || !near(sum.FracMax, 1) {
		t.Errorf("frac percentiles = %+v", sum)
	}
}

func TestAggregateStructure_Empty(t *testing.T) {
	sum := AggregateStructure(nil, 0)

	if sum.Rows != 0 || sum.Loopy != 0 || sum.OneSize.N != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if len(sum.Buckets) != 0 || sum.MoreBuckets {
		t.Errorf("buckets = %+v", sum.Buckets)
	}
}

func structureRows(t *testing.T, rows ...m.SCCRow) []m.StructureRow {
	t.Helper()

	out := make([]m.StructureRow, 0, len(rows))

	for i, row := range rows {
		sr, ok := BuildStructureRow(m.SCCRowRef{File: "sample_scc.csv", Line: i + 1, Row: row})
		if !ok {
			t.Fatalf("row %d dropped: %+v", i, row)
		}

		out = append(out, sr)
	}

	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}
