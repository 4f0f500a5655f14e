package domain

import (
	"slices"
	"testing"

	m "github.com/mouse-blink/regdump/internal/model"
)

func TestCompareDumps_EqualInputs(t *testing.T) {
	d := testDump("master", map[string]*m.Section{
		"main.f": testSection("", map[int]m.BlockState{
			0: testBlock(map[string]m.VarState{"v1": {Weight: 2, Regs: []string{"R0"}}}, "R3"),
		}),
	})

	rep := CompareDumps(d, d, DefaultMaxChangedVars)

	if !rep.Empty() {
		t.Errorf("report not empty: %+v", rep)
	}
	if rep.LeftLabel != "master" || rep.RightLabel != "master" {
		t.Errorf("labels = %q / %q", rep.LeftLabel, rep.RightLabel)
	}
}

func TestCompareDumps_SectionPartition(t *testing.T) {
	shared := testSection("", map[int]m.BlockState{
		0: testBlock(map[string]m.VarState{"v1": {Weight: 1}}),
	})

	left := testDump("master", map[string]*m.Section{
		"main.f": shared,
		"main.z": testSection("", nil),
		"main.a": testSection("", nil),
	})
	right := testDump("iterative", map[string]*m.Section{
		"main.f": shared,
		"main.m": testSection("", nil),
	})

	rep := CompareDumps(left, right, DefaultMaxChangedVars)

	if !slices.Equal(rep.SectionsOnlyInLeft, []string{"main.a", "main.z"}) {
		t.Errorf("only in left = %v", rep.SectionsOnlyInLeft)
	}
	if !slices.Equal(rep.SectionsOnlyInRight, []string{"main.m"}) {
		t.Errorf("only in right = %v", rep.SectionsOnlyInRight)
	}

	// main.f matches on both sides, so no function entry is emitted.
	if len(rep.Functions) != 0 {
		t.Errorf("functions = %+v, want none", rep.Functions)
	}
}

func TestCompareDumps_BlockPartition(t *testing.T) {
	same := testBlock(map[string]m.VarState{"v1": {Weight: 1, Regs: []string{"R0"}}})

	left := testDump("l", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{0: same, 2: same, 10: same}),
	})
	right := testDump("r", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{0: same, 3: same, 1: same}),
	})

	rep := CompareDumps(left, right, DefaultMaxChangedVars)

	if len(rep.Functions) != 1 {
		t.Fatalf("functions = %+v, want one entry", rep.Functions)
	}

	fd := rep.Functions[0]
	if fd.Name != "f" {
		t.Errorf("name = %q", fd.Name)
	}
	if !slices.Equal(fd.BlocksOnlyInLeft, []int{2, 10}) {
		t.Errorf("blocks only in left = %v", fd.BlocksOnlyInLeft)
	}
	if !slices.Equal(fd.BlocksOnlyInRight, []int{1, 3}) {
		t.Errorf("blocks only in right = %v", fd.BlocksOnlyInRight)
	}
	if len(fd.Blocks) != 0 {
		t.Errorf("block diffs = %+v, want none for the shared identical block", fd.Blocks)
	}
}

func TestCompareDumps_VarLevels(t *testing.T) {
	left := testDump("l", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{
			4: testBlock(map[string]m.VarState{
				"v1": {Weight: 2, Regs: []string{"R0"}},
				"v2": {Weight: 4, Regs: []string{"R0", "R1"}},
				"v3": {Weight: 1, Regs: []string{"R5"}},
				"v4": {Weight: 9},
			}),
		}),
	})
	right := testDump("r", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{
			4: testBlock(map[string]m.VarState{
				"v1": {Weight: 2, Regs: []string{"R0"}},
				"v2": {Weight: 5, Regs: []string{"R0"}},
				"v3": {Weight: 1, Regs: []string{"R5", "R5"}},
				"v5": {Weight: 9},
			}),
		}),
	})

	rep := CompareDumps(left, right, DefaultMaxChangedVars)

	if len(rep.Functions) != 1 || len(rep.Functions[0].Blocks) != 1 {
		t.Fatalf("report = %+v, want one function with one block diff", rep)
	}

	bd := rep.Functions[0].Blocks[0]
	if bd.ID != 4 {
		t.Errorf("block id = %d", bd.ID)
	}
	if !slices.Equal(bd.VarsOnlyInLeft, []string{"v4"}) {
		t.Errorf("vars only in left = %v", bd.VarsOnlyInLeft)
	}
	if !slices.Equal(bd.VarsOnlyInRight, []string{"v5"}) {
		t.Errorf("vars only in right = %v", bd.VarsOnlyInRight)
	}
	if !slices.Equal(changedNames(bd.Changed), []string{"v2", "v3"}) {
		t.Fatalf("changed = %+v, want v2 and v3", bd.Changed)
	}

	v2 := bd.Changed[0]
	if v2.Left.Weight != 4 || v2.Right.Weight != 5 {
		t.Errorf("v2 change = %+v", v2)
	}

	// A register multiset difference alone is a change even at equal weight.
	v3 := bd.Changed[1]
	if v3.Left.Weight != 1 || v3.Right.Weight != 1 {
		t.Errorf("v3 change = %+v", v3)
	}
	if slices.Equal(v3.Left.Regs, v3.Right.Regs) {
		t.Errorf("v3 regs compare equal: %+v", v3)
	}
}

func TestCompareDumps_ChangedVarsCap(t *testing.T) {
	left := testDump("l", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{
			0: testBlock(map[string]m.VarState{
				"v1": {Weight: 1},
				"v2": {Weight: 1},
				"v3": {Weight: 1},
			}),
		}),
	})
	right := testDump("r", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{
			0: testBlock(map[string]m.VarState{
				"v1": {Weight: 2},
				"v2": {Weight: 2},
				"v3": {Weight: 2},
			}),
		}),
	})

	rep := CompareDumps(left, right, 2)

	bd := rep.Functions[0].Blocks[0]
	if !slices.Equal(changedNames(bd.Changed), []string{"v1", "v2"}) {
		t.Errorf("changed = %+v, want the first two names", bd.Changed)
	}
	if bd.ElidedChanged != 1 {
		t.Errorf("elided = %d, want 1", bd.ElidedChanged)
	}
}

func TestCompareDumps_AvoidChange(t *testing.T) {
	t.Run("differing avoid sets flag the block", func(t *testing.T) {
		v := map[string]m.VarState{"v1": {Weight: 1}}

		left := testDump("l", map[string]*m.Section{
			"f": testSection("", map[int]m.BlockState{0: testBlock(v, "R0")}),
		})
		right := testDump("r", map[string]*m.Section{
			"f": testSection("", map[int]m.BlockState{0: testBlock(v, "R0", "R1")}),
		})

		rep := CompareDumps(left, right, DefaultMaxChangedVars)

		bd := rep.Functions[0].Blocks[0]
		if !bd.AvoidChanged {
			t.Fatalf("avoid change not flagged: %+v", bd)
		}
		if !slices.Equal(bd.LeftAvoid, []string{"R0"}) || !slices.Equal(bd.RightAvoid, []string{"R0", "R1"}) {
			t.Errorf("avoid sides = %v / %v", bd.LeftAvoid, bd.RightAvoid)
		}
	})

	t.Run("matching avoid sets leave the block silent", func(t *testing.T) {
		v := map[string]m.VarState{"v1": {Weight: 1}}

		left := testDump("l", map[string]*m.Section{
			"f": testSection("", map[int]m.BlockState{0: testBlock(v, "R0")}),
		})
		right := testDump("r", map[string]*m.Section{
			"f": testSection("", map[int]m.BlockState{0: testBlock(v, "R0")}),
		})

		rep := CompareDumps(left, right, DefaultMaxChangedVars)

		if !rep.Empty() {
			t.Errorf("report = %+v, want empty", rep)
		}
	})
}

func TestCompareDumps_HeaderLabel(t *testing.T) {
	v := map[string]m.VarState{"v1": {Weight: 1}}

	left := testDump("master", map[string]*m.Section{
		"f": testSection("rebuild", map[int]m.BlockState{0: testBlock(v), 1: testBlock(v)}),
	})
	right := testDump("iterative", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{0: testBlock(v)}),
	})

	rep := CompareDumps(left, right, DefaultMaxChangedVars)

	if got := rep.Functions[0].HeaderLabel; got != "rebuild - iterative" {
		t.Errorf("header label = %q", got)
	}
}

func TestCompareDumps_MirrorSymmetry(t *testing.T) {
	left := testDump("l", map[string]*m.Section{
		"f":    testSection("", map[int]m.BlockState{0: testBlock(map[string]m.VarState{"v1": {Weight: 1}})}),
		"only": testSection("", nil),
	})
	right := testDump("r", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{0: testBlock(map[string]m.VarState{"v1": {Weight: 2}})}),
	})

	fwd := CompareDumps(left, right, DefaultMaxChangedVars)
	rev := CompareDumps(right, left, DefaultMaxChangedVars)

	if !slices.Equal(fwd.SectionsOnlyInLeft, rev.SectionsOnlyInRight) {
		t.Errorf("section sides do not mirror: %v vs %v", fwd.SectionsOnlyInLeft, rev.SectionsOnlyInRight)
	}

	fc, rc := fwd.Functions[0].Blocks[0].Changed[0], rev.Functions[0].Blocks[0].Changed[0]
	if !fc.Left.Equal(rc.Right) || !fc.Right.Equal(rc.Left) {
		t.Errorf("var change does not mirror: %+v vs %+v", fc, rc)
	}
}

func TestCompareDumps_EmptyRegsDistinctFromMissing(t *testing.T) {
	left := testDump("l", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{
			0: testBlock(map[string]m.VarState{"v1": {Weight: 3, Regs: nil}}),
		}),
	})
	right := testDump("r", map[string]*m.Section{
		"f": testSection("", map[int]m.BlockState{
			0: testBlock(map[string]m.VarState{}),
		}),
	})

	rep := CompareDumps(left, right, DefaultMaxChangedVars)

	bd := rep.Functions[0].Blocks[0]
	if !slices.Equal(bd.VarsOnlyInLeft, []string{"v1"}) {
		t.Errorf("vars only in left = %v, want v1 treated as present", bd.VarsOnlyInLeft)
	}
	if len(bd.Changed) != 0 {
		t.Errorf("changed = %+v, want none", bd.Changed)
	}
}

func changedNames(changes []m.VarChange) []string {
	var names []string

	for _, c := range changes {
		names = append(names, c.Name)
	}

	return names
}

func testDump(label string, sections map[string]*m.Section) *m.Dump {
	if sections == nil {
		sections = map[string]*m.Section{}
	}

	return &m.Dump{Path: m.Path("debug_" + label + ".txt"), Label: label, Sections: sections}
}

func testSection(desc string, blocks map[int]m.BlockState) *m.Section {
	if blocks == nil {
		blocks = map[int]m.BlockState{}
	}

	return &m.Section{Desc: desc, HeaderLine: "final: live values at end of each block: f", Blocks: blocks}
}

func testBlock(vars map[string]m.VarState, avoid ...string) m.BlockState {
	b := m.BlockState{Vars: vars}
	if len(avoid) > 0 {
		b.Avoid = avoid
	}

	return b
}
