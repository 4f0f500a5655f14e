package domain

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	m "github.com/mouse-blink/regdump/internal/model"
)

func TestRenderReport_Empty(t *testing.T) {
	got := RenderReport(m.Report{LeftLabel: "master", RightLabel: "iterative"})

	if !slices.Equal(got, []string{NoDifferences}) {
		t.Errorf("lines = %q", got)
	}
}

func TestRenderReport_SectionsOnly(t *testing.T) {
	rep := m.Report{
		LeftLabel:           "master",
		RightLabel:          "iterative",
		SectionsOnlyInLeft:  []string{"main.a", "main.b"},
		SectionsOnlyInRight: []string{"main.c"},
	}

	want := []string{
		"Sections only in master:",
		"  - main.a",
		"  - main.b",
		"",
		"Sections only in iterative:",
		"  - main.c",
		"",
	}

	assertLines(t, RenderReport(rep), want)
}

func TestRenderReport_FullLayout(t *testing.T) {
	rep := m.Report{
		LeftLabel:           "master",
		RightLabel:          "iterative",
		SectionsOnlyInLeft:  []string{"main.gone"},
		SectionsOnlyInRight: []string{"main.fresh"},
		Functions: []m.FunctionDiff{{
			Name:              "main.compute",
			HeaderLabel:       "master - rebuild",
			BlocksOnlyInLeft:  []int{2},
			BlocksOnlyInRight: []int{3, 4},
			Blocks: []m.BlockDiff{{
				ID:              1,
				VarsOnlyInLeft:  []string{"v9"},
				VarsOnlyInRight: []string{"v12", "v15"},
				Changed: []m.VarChange{{
					Name:  "v7",
					Left:  m.VarState{Weight: 4, Regs: []string{"R1", "R2"}},
					Right: m.VarState{Weight: 5, Regs: []string{"R1"}},
				}},
				ElidedChanged: 2,
				AvoidChanged:  true,
				LeftAvoid:     []string{"R0", "R3"},
				RightAvoid:    []string{"R0"},
			}},
		}},
	}

	want := []string{
		"Sections only in master:",
		"  - main.gone",
		"",
		"Sections only in iterative:",
		"  - main.fresh",
		"",
		"=== main.compute (master - rebuild) ===",
		"  blocks only in master: b2",
		"  blocks only in iterative: b3, b4",
		"",
		"  == b1 ==",
		"    vars only in master: v9",
		"    vars only in iterative: v12, v15",
		"    v7: master=(4,[R1,R2]) iterative=(5,[R1])",
		"    ... 2 more changed vars",
		"    avoid: master=[R0,R3] iterative=[R0]",
		"",
	}

	assertLines(t, RenderReport(rep), want)
}

func TestRenderFunctionDiff_BlockListsOnly(t *testing.T) {
	rep := m.Report{LeftLabel: "l", RightLabel: "r"}
	fd := m.FunctionDiff{
		Name:             "f",
		HeaderLabel:      "l - r",
		BlocksOnlyInLeft: []int{0, 7},
	}

	want := []string{
		"=== f (l - r) ===",
		"  blocks only in l: b0, b7",
	}

	assertLines(t, RenderFunctionDiff(rep, fd), want)
}

func TestRenderReport_AvoidCleared(t *testing.T) {
	rep := m.Report{
		LeftLabel:  "l",
		RightLabel: "r",
		Functions: []m.FunctionDiff{{
			Name:        "f",
			HeaderLabel: "l - r",
			Blocks: []m.BlockDiff{{
				ID:           0,
				AvoidChanged: true,
				LeftAvoid:    []string{"R2"},
			}},
		}},
	}

	want := []string{
		"=== f (l - r) ===",
		"",
		"  == b0 ==",
		"    avoid: l=[R2] r=[]",
		"",
	}

	assertLines(t, RenderReport(rep), want)
}

func TestFormatVarState(t *testing.T) {
	if got := formatVarState(m.VarState{Weight: 4, Regs: []string{"R0", "R1"}}); got != "(4,[R0,R1])" {
		t.Errorf("got %q", got)
	}
	if got := formatVarState(m.VarState{Weight: 9}); got != "(9,[])" {
		t.Errorf("got %q", got)
	}
}

func TestJoinBlockIDs(t *testing.T) {
	if got := joinBlockIDs([]int{1, 2, 10}); got != "b1, b2, b10" {
		t.Errorf("got %q", got)
	}
}

func TestElideVarNames(t *testing.T) {
	t.Run("short lists spell out every name", func(t *testing.T) {
		names := varNames(onlyVarsCap)

		if got, want := elideVarNames(names), strings.Join(names, ", "); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("long lists elide past the cap", func(t *testing.T) {
		names := varNames(onlyVarsCap + 3)

		want := strings.Join(names[:onlyVarsCap], ", ") + " ... 3 more"
		if got := elideVarNames(names); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func varNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}

	return names
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()

	if !slices.Equal(got, want) {
		t.Errorf("rendered lines differ\ngot:\n%s\nwant:\n%s",
			strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
