package domain

import (
	"maps"
	"slices"

	m "github.com/mouse-blink/regdump/internal/model"
)

// DefaultMaxChangedVars caps the changed-variable entries recorded per
// block. The overflow is counted, never dropped silently.
const DefaultMaxChangedVars = 25

// CompareDumps computes the three-level symmetric difference between two
// parsed dumps: function sections, then block ids within shared functions,
// then per-variable state within shared blocks. Functions with no nested
// difference are omitted, and every slice in the result is sorted, so equal
// inputs produce a report that is Empty and identical inputs in either
// order produce mirror-image reports.
func CompareDumps(left, right *m.Dump, maxChanged int) m.Report {
	rep := m.Report{LeftLabel: left.Label, RightLabel: right.Label}

	var common []string

	for _, fn := range slices.Sorted(maps.Keys(left.Sections)) {
		if _, ok := right.Sections[fn]; ok {
			common = append(common, fn)
		} else {
			rep.SectionsOnlyInLeft = append(rep.SectionsOnlyInLeft, fn)
		}
	}

	for _, fn := range slices.Sorted(maps.Keys(right.Sections)) {
		if _, ok := left.Sections[fn]; !ok {
			rep.SectionsOnlyInRight = append(rep.SectionsOnlyInRight, fn)
		}
	}

	for _, fn := range common {
		fd, found := compareFunction(fn, left, right, maxChanged)
		if found {
			rep.Functions = append(rep.Functions, fd)
		}
	}

	return rep
}

// compareFunction diffs one function present in both dumps. The reported
// header label pairs the two sides' section labels, each preferring the
// section's own annotation over the dump's file label.
func compareFunction(fn string, left, right *m.Dump, maxChanged int) (m.FunctionDiff, bool) {
	ls, rs := left.Sections[fn], right.Sections[fn]

	fd := m.FunctionDiff{
		Name:        fn,
		HeaderLabel: sectionLabel(left.Label, ls.Desc) + " - " + sectionLabel(right.Label, rs.Desc),
	}

	var common []int

	for _, id := range slices.Sorted(maps.Keys(ls.Blocks)) {
		if _, ok := rs.Blocks[id]; ok {
			common = append(common, id)
		} else {
			fd.BlocksOnlyInLeft = append(fd.BlocksOnlyInLeft, id)
		}
	}

	for _, id := range slices.Sorted(maps.Keys(rs.Blocks)) {
		if _, ok := ls.Blocks[id]; !ok {
			fd.BlocksOnlyInRight = append(fd.BlocksOnlyInRight, id)
		}
	}

	for _, id := range common {
		bd, found := compareBlock(id, ls.Blocks[id], rs.Blocks[id], maxChanged)
		if found {
			fd.Blocks = append(fd.Blocks, bd)
		}
	}

	found := len(fd.BlocksOnlyInLeft) > 0 || len(fd.BlocksOnlyInRight) > 0 || len(fd.Blocks) > 0

	return fd, found
}

// compareBlock diffs one block present on both sides. Shared variables are
// visited in name order, so the entries kept under the cap are always the
// lexicographically first ones. An empty register list and a missing
// variable are different things: the former participates in state
// comparison, the latter lands in an only-in list.
func compareBlock(id int, lb, rb m.BlockState, maxChanged int) (m.BlockDiff, bool) {
	bd := m.BlockDiff{ID: id}

	for _, name := range slices.Sorted(maps.Keys(lb.Vars)) {
		rv, ok := rb.Vars[name]
		if !ok {
			bd.VarsOnlyInLeft = append(bd.VarsOnlyInLeft, name)

			continue
		}

		lv := lb.Vars[name]
		if lv.Equal(rv) {
			continue
		}

		if len(bd.Changed) < maxChanged {
			bd.Changed = append(bd.Changed, m.VarChange{Name: name, Left: lv, Right: rv})
		} else {
			bd.ElidedChanged++
		}
	}

	for _, name := range slices.Sorted(maps.Keys(rb.Vars)) {
		if _, ok := lb.Vars[name]; !ok {
			bd.VarsOnlyInRight = append(bd.VarsOnlyInRight, name)
		}
	}

	if !slices.Equal(lb.Avoid, rb.Avoid) {
		bd.AvoidChanged = true
		bd.LeftAvoid = lb.Avoid
		bd.RightAvoid = rb.Avoid
	}

	found := len(bd.VarsOnlyInLeft) > 0 || len(bd.VarsOnlyInRight) > 0 ||
		len(bd.Changed) > 0 || bd.ElidedChanged > 0 || bd.AvoidChanged

	return bd, found
}
