package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/regdump/internal/model"
)

// onlyVarsCap bounds how many variable names an only-in-one-side list spells
// out before eliding the rest with a count.
const onlyVarsCap = 50

// NoDifferences is the whole report when a comparison comes back empty.
const NoDifferences = "No differences found."

// RenderReport formats a comparison as the lines to print, in a fixed
// order: only-in section lists first, then one segment per differing
// function. The zero-difference report renders as a single line.
func RenderReport(rep m.Report) []string {
	if rep.Empty() {
		return []string{NoDifferences}
	}

	var lines []string

	lines = appendOnlySections(lines, rep.LeftLabel, rep.SectionsOnlyInLeft)
	lines = appendOnlySections(lines, rep.RightLabel, rep.SectionsOnlyInRight)

	for _, fd := range rep.Functions {
		lines = append(lines, RenderFunctionDiff(rep, fd)...)
		lines = append(lines, "")
	}

	return lines
}

// RenderFunctionDiff formats one function's segment: the header naming the
// function and both section labels, the only-in block lists, then one
// sub-segment per differing block.
func RenderFunctionDiff(rep m.Report, fd m.FunctionDiff) []string {
	lines := []string{fmt.Sprintf("=== %s (%s) ===", fd.Name, fd.HeaderLabel)}

	if len(fd.BlocksOnlyInLeft) > 0 {
		lines = append(lines, "  blocks only in "+rep.LeftLabel+": "+joinBlockIDs(fd.BlocksOnlyInLeft))
	}

	if len(fd.BlocksOnlyInRight) > 0 {
		lines = append(lines, "  blocks only in "+rep.RightLabel+": "+joinBlockIDs(fd.BlocksOnlyInRight))
	}

	for _, bd := range fd.Blocks {
		lines = append(lines, "", fmt.Sprintf("  == b%d ==", bd.ID))
		lines = appendBlockDiff(lines, rep, bd)
	}

	return lines
}

func appendBlockDiff(lines []string, rep m.Report, bd m.BlockDiff) []string {
	if len(bd.VarsOnlyInLeft) > 0 {
		lines = append(lines, "    vars only in "+rep.LeftLabel+": "+elideVarNames(bd.VarsOnlyInLeft))
	}

	if len(bd.VarsOnlyInRight) > 0 {
		lines = append(lines, "    vars only in "+rep.RightLabel+": "+elideVarNames(bd.VarsOnlyInRight))
	}

	for _, ch := range bd.Changed {
		lines = append(lines, fmt.Sprintf("    %s: %s=%s %s=%s",
			ch.Name, rep.LeftLabel, formatVarState(ch.Left), rep.RightLabel, formatVarState(ch.Right)))
	}

	if bd.ElidedChanged > 0 {
		lines = append(lines, fmt.Sprintf("    ... %d more changed vars", bd.ElidedChanged))
	}

	if bd.AvoidChanged {
		lines = append(lines, fmt.Sprintf("    avoid: %s=[%s] %s=[%s]",
			rep.LeftLabel, strings.Join(bd.LeftAvoid, ","),
			rep.RightLabel, strings.Join(bd.RightAvoid, ",")))
	}

	return lines
}

func appendOnlySections(lines []string, label string, names []string) []string {
	if len(names) == 0 {
		return lines
	}

	lines = append(lines, fmt.Sprintf("Sections only in %s:", label))
	for _, fn := range names {
		lines = append(lines, "  - "+fn)
	}

	return append(lines, "")
}

func formatVarState(v m.VarState) string {
	return fmt.Sprintf("(%d,[%s])", v.Weight, strings.Join(v.Regs, ","))
}

func joinBlockIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("b%d", id)
	}

	return strings.Join(parts, ", ")
}

func elideVarNames(names []string) string {
	if len(names) <= onlyVarsCap {
		return strings.Join(names, ", ")
	}

	return fmt.Sprintf("%s ... %d more", strings.Join(names[:onlyVarsCap], ", "), len(names)-onlyVarsCap)
}
