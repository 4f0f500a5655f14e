package model

import "slices"

// Path represents a file system path.
type Path string

// VarState is the canonical value recorded for one live variable at the end
// of a basic block: its spill weight and the registers the allocator picked
// for it, sorted so comparisons ignore listing order. Duplicate registers
// survive sorting; the list is a multiset, not a set.
type VarState struct {
	Weight int
	Regs   []string
}

// Equal reports whether two variable states carry the same weight and the
// same canonical register list.
func (v VarState) Equal(o VarState) bool {
	return v.Weight == o.Weight && slices.Equal(v.Regs, o.Regs)
}

// BlockState is the decoded summary of one basic block: live variables keyed
// by id (e.g. "v8") and the block's avoid set, both in canonical form.
type BlockState struct {
	Vars  map[string]VarState
	Avoid []string
}

// Section collects everything parsed for one function: the annotation from
// the header that opened it (empty when absent), the first header line seen
// verbatim, and the block summaries keyed by numeric block id.
//
// A function may re-open its section later in the same dump; blocks keep
// accumulating into the same maps while the first header line is retained.
type Section struct {
	Desc       string
	HeaderLine string
	Blocks     map[int]BlockState
}

// Dump is the parsed form of one debug dump file.
type Dump struct {
	Path     Path
	Label    string
	Sections map[string]*Section
}
