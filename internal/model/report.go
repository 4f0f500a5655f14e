package model

// VarChange records a variable present in both dumps whose canonical state
// differs between them.
type VarChange struct {
	Name  string
	Left  VarState
	Right VarState
}

// BlockDiff describes the differences found inside one shared basic block.
// Changed holds at most the configured number of entries, in variable name
// order; ElidedChanged counts the entries dropped past that cap.
type BlockDiff struct {
	ID              int
	VarsOnlyInLeft  []string
	VarsOnlyInRight []string
	Changed         []VarChange
	ElidedChanged   int
	AvoidChanged    bool
	LeftAvoid       []string
	RightAvoid      []string
}

// FunctionDiff describes the differences for one function present in both
// dumps. HeaderLabel combines the two sides' section labels for display.
type FunctionDiff struct {
	Name              string
	HeaderLabel       string
	BlocksOnlyInLeft  []int
	BlocksOnlyInRight []int
	Blocks            []BlockDiff
}

// Report is the result of comparing two dumps. Every slice is sorted so the
// same pair of inputs always renders identically.
type Report struct {
	LeftLabel           string
	RightLabel          string
	SectionsOnlyInLeft  []string
	SectionsOnlyInRight []string
	Functions           []FunctionDiff
}

// Empty reports whether the comparison found no differences at all.
func (r Report) Empty() bool {
	return len(r.SectionsOnlyInLeft) == 0 &&
		len(r.SectionsOnlyInRight) == 0 &&
		len(r.Functions) == 0
}
