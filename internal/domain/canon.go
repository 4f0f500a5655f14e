package domain

import (
	"slices"
	"strings"
	"unicode"
)

// splitRegTokens breaks a register list on commas and whitespace, dropping
// empty pieces: "R0, R1 R2" yields [R0 R1 R2].
func splitRegTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// canonicalRegs sorts register tokens into a deterministic order. Duplicates
// are kept: a register listed twice stays listed twice, and two lists only
// compare equal if they agree as multisets.
func canonicalRegs(toks []string) []string {
	if len(toks) == 0 {
		return nil
	}

	out := slices.Clone(toks)
	slices.Sort(out)

	return out
}

// canonicalAvoid de-duplicates and sorts avoid tokens. Unlike register
// lists, an avoid clause is a set; repeating a register adds nothing.
func canonicalAvoid(toks []string) []string {
	if len(toks) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(toks))

	var out []string

	for _, t := range toks {
		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		out = append(out, t)
	}

	slices.Sort(out)

	return out
}
