package domain

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/regdump/internal/model"
)

const avoidKeyword = "avoid="

// decodeBlockBody turns the text after "bN:" into the block's canonical
// state. The avoid clause is cut out first; the remaining words are scanned
// as variable tokens and anything that does not fit the token shape is
// dropped, since block lines mix in allocator annotations that are not
// live-value entries.
func decodeBlockBody(body string) m.BlockState {
	state := m.BlockState{Vars: make(map[string]m.VarState)}

	rest, avoidToks, found := cutAvoidClause(body)
	if found {
		state.Avoid = canonicalAvoid(avoidToks)
	}

	for _, tok := range strings.Fields(rest) {
		name, vs, ok := scanVarToken(tok)
		if !ok {
			continue
		}

		state.Vars[name] = vs
	}

	return state
}

// cutAvoidClause locates the first word-boundary "avoid=" occurrence with at
// least one character after the equals sign. The clause runs to the end of
// the line: its remainder is split into whitespace-separated tokens and the
// text before it becomes the remaining body. An occurrence embedded in a
// longer word, such as "xavoid=", does not count.
func cutAvoidClause(body string) (rest string, toks []string, found bool) {
	for from := 0; ; {
		i := strings.Index(body[from:], avoidKeyword)
		if i < 0 {
			return body, nil, false
		}

		i += from
		after := i + len(avoidKeyword)

		if wordBoundaryBefore(body, i) && after < len(body) {
			return strings.TrimSpace(body[:i]), strings.Fields(body[after:]), true
		}

		from = i + 1
	}
}

func wordBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}

	r, _ := utf8.DecodeLastRuneInString(s[:i])

	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// scanVarToken matches a live-value token: v<digits>(<digits>) with an
// optional [reg,reg,...] suffix whose closing bracket must end the token.
// The variable name keeps its "v" prefix. A missing bracket suffix and an
// empty one both yield an empty register list.
func scanVarToken(tok string) (string, m.VarState, bool) {
	rest, ok := strings.CutPrefix(tok, "v")
	if !ok {
		return "", m.VarState{}, false
	}

	n := digitRun(rest)
	if n == 0 {
		return "", m.VarState{}, false
	}

	name := tok[:1+n]
	rest = rest[n:]

	if len(rest) == 0 || rest[0] != '(' {
		return "", m.VarState{}, false
	}

	rest = rest[1:]

	n = digitRun(rest)
	if n == 0 || n >= len(rest) || rest[n] != ')' {
		return "", m.VarState{}, false
	}

	weight, err := strconv.Atoi(rest[:n])
	if err != nil {
		return "", m.VarState{}, false
	}

	rest = rest[n+1:]

	var regs []string

	if len(rest) > 0 {
		if rest[0] != '[' || rest[len(rest)-1] != ']' {
			return "", m.VarState{}, false
		}

		inner := rest[1 : len(rest)-1]
		if strings.ContainsRune(inner, ']') {
			return "", m.VarState{}, false
		}

		regs = canonicalRegs(splitRegTokens(inner))
	}

	return name, m.VarState{Weight: weight, Regs: regs}, true
}
