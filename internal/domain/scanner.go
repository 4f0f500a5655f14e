package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// lineKind enumerates the line shapes the dump scanner recognizes.
type lineKind int

const (
	lineNoise lineKind = iota
	lineHeader
	lineBlock
	lineSectionEnd
)

const (
	headerKeyword    = "final"
	headerMarker     = "live values at end of each block:"
	sectionEndPrefix = "Begin processing block"
)

// lineEvent is the classification of a single dump line. The payload fields
// are valid per kind: desc and fn for headers, id and body for block lines.
type lineEvent struct {
	kind lineKind
	desc string
	fn   string
	id   int
	body string
}

// classifyLine decides which recognized shape s has. It never fails: a line
// that does not scan exactly is noise and carries no payload. Dumps
// interleave output from many compiler phases, so almost every line is
// noise and the checks are ordered cheapest-reject-first.
func classifyLine(s string) lineEvent {
	if ev, ok := scanHeader(s); ok {
		return ev
	}

	if ev, ok := scanBlock(s); ok {
		return ev
	}

	// The terminator is matched on the raw line: the allocator prints it
	// flush left, and an indented occurrence is quoted output, not a
	// phase boundary.
	if strings.HasPrefix(s, sectionEndPrefix) {
		return lineEvent{kind: lineSectionEnd}
	}

	return lineEvent{kind: lineNoise}
}

// scanHeader matches a section header:
//
//	final: live values at end of each block: fn
//	final (desc): live values at end of each block: fn
//
// Leading whitespace is allowed. The annotation runs to the first ')' and
// is stored trimmed; the colon must directly follow the keyword or the
// closing parenthesis. The function name is everything after the marker,
// trimmed, and must be non-empty.
func scanHeader(s string) (lineEvent, bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeftFunc(s, unicode.IsSpace), headerKeyword)
	if !ok {
		return lineEvent{}, false
	}

	var desc string

	if stripped := strings.TrimLeftFunc(rest, unicode.IsSpace); strings.HasPrefix(stripped, "(") {
		end := strings.IndexByte(stripped, ')')
		if end < 0 {
			return lineEvent{}, false
		}

		desc = strings.TrimSpace(stripped[1:end])
		rest = stripped[end+1:]
	}

	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return lineEvent{}, false
	}

	rest, ok = strings.CutPrefix(strings.TrimLeftFunc(rest, unicode.IsSpace), headerMarker)
	if !ok {
		return lineEvent{}, false
	}

	fn := strings.TrimSpace(rest)
	if fn == "" {
		return lineEvent{}, false
	}

	return lineEvent{kind: lineHeader, desc: desc, fn: fn}, true
}

// scanBlock matches a block summary line: optional leading whitespace, then
// "b<digits>:" with the colon hard against the digits. The body is the
// remainder, trimmed. A digit run too long for int rejects the line.
func scanBlock(s string) (lineEvent, bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeftFunc(s, unicode.IsSpace), "b")
	if !ok {
		return lineEvent{}, false
	}

	n := digitRun(rest)
	if n == 0 || n >= len(rest) || rest[n] != ':' {
		return lineEvent{}, false
	}

	id, err := strconv.Atoi(rest[:n])
	if err != nil {
		return lineEvent{}, false
	}

	return lineEvent{kind: lineBlock, id: id, body: strings.TrimSpace(rest[n+1:])}, true
}

// digitRun returns the length of the leading ASCII digit run of s.
func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}

	return n
}
