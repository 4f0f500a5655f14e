package domain

import (
	"bufio"
	"fmt"
	"io"

	m "github.com/mouse-blink/regdump/internal/model"
)

// parserState enumerates the dump parser's states.
type parserState int

const (
	parserIdle parserState = iota
	parserInSection
)

// Block summary lines enumerate every live value in the block, so they get
// long; the scanner buffer has to accommodate the worst observed dumps.
const (
	scanBufInitial = 64 * 1024
	scanBufMax     = 4 * 1024 * 1024
)

// dumpParser accumulates sections while streaming over dump lines. In the
// idle state block lines are discarded; only a header line opens a section,
// and only a phase terminator closes one.
type dumpParser struct {
	state    parserState
	current  string
	sections map[string]*m.Section
}

// ParseDump reads a whole debug dump and assembles the model for it. The
// label is derived from the path. Parsing never rejects input: unrecognized
// lines are noise, so any log that merely contains dump sections works.
func ParseDump(r io.Reader, path m.Path) (*m.Dump, error) {
	p := &dumpParser{sections: make(map[string]*m.Section)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, scanBufInitial), scanBufMax)

	for sc.Scan() {
		p.handleLine(sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dump %s: %w", path, err)
	}

	return &m.Dump{Path: path, Label: fileLabel(string(path)), Sections: p.sections}, nil
}

// handleLine advances the state machine by one classified line.
func (p *dumpParser) handleLine(line string) {
	ev := classifyLine(line)

	switch ev.kind {
	case lineHeader:
		p.state = parserInSection
		p.current = ev.fn
		p.adoptSection(ev.fn, ev.desc, line)
	case lineBlock:
		if p.state != parserInSection {
			return
		}

		p.storeBlock(p.current, ev.id, ev.body)
	case lineSectionEnd:
		p.state = parserIdle
		p.current = ""
	case lineNoise:
	}
}

// adoptSection applies the first-wins rule for section metadata: the header
// line seen first is kept, and the annotation fills in only while absent. A
// re-opened section keeps accumulating into the same block map.
func (p *dumpParser) adoptSection(fn, desc, headerLine string) {
	sec, ok := p.sections[fn]
	if !ok {
		p.sections[fn] = &m.Section{
			Desc:       desc,
			HeaderLine: headerLine,
			Blocks:     make(map[int]m.BlockState),
		}

		return
	}

	if sec.Desc == "" && desc != "" {
		sec.Desc = desc
	}
}

// storeBlock applies the last-wins rule for block content: a block id
// reprinted later replaces the earlier summary wholesale.
func (p *dumpParser) storeBlock(fn string, id int, body string) {
	p.sections[fn].Blocks[id] = decodeBlockBody(body)
}
