package markdown

import "strings"

// ParseDocument turns raw text into a flat block sequence. It is total:
// any input, including malformed markup, produces a valid Document and an
// empty input produces an empty one. Every source line lands in exactly one
// block (or is absorbed into a multi-line code block or list).
func ParseDocument(text string) Document {
	if text == "" {
		return nil
	}

	p := assembler{}
	for _, line := range strings.Split(text, "\n") {
		p.feed(line)
	}
	p.finish()
	return p.doc
}

// assembler holds the little state the single pass needs: an open code fence
// and a not-yet-flushed run of list items.
type assembler struct {
	doc Document

	insideFence bool
	fenceLines  []string

	listKind  ListKind
	listItems [][]Span
}

func (p *assembler) feed(line string) {
	if isFenceLine(line) {
		if p.insideFence {
			p.insideFence = false
			p.flushFence()
			return
		}
		p.flushList()
		p.insideFence = true
		return
	}

	if p.insideFence {
		p.fenceLines = append(p.fenceLines, line)
		return
	}

	if line == "" {
		p.flushList()
		p.doc = append(p.doc, Block{Kind: KindBlank})
		return
	}

	if level, rest, ok := headingLine(line); ok {
		p.flushList()
		p.doc = append(p.doc, Block{Kind: KindHeading, Level: level, Spans: ScanLine(rest)})
		return
	}

	if isRuleLine(line) {
		p.flushList()
		p.doc = append(p.doc, Block{Kind: KindDivider})
		return
	}

	// Indentation is not structural in this dialect: an indented item joins
	// the same flat list as its neighbors.
	trimmed := strings.TrimLeft(line, " \t")

	if rest, ok := unorderedItem(trimmed); ok {
		p.appendItem(ListUnordered, rest)
		return
	}

	if rest, ok := orderedItem(trimmed); ok {
		p.appendItem(ListOrdered, rest)
		return
	}

	if rest, ok := strings.CutPrefix(line, ">"); ok {
		p.flushList()
		rest = strings.TrimPrefix(rest, " ")
		p.doc = append(p.doc, Block{Kind: KindBlockQuote, Spans: ScanLine(rest)})
		return
	}

	p.flushList()
	p.doc = append(p.doc, Block{Kind: KindParagraph, Spans: ScanLine(line)})
}

// finish flushes trailing state. An unterminated fence still yields a code
// block; partially fenced content is never discarded.
func (p *assembler) finish() {
	p.flushList()
	if p.insideFence {
		p.insideFence = false
		p.flushFence()
	}
}

func (p *assembler) flushFence() {
	p.doc = append(p.doc, Block{Kind: KindCodeBlock, Lines: p.fenceLines})
	p.fenceLines = nil
}

func (p *assembler) appendItem(kind ListKind, rest string) {
	if len(p.listItems) > 0 && p.listKind != kind {
		p.flushList()
	}
	p.listKind = kind
	p.listItems = append(p.listItems, ScanLine(rest))
}

func (p *assembler) flushList() {
	if len(p.listItems) == 0 {
		return
	}
	p.doc = append(p.doc, Block{Kind: KindList, ListKind: p.listKind, Items: p.listItems})
	p.listItems = nil
	p.listKind = ListUnordered
}

// isFenceLine reports whether the line is nothing but three or more backticks.
func isFenceLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '`' {
			return false
		}
	}
	return true
}

// headingLine matches one to six # characters followed by a space.
func headingLine(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, line[level+1:], true
}

// isRuleLine matches a line made of three or more of the same -, * or _.
func isRuleLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	c := line[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}

func unorderedItem(line string) (string, bool) {
	if len(line) < 2 {
		return "", false
	}
	if (line[0] == '-' || line[0] == '*' || line[0] == '+') && line[1] == ' ' {
		return line[2:], true
	}
	return "", false
}

func orderedItem(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' || line[i+1] != ' ' {
		return "", false
	}
	return line[i+2:], true
}
