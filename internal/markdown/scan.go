package markdown

import "strings"

// delimMatch is one complete delimiter pair found in a suffix of a line.
type delimMatch struct {
	kind  SpanKind
	start int    // index of the opening delimiter
	inner string // content between the delimiters, taken verbatim
	end   int    // index just past the closing delimiter
}

// ScanLine splits one raw line into an ordered list of spans. Bold runs use
// **...** or __...__, inline code uses `...`; inner content must be non-empty
// and is never re-scanned, so spans cannot nest. Unterminated delimiters stay
// literal text. An empty line yields no spans.
func ScanLine(line string) []Span {
	if line == "" {
		return nil
	}

	spans := make([]Span, 0, 4)
	rest := line
	for rest != "" {
		m, ok := nextDelimited(rest)
		if !ok {
			spans = append(spans, textSpan(rest))
			break
		}
		if m.start > 0 {
			spans = append(spans, textSpan(rest[:m.start]))
		}
		spans = append(spans, Span{Kind: m.kind, Content: m.inner})
		rest = rest[m.end:]
	}
	return spans
}

// nextDelimited finds whichever complete delimiter pair occurs first in s.
func nextDelimited(s string) (delimMatch, bool) {
	best := delimMatch{}
	found := false
	for _, c := range []struct {
		delim string
		kind  SpanKind
	}{
		{"**", SpanBold},
		{"__", SpanBold},
		{"`", SpanCode},
	} {
		m, ok := findPair(s, c.delim, c.kind)
		if !ok {
			continue
		}
		if !found || m.start < best.start {
			best = m
			found = true
		}
	}
	return best, found
}

// findPair locates the first opening delimiter followed by a matching close
// with at least one character between them. The close is the earliest
// candidate, so matching is non-greedy. If the first opener never closes, no
// later opener can either, since any close for it would have closed the
// first one.
func findPair(s, delim string, kind SpanKind) (delimMatch, bool) {
	open := strings.Index(s, delim)
	if open < 0 {
		return delimMatch{}, false
	}
	rest := s[open+len(delim):]
	if len(rest) < len(delim)+1 {
		return delimMatch{}, false
	}
	rel := strings.Index(rest[1:], delim)
	if rel < 0 {
		return delimMatch{}, false
	}
	innerLen := rel + 1
	return delimMatch{
		kind:  kind,
		start: open,
		inner: rest[:innerLen],
		end:   open + len(delim) + innerLen + len(delim),
	}, true
}
