package textdiff

import "strings"

// OpKind classifies one line-pair outcome between the two texts.
type OpKind int

const (
	Same OpKind = iota
	Added
	Removed
	Changed
)

// Op is one classified line. Line is set for Same/Added/Removed; Changed
// carries both variants instead.
type Op struct {
	Kind         OpKind
	Line         string
	OriginalLine string
	TailoredLine string
}

// Result is the ordered classification, one entry per index position up to
// the longer text's line count.
type Result []Op

// Diff compares the two texts line by line, strictly by position. A line
// inserted near the top shifts everything after it into Changed entries;
// that is intentional and callers depend on it, so do not replace this with
// an alignment-aware (LCS) diff.
func Diff(original, tailored string) Result {
	origLines := strings.Split(original, "\n")
	tailLines := strings.Split(tailored, "\n")

	count := max(len(origLines), len(tailLines))
	res := make(Result, 0, count)
	for i := 0; i < count; i++ {
		switch {
		case i >= len(origLines):
			res = append(res, Op{Kind: Added, Line: tailLines[i]})
		case i >= len(tailLines):
			res = append(res, Op{Kind: Removed, Line: origLines[i]})
		case origLines[i] == tailLines[i]:
			res = append(res, Op{Kind: Same, Line: origLines[i]})
		default:
			res = append(res, Op{Kind: Changed, OriginalLine: origLines[i], TailoredLine: tailLines[i]})
		}
	}
	return res
}
