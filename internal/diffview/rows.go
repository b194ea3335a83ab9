package diffview

import "tailorview/internal/textdiff"

type Side int

const (
	SideOriginal Side = iota
	SideTailored
)

type RowKind int

const (
	RowSame RowKind = iota
	RowRemoved
	RowAdded
	RowChanged
)

// DiffRow is one display row of the split view. A nil line number means the
// row has no counterpart on that side.
type DiffRow struct {
	Kind         RowKind
	OriginalLine *int
	TailoredLine *int
	OriginalText string
	TailoredText string
}

// Rows converts a positional diff result into display rows with 1-based
// per-side line numbers.
func Rows(res textdiff.Result) []DiffRow {
	rows := make([]DiffRow, 0, len(res))
	origLn := 1
	tailLn := 1
	for _, op := range res {
		switch op.Kind {
		case textdiff.Same:
			rows = append(rows, DiffRow{
				Kind:         RowSame,
				OriginalLine: linePtr(origLn),
				TailoredLine: linePtr(tailLn),
				OriginalText: op.Line,
				TailoredText: op.Line,
			})
			origLn++
			tailLn++

		case textdiff.Removed:
			rows = append(rows, DiffRow{
				Kind:         RowRemoved,
				OriginalLine: linePtr(origLn),
				OriginalText: op.Line,
			})
			origLn++

		case textdiff.Added:
			rows = append(rows, DiffRow{
				Kind:         RowAdded,
				TailoredLine: linePtr(tailLn),
				TailoredText: op.Line,
			})
			tailLn++

		case textdiff.Changed:
			rows = append(rows, DiffRow{
				Kind:         RowChanged,
				OriginalLine: linePtr(origLn),
				TailoredLine: linePtr(tailLn),
				OriginalText: op.OriginalLine,
				TailoredText: op.TailoredLine,
			})
			origLn++
			tailLn++
		}
	}
	return rows
}

func linePtr(n int) *int {
	v := n
	return &v
}
