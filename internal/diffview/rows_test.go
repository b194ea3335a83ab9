package diffview

import (
	"testing"

	"tailorview/internal/textdiff"
)

func TestRowsNumbersEachSideIndependently(t *testing.T) {
	res := textdiff.Diff("keep\ngone\ntail", "keep\ntail\nextra\nmore")
	rows := Rows(res)
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want 4", len(rows))
	}

	if rows[0].Kind != RowSame {
		t.Fatalf("row 0 kind = %v, want RowSame", rows[0].Kind)
	}
	assertLine(t, rows[0].OriginalLine, 1)
	assertLine(t, rows[0].TailoredLine, 1)

	if rows[1].Kind != RowChanged {
		t.Fatalf("row 1 kind = %v, want RowChanged", rows[1].Kind)
	}
	if rows[1].OriginalText != "gone" || rows[1].TailoredText != "tail" {
		t.Fatalf("row 1 texts = %q/%q, want gone/tail", rows[1].OriginalText, rows[1].TailoredText)
	}

	if rows[3].Kind != RowAdded {
		t.Fatalf("row 3 kind = %v, want RowAdded", rows[3].Kind)
	}
	if rows[3].OriginalLine != nil {
		t.Fatalf("expected added row original line to be nil, got %d", *rows[3].OriginalLine)
	}
	assertLine(t, rows[3].TailoredLine, 4)
}

func TestRowsRemovedSideHasNoTailoredLine(t *testing.T) {
	rows := Rows(textdiff.Diff("a\nb", "a"))
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	if rows[1].Kind != RowRemoved {
		t.Fatalf("row 1 kind = %v, want RowRemoved", rows[1].Kind)
	}
	if rows[1].TailoredLine != nil {
		t.Fatalf("expected removed row tailored line to be nil, got %d", *rows[1].TailoredLine)
	}
	assertLine(t, rows[1].OriginalLine, 2)
}

func assertLine(t *testing.T, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Fatalf("line = nil, want %d", want)
	}
	if *got != want {
		t.Fatalf("line = %d, want %d", *got, want)
	}
}
