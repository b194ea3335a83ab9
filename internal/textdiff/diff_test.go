package textdiff

import (
	"strings"
	"testing"
)

func TestDiffIdenticalTextsAreAllSame(t *testing.T) {
	const text = "Line1\nLine2\nLine3"
	res := Diff(text, text)
	if len(res) != 3 {
		t.Fatalf("op count = %d, want 3", len(res))
	}
	for i, op := range res {
		if op.Kind != Same {
			t.Fatalf("op %d kind = %v, want Same", i, op.Kind)
		}
	}
}

func TestDiffAppendedLine(t *testing.T) {
	res := Diff("Line1\nLine2", "Line1\nLine2\nLine3")
	want := Result{
		{Kind: Same, Line: "Line1"},
		{Kind: Same, Line: "Line2"},
		{Kind: Added, Line: "Line3"},
	}
	assertResult(t, res, want)
}

func TestDiffSubstitutionAndAppend(t *testing.T) {
	res := Diff("Line1\nLine2\nLine3", "Line1\nLineX\nLine3\nLine4")
	want := Result{
		{Kind: Same, Line: "Line1"},
		{Kind: Changed, OriginalLine: "Line2", TailoredLine: "LineX"},
		{Kind: Same, Line: "Line3"},
		{Kind: Added, Line: "Line4"},
	}
	assertResult(t, res, want)
}

func TestDiffRemovedTail(t *testing.T) {
	res := Diff("a\nb\nc", "a")
	want := Result{
		{Kind: Same, Line: "a"},
		{Kind: Removed, Line: "b"},
		{Kind: Removed, Line: "c"},
	}
	assertResult(t, res, want)
}

// An insertion shifts every following line into Changed: the comparison is
// positional on purpose and the cascade is pinned here.
func TestDiffInsertionCascades(t *testing.T) {
	res := Diff("a\nb\nc", "new\na\nb\nc")
	want := Result{
		{Kind: Changed, OriginalLine: "a", TailoredLine: "new"},
		{Kind: Changed, OriginalLine: "b", TailoredLine: "a"},
		{Kind: Changed, OriginalLine: "c", TailoredLine: "b"},
		{Kind: Added, Line: "c"},
	}
	assertResult(t, res, want)
}

func TestDiffEmptyTextsYieldOneSameOp(t *testing.T) {
	res := Diff("", "")
	if len(res) != 1 || res[0].Kind != Same || res[0].Line != "" {
		t.Fatalf("res = %+v, want single Same of empty line", res)
	}
}

func TestDiffCachedReturnsStableResult(t *testing.T) {
	first := DiffCached("x\ny", "x\nz")
	second := DiffCached("x\ny", "x\nz")
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("op counts = %d/%d, want 2/2", len(first), len(second))
	}
	if &first[0] != &second[0] {
		t.Fatalf("expected cache hit to return the same backing result")
	}
}

func TestUnifiedNoChanges(t *testing.T) {
	out, err := Unified(Diff("a\nb", "a\nb"), "original.md", "tailored.md")
	if err != nil {
		t.Fatalf("Unified() error = %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil output for identical texts, got %q", out)
	}
}

func TestUnifiedSingleHunk(t *testing.T) {
	res := Diff("a\nb\nc", "a\nB\nc")
	out, err := Unified(res, "original.md", "tailored.md")
	if err != nil {
		t.Fatalf("Unified() error = %v", err)
	}

	patch := string(out)
	for _, want := range []string{
		"--- a/original.md",
		"+++ b/tailored.md",
		"@@ -1,3 +1,3 @@",
		"\n a\n",
		"\n-b\n+B\n",
		"\n c",
	} {
		if !strings.Contains(patch, want) {
			t.Fatalf("patch missing %q:\n%s", want, patch)
		}
	}
}

func TestUnifiedSplitsDistantChangesIntoHunks(t *testing.T) {
	orig := strings.Join([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15"}, "\n")
	tail := strings.Join([]string{"X", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "Y"}, "\n")

	out, err := Unified(Diff(orig, tail), "o", "t")
	if err != nil {
		t.Fatalf("Unified() error = %v", err)
	}

	patch := string(out)
	if got := strings.Count(patch, "@@ -"); got != 2 {
		t.Fatalf("hunk count = %d, want 2:\n%s", got, patch)
	}
	if !strings.Contains(patch, "@@ -1,4 +1,4 @@") {
		t.Fatalf("patch missing first hunk header:\n%s", patch)
	}
	if !strings.Contains(patch, "@@ -12,4 +12,4 @@") {
		t.Fatalf("patch missing second hunk header:\n%s", patch)
	}
}

func assertResult(t *testing.T, got, want Result) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("op count = %d, want %d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("op %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
