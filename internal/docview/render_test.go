package docview

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tailorview/internal/config"
	"tailorview/internal/markdown"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func testRenderer() Renderer { return New(config.DefaultTheme()) }

func TestRenderLineShapes(t *testing.T) {
	doc := markdown.ParseDocument("# Title\n\npara **strong**\n- a\n- b\n1. first\n> hint\n---\n```\nraw\n```")
	lines := testRenderer().Render(doc, 60)

	want := []string{
		"# Title",
		"",
		"para strong",
		"• a",
		"• b",
		"1. first",
		"│ hint",
		strings.Repeat("─", 60),
		"  raw",
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d (%q)", len(lines), len(want), lines)
	}
	for i := range want {
		if got := stripANSI(lines[i]); got != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestRenderOrderedMarkersCount(t *testing.T) {
	doc := markdown.ParseDocument("1. one\n2. two\n3. three")
	lines := testRenderer().Render(doc, 40)
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	for i, prefix := range []string{"1. ", "2. ", "3. "} {
		if got := stripANSI(lines[i]); !strings.HasPrefix(got, prefix) {
			t.Fatalf("line %d = %q, want prefix %q", i, got, prefix)
		}
	}
}

func TestRenderCodeBlockLinesStayVerbatim(t *testing.T) {
	doc := markdown.ParseDocument("```\nif **x** { `y` }\n```")
	lines := testRenderer().Render(doc, 60)
	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	if got := stripANSI(lines[0]); got != "  if **x** { `y` }" {
		t.Fatalf("code line = %q, want delimiters preserved", got)
	}
}

func TestRenderRespectsWidth(t *testing.T) {
	doc := markdown.ParseDocument("# a very long heading that should be cut off\n" + strings.Repeat("x", 100))
	lines := testRenderer().Render(doc, 20)
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("line %d width = %d, want <= 20 (%q)", i, w, line)
		}
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	if lines := testRenderer().Render(nil, 40); len(lines) != 0 {
		t.Fatalf("expected no lines for empty document, got %d", len(lines))
	}
}
