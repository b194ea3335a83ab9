package docview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tailorview/internal/config"
	"tailorview/internal/markdown"
)

// Renderer maps a parsed document to styled terminal lines. It is a pure
// dispatch over block and span kinds; styles are fixed at construction.
type Renderer struct {
	plain   lipgloss.Style
	heading lipgloss.Style
	bold    lipgloss.Style
	code    lipgloss.Style
	quote   lipgloss.Style
	rule    lipgloss.Style
}

func New(theme config.Theme) Renderer {
	return Renderer{
		plain:   lipgloss.NewStyle(),
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Heading)).Bold(true),
		bold:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Bold)).Bold(true),
		code:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Code)),
		quote:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Quote)).Italic(true),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Rule)),
	}
}

// Render produces one or more display lines per block, in source order,
// truncated to width.
func (r Renderer) Render(doc markdown.Document, width int) []string {
	if width < 1 {
		width = 1
	}

	lines := make([]string, 0, len(doc))
	for _, b := range doc {
		switch b.Kind {
		case markdown.KindHeading:
			prefix := r.heading.Render(strings.Repeat("#", b.Level) + " ")
			lines = append(lines, prefix+r.renderSpans(b.Spans, r.heading))

		case markdown.KindParagraph:
			lines = append(lines, r.renderSpans(b.Spans, r.plain))

		case markdown.KindList:
			for i, item := range b.Items {
				marker := "• "
				if b.ListKind == markdown.ListOrdered {
					marker = fmt.Sprintf("%d. ", i+1)
				}
				lines = append(lines, r.plain.Render(marker)+r.renderSpans(item, r.plain))
			}

		case markdown.KindCodeBlock:
			for _, raw := range b.Lines {
				lines = append(lines, r.code.Render("  "+raw))
			}

		case markdown.KindBlockQuote:
			lines = append(lines, r.quote.Render("│ ")+r.renderSpans(b.Spans, r.quote))

		case markdown.KindDivider:
			lines = append(lines, r.rule.Render(strings.Repeat("─", width)))

		case markdown.KindBlank:
			lines = append(lines, "")
		}
	}

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return lines
}

// renderSpans styles each span of one line; base carries the surrounding
// block's style so bold and code runs stay legible inside quotes and
// headings.
func (r Renderer) renderSpans(spans []markdown.Span, base lipgloss.Style) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case markdown.SpanText:
			b.WriteString(base.Render(s.Content))
		case markdown.SpanBold:
			b.WriteString(r.bold.Render(s.Content))
		case markdown.SpanCode:
			b.WriteString(r.code.Render(s.Content))
		}
	}
	return b.String()
}
