package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tailorview/internal/config"
)

// Palette holds the styles the split view applies per row kind.
type Palette struct {
	Added   lipgloss.Style
	Removed lipgloss.Style
	Changed lipgloss.Style
	Cursor  lipgloss.Style
}

func NewPalette(theme config.Theme) Palette {
	return Palette{
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Added)),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Removed)),
		Changed: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Changed)),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
}

// RenderSplit renders one string line per row for each pane. Both slices are
// index-aligned with rows so the panes scroll in lockstep.
func RenderSplit(rows []DiffRow, origWidth, tailWidth, cursor int, pal Palette) ([]string, []string) {
	if origWidth <= 0 {
		origWidth = 1
	}
	if tailWidth <= 0 {
		tailWidth = 1
	}

	maxOrig := 0
	maxTail := 0
	for _, row := range rows {
		if row.OriginalLine != nil && *row.OriginalLine > maxOrig {
			maxOrig = *row.OriginalLine
		}
		if row.TailoredLine != nil && *row.TailoredLine > maxTail {
			maxTail = *row.TailoredLine
		}
	}
	origNumW := max(3, digits(maxOrig))
	tailNumW := max(3, digits(maxTail))

	origLines := make([]string, 0, len(rows))
	tailLines := make([]string, 0, len(rows))
	for i, row := range rows {
		origLines = append(origLines, renderRowForSide(row, SideOriginal, origWidth, origNumW, i == cursor, pal))
		tailLines = append(tailLines, renderRowForSide(row, SideTailored, tailWidth, tailNumW, i == cursor, pal))
	}
	return origLines, tailLines
}

func renderRowForSide(row DiffRow, side Side, width, numW int, isCursor bool, pal Palette) string {
	cursorMark := " "
	if isCursor {
		cursorMark = pal.Cursor.Render("▸")
	}

	prefix := cursorMark + " "
	lineWidth := max(1, width-2)

	lineNo, text, marker, ok := sideContent(row, side)
	if !ok {
		return prefix + strings.Repeat(" ", lineWidth)
	}

	num := fmt.Sprintf("%*d", numW, *lineNo)
	base := fmt.Sprintf("%c %s %s", marker, num, text)
	base = padRight(truncateRunes(base, lineWidth), lineWidth)

	switch row.Kind {
	case RowAdded:
		if side == SideTailored {
			base = pal.Added.Render(base)
		}
	case RowRemoved:
		if side == SideOriginal {
			base = pal.Removed.Render(base)
		}
	case RowChanged:
		base = pal.Changed.Render(base)
	}
	return prefix + base
}

func sideContent(row DiffRow, side Side) (*int, string, rune, bool) {
	switch side {
	case SideOriginal:
		if row.OriginalLine == nil {
			return nil, "", ' ', false
		}
		marker := ' '
		if row.Kind == RowRemoved || row.Kind == RowChanged {
			marker = '-'
		}
		return row.OriginalLine, row.OriginalText, marker, true

	case SideTailored:
		if row.TailoredLine == nil {
			return nil, "", ' ', false
		}
		marker := ' '
		if row.Kind == RowAdded || row.Kind == RowChanged {
			marker = '+'
		}
		return row.TailoredLine, row.TailoredText, marker, true
	}

	return nil, "", ' ', false
}

func truncateRunes(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
