package app

// splitPaneWidths divides the window between the original and tailored
// panes. Widths returned are content widths, not outer widths; each bordered
// pane adds 2 columns, so the overhead is 4.
func splitPaneWidths(totalWidth int) (int, int) {
	available := totalWidth - 4
	if available < 2 {
		return 1, 1
	}
	left := available / 2
	right := available - left
	return left, right
}

// singlePaneWidth is the content width of one full-width bordered pane.
func singlePaneWidth(totalWidth int) int {
	w := totalWidth - 2
	if w < 1 {
		w = 1
	}
	return w
}
