package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"tailorview/internal/clipboard"
	"tailorview/internal/config"
	"tailorview/internal/diffview"
	"tailorview/internal/docview"
	"tailorview/internal/markdown"
	"tailorview/internal/source"
	"tailorview/internal/textdiff"
)

type viewMode int

const (
	modeDiff viewMode = iota
	modeDocument
	modeOriginal
)

func (v viewMode) String() string {
	switch v {
	case modeDocument:
		return "tailored document"
	case modeOriginal:
		return "original document"
	default:
		return "diff"
	}
}

type pairLoadedMsg struct {
	pair source.Pair
	err  error
}

type clipboardResultMsg struct {
	err error
}

type alertTickMsg struct{}

// Model is the Bubble Tea state container for the viewer. The parsing and
// diffing core is pure; everything stateful lives here.
type Model struct {
	keys     KeyMap
	cfg      config.AppConfig
	loader   source.Loader
	log      zerolog.Logger
	renderer docview.Renderer
	palette  diffview.Palette

	mode   viewMode
	width  int
	height int
	ready  bool

	pair    source.Pair
	loaded  bool
	loading bool
	err     error

	diffRows   []diffview.DiffRow
	diffCursor int

	docView  viewport.Model
	origView viewport.Model
	tailView viewport.Model

	helpOpen   bool
	alertMsg   string
	alertUntil time.Time
}

func NewModel(cfg config.AppConfig, loader source.Loader, modeOverride string, log zerolog.Logger) Model {
	m := Model{
		keys:     defaultKeyMap(),
		cfg:      cfg,
		loader:   loader,
		log:      log,
		renderer: docview.New(cfg.Theme),
		palette:  diffview.NewPalette(cfg.Theme),
		mode:     parseMode(modeOverride, cfg.DefaultMode),
		loading:  true,
	}
	m.docView = viewport.New(1, 1)
	m.origView = viewport.New(1, 1)
	m.tailView = viewport.New(1, 1)
	return m
}

func parseMode(override, fallback string) viewMode {
	s := override
	if s == "" {
		s = fallback
	}
	switch s {
	case config.ModeDocument:
		return modeDocument
	case config.ModeOriginal:
		return modeOriginal
	default:
		return modeDiff
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPairCmd(), alertTickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePanes()
		m.refreshContent()
		return m, nil

	case pairLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("load sources")
			return m, nil
		}
		m.pair = msg.pair
		m.loaded = true
		m.diffCursor = 0
		m.log.Info().
			Int("original_bytes", len(msg.pair.Original)).
			Int("tailored_bytes", len(msg.pair.Tailored)).
			Msg("sources loaded")
		m.refreshContent()
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.setAlert(fmt.Sprintf("export failed: %v", msg.err))
			return m, nil
		}
		m.setAlert("Copied unified patch to clipboard.")
		return m, nil

	case alertTickMsg:
		if m.alertMsg != "" && !m.alertUntil.IsZero() && time.Now().After(m.alertUntil) {
			m.alertMsg = ""
			m.alertUntil = time.Time{}
		}
		return m, alertTickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpOpen = !m.helpOpen
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadPairCmd()

	case key.Matches(msg, m.keys.ToggleMode):
		m.mode = nextMode(m.mode)
		m.refreshContent()
		m.log.Debug().Str("mode", m.mode.String()).Msg("view mode changed")
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if !m.loaded {
			m.setAlert("Nothing loaded yet.")
			return m, nil
		}
		return m, m.exportPatchCmd()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.moveCursorTo(0)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursorTo(len(m.diffRows) - 1)
		return m, nil
	}

	return m, nil
}

func nextMode(v viewMode) viewMode {
	switch v {
	case modeDiff:
		return modeDocument
	case modeDocument:
		return modeOriginal
	default:
		return modeDiff
	}
}

func (m *Model) moveCursor(delta int) {
	if m.mode != modeDiff {
		if delta < 0 {
			m.docView.LineUp(-delta)
		} else {
			m.docView.LineDown(delta)
		}
		return
	}
	m.moveCursorTo(m.diffCursor + delta)
}

func (m *Model) moveCursorTo(idx int) {
	if m.mode != modeDiff {
		if idx <= 0 {
			m.docView.GotoTop()
		} else {
			m.docView.GotoBottom()
		}
		return
	}
	if len(m.diffRows) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.diffRows) {
		idx = len(m.diffRows) - 1
	}
	m.diffCursor = idx
	m.refreshContent()
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	h := m.origView.Height
	if h < 1 {
		return
	}
	offset := m.origView.YOffset
	if m.diffCursor < offset {
		offset = m.diffCursor
	} else if m.diffCursor >= offset+h {
		offset = m.diffCursor - h + 1
	}
	m.origView.SetYOffset(offset)
	m.tailView.SetYOffset(offset)
}

func (m *Model) pageSize() int {
	if m.mode == modeDiff {
		return max(1, m.origView.Height)
	}
	return max(1, m.docView.Height)
}

func (m *Model) resizePanes() {
	contentH := m.paneContentHeight()
	viewH := max(1, contentH-1) // one row for the pane title

	leftW, rightW := splitPaneWidths(m.width)
	m.origView.Width = max(1, leftW)
	m.origView.Height = viewH
	m.tailView.Width = max(1, rightW)
	m.tailView.Height = viewH

	m.docView.Width = max(1, singlePaneWidth(m.width))
	m.docView.Height = viewH
}

func (m *Model) paneContentHeight() int {
	footerH := lipgloss.Height(m.footer())
	dockH := 0
	if m.alertMsg != "" {
		dockH = lipgloss.Height(m.renderAlertDock())
	}
	// Borders add 2 rows to the pane.
	return max(1, m.height-footerH-dockH-2)
}

// refreshContent recomputes pane contents from the current pair. The parse
// and diff calls hit the string-keyed caches, so redraws stay cheap.
func (m *Model) refreshContent() {
	if !m.ready || !m.loaded {
		return
	}

	switch m.mode {
	case modeDocument, modeOriginal:
		text := m.pair.Tailored
		if m.mode == modeOriginal {
			text = m.pair.Original
		}
		start := time.Now()
		doc := markdown.ParseDocumentCached(text)
		lines := m.renderer.Render(doc, m.docView.Width)
		m.log.Debug().
			Dur("elapsed", time.Since(start)).
			Int("blocks", len(doc)).
			Msg("document rendered")
		m.docView.SetContent(strings.Join(lines, "\n"))

	case modeDiff:
		start := time.Now()
		res := textdiff.DiffCached(m.pair.Original, m.pair.Tailored)
		m.diffRows = diffview.Rows(res)
		if m.diffCursor >= len(m.diffRows) {
			m.diffCursor = max(0, len(m.diffRows)-1)
		}
		origLines, tailLines := diffview.RenderSplit(
			m.diffRows, m.origView.Width, m.tailView.Width, m.diffCursor, m.palette)
		m.log.Debug().
			Dur("elapsed", time.Since(start)).
			Int("rows", len(m.diffRows)).
			Msg("diff rendered")
		m.origView.SetContent(strings.Join(origLines, "\n"))
		m.tailView.SetContent(strings.Join(tailLines, "\n"))
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	footer := m.footer()

	dock := ""
	if m.alertMsg != "" {
		dock = m.renderAlertDock()
	}

	var body string
	switch {
	case m.err != nil:
		body = m.renderMessagePane(fmt.Sprintf("Failed to load sources:\n%v", m.err))
	case m.loading && !m.loaded:
		body = m.renderMessagePane("Loading sources...")
	case m.mode == modeDiff:
		left := m.renderPane("Original", m.origView.View(), m.origView.Width)
		right := m.renderPane("Tailored", m.tailView.View(), m.tailView.Width)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	default:
		title := "Tailored"
		if m.mode == modeOriginal {
			title = "Original"
		}
		body = m.renderPane(title, m.docView.View(), m.docView.Width)
	}

	if dock != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, dock)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderPane(title, content string, width int) string {
	titleLine := lipgloss.NewStyle().Bold(true).Render(ansi.Truncate(title, max(1, width), ""))
	return lipgloss.NewStyle().
		Width(max(1, width)).
		Height(m.paneContentHeight()).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("245")).
		Render(titleLine + "\n" + content)
}

func (m Model) renderMessagePane(text string) string {
	return m.renderPane("tailorview", text, singlePaneWidth(m.width))
}

func (m Model) renderAlertDock() string {
	body := ansi.Truncate(m.alertMsg, max(1, m.width-4), "")
	return lipgloss.NewStyle().
		Width(max(1, m.width-2)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(body)
}

func (m Model) footer() string {
	help := m.helpText()
	return lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(truncateLinesToWidth(help, m.width))
}

func (m Model) helpText() string {
	if !m.helpOpen {
		return fmt.Sprintf("[%s] t mode | j/k move | ctrl-f/b page | g/G top/bottom | y copy patch | r reload | ? help | q quit", m.mode)
	}
	return strings.Join([]string{
		"Modes: diff (split panes), tailored document, original document; t or tab cycles.",
		"Diff pane: j/k move the row cursor, ctrl-f/ctrl-b page, g/G jump, both panes scroll together.",
		"Document panes: j/k and ctrl-f/ctrl-b scroll, g/G jump.",
		"y copies the unified patch to the clipboard, r reloads both sources, q quits.",
	}, "\n")
}

func truncateLinesToWidth(s string, width int) string {
	if width < 1 {
		width = 1
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) setAlert(msg string) {
	m.alertMsg = msg
	m.alertUntil = time.Now().Add(3 * time.Second)
}

func (m Model) loadPairCmd() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		pair, err := loader.Load(context.Background())
		return pairLoadedMsg{pair: pair, err: err}
	}
}

func (m Model) exportPatchCmd() tea.Cmd {
	pair := m.pair
	return func() tea.Msg {
		res := textdiff.DiffCached(pair.Original, pair.Tailored)
		patch, err := textdiff.Unified(res, "original.md", "tailored.md")
		if err != nil {
			return clipboardResultMsg{err: err}
		}
		if patch == nil {
			return clipboardResultMsg{err: fmt.Errorf("texts are identical")}
		}
		return clipboardResultMsg{err: clipboard.CopyText(context.Background(), string(patch))}
	}
}

func alertTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return alertTickMsg{}
	})
}
