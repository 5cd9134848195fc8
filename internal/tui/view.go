package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/selection"
)

// View implements tea.Model by rendering the current screen state.
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	if m.ui.mouseCapture {
		v.MouseMode = tea.MouseModeCellMotion
	} else {
		v.MouseMode = tea.MouseModeNone
	}

	if m.ui.showHelp {
		v.Content = m.renderHelp()
		return v
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	v.Content = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String())
	return v
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(renderBreadcrumb(m.breadcrumbParts()...))
	b.WriteString("\n")
	b.WriteString(renderSeparator(m.effectiveWidth()))
	b.WriteString("\n")
	b.WriteString(renderTabs(browseTabs, m.view))
	return b.String()
}

// renderBody renders exactly paneHeight lines for the active screen.
func (m Model) renderBody() string {
	height := m.paneHeight()
	width := m.effectiveWidth()

	var lines []string
	switch {
	case m.view == DocScreen:
		lines = m.renderDoc(height, width)
	case m.loading && m.catalog.Len() == 0:
		lines = m.renderNotice(height, activeTheme.HintText.Render("Loading…"))
	case m.catalog.Len() == 0:
		lines = m.renderNotice(height, activeTheme.HintText.Render("No files under "+m.root))
	case m.view == GridScreen:
		lines = m.renderGrid(height, width)
	default:
		lines = m.renderList(height, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderNotice(height int, text string) []string {
	lines := make([]string, height)
	if height > 0 {
		lines[0] = " " + text
	}
	return lines
}

// --- List ---

func (m Model) renderList(height, width int) []string {
	_, oy := m.list.rowOffset()
	lines := make([]string, height)
	for i := range lines {
		y := oy + i
		if y < 0 || y >= len(m.lists.rows) {
			continue
		}
		row := m.lists.rows[y]
		if row.header {
			lines[i] = m.renderSectionHeader(row.section, width)
			continue
		}
		lines[i] = m.renderItem(selection.IndexPath{Section: row.section, Item: row.item}, width)
	}
	return lines
}

func (m Model) renderSectionHeader(section, width int) string {
	dir := m.catalog.Section(section).Dir
	style := activeTheme.SectionHeader
	text := dirIcon(m.iconMode).render(false, style) + style.Render(dir+"/")
	return visualPad(visualTruncate(text, width), width)
}

// itemStyle picks the style and marker for an item.
func (m Model) itemStyle(p selection.IndexPath) (lipgloss.Style, string) {
	if cur, ok := m.selection.Current(); ok && cur == p {
		return activeTheme.Focus, "> "
	}
	if m.selection.IsSelected(p) {
		return activeTheme.Marked, "* "
	}
	if !m.catalog.Selectable(p) {
		return activeTheme.DimText, "  "
	}
	return activeTheme.Normal, "  "
}

// renderItem renders one item padded to width cells.
func (m Model) renderItem(p selection.IndexPath, width int) string {
	entry := m.catalog.Entry(p)
	style, marker := m.itemStyle(p)
	ic := fileIcon(entry.Name, m.iconMode)

	if marker != "  " {
		// Highlighted rows keep one background across the icon.
		text := marker + ic.render(true, style) + entry.Name
		return style.Render(visualPad(visualTruncate(text, width), width))
	}
	glyph := ic.render(false, activeTheme.DimText)
	name := visualTruncate(entry.Name, width-len(marker)-lipgloss.Width(glyph))
	return visualPad(marker+glyph+style.Render(name), width)
}

// --- Grid ---

func (m Model) renderGrid(height, width int) []string {
	ox, oy := m.grid.rowOffset()
	lines := make([]string, height)
	for i := range lines {
		y := oy + i
		if y < 0 || float64(y) >= m.grids.height {
			continue
		}
		if s, ok := m.grids.headerAt(y); ok {
			lines[i] = visualWindow(m.renderSectionHeader(s, int(m.grids.ContentSize().W)), ox, width)
			continue
		}
		lines[i] = visualWindow(m.renderGridRow(y), ox, width)
	}
	return lines
}

// renderGridRow renders content row y across the full content width.
func (m Model) renderGridRow(y int) string {
	content := m.grids.ContentSize()
	hits := m.grids.ItemsIn(geom.R(0, float64(y), content.W, 1))
	slices.SortFunc(hits, func(a, b selection.IndexPath) int {
		return int(m.grids.FrameOf(a).X - m.grids.FrameOf(b).X)
	})

	var b strings.Builder
	x := 0
	for _, p := range hits {
		frame := m.grids.FrameOf(p)
		if gap := int(frame.X) - x; gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(m.renderCellLine(p, y-int(frame.Y), int(frame.W), int(frame.H)))
		x = int(frame.MaxX())
	}
	return b.String()
}

// renderCellLine renders line n of an item cell. The name sits on the middle
// line; the last column is a gutter.
func (m Model) renderCellLine(p selection.IndexPath, n, w, h int) string {
	inner := w - 1
	if n != h/2 {
		style, _ := m.itemStyle(p)
		return style.Render(strings.Repeat(" ", inner)) + " "
	}
	return m.renderItem(p, inner) + " "
}

// --- Document ---

func (m Model) renderDoc(height, width int) []string {
	lines := make([]string, height)
	switch {
	case m.docView.err != nil:
		return m.renderNotice(height, activeTheme.DangerFg.Render(m.docView.err.Error()))
	case m.docView.loading:
		return m.renderNotice(height, activeTheme.HintText.Render("Loading "+m.docView.path+"…"))
	case len(m.docView.lines) == 0:
		return m.renderNotice(height, activeTheme.HintText.Render("(empty file)"))
	}

	ox, oy := m.doc.rowOffset()
	for i := range lines {
		y := oy + i
		if y < 0 || y >= len(m.docView.lines) {
			continue
		}
		lines[i] = visualWindow(m.docView.lines[y], ox, width)
	}
	return lines
}

// --- Status Bar ---

func (m Model) renderFooter() string {
	width := m.effectiveWidth()
	statusBar := activeTheme.StatusBar.Width(width).Render(m.statusText())
	help := m.help.ShortHelpView(screenKeyMap{screen: m.view}.ShortHelp())
	return statusBar + "\n" + help
}

func (m Model) statusText() string {
	if m.loadErr != nil && m.view != DocScreen {
		return activeTheme.DangerFg.Render(m.loadErr.Error())
	}
	if m.ui.message != "" {
		return m.ui.message
	}

	var parts []string
	if m.view == DocScreen {
		if n := len(m.docView.lines); n > 0 {
			_, oy := m.doc.rowOffset()
			parts = append(parts, fmt.Sprintf("ln %d/%d", min(oy+1, n), n))
		}
		return strings.Join(parts, " | ")
	}

	if cur, ok := m.selection.Current(); ok {
		parts = append(parts, fmt.Sprintf("%d/%d", m.ordinal(cur), m.catalog.Len()))
	} else {
		parts = append(parts, fmt.Sprintf("%d files", m.catalog.Len()))
	}
	if n := len(m.selection.Selected()); n > 1 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if m.view == GridScreen {
		parts = append(parts, fmt.Sprintf("zoom %.0f%%", m.zoom*100))
	}
	if !m.ui.mouseCapture {
		parts = append(parts, "copy mode")
	}
	return strings.Join(parts, " | ")
}

// ordinal is the 1-based position of p across all sections.
func (m Model) ordinal(p selection.IndexPath) int {
	n := 0
	for s := range p.Section {
		n += m.catalog.NumberOfItems(s)
	}
	return n + p.Item + 1
}

// --- Help ---

func (m Model) renderHelp() string {
	body := m.help.FullHelpView(screenKeyMap{screen: m.view}.FullHelp())
	title := activeTheme.BoldPrimary.Render("Keys") + activeTheme.HintText.Render("  ?/esc close")
	box := activeTheme.HelpOverlay.Render(title + "\n\n" + body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
