package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/frameclock"
	"github.com/daptify14/keynav/internal/input"
	"github.com/daptify14/keynav/internal/scroll"
	"github.com/daptify14/keynav/internal/selection"
)

// Update implements tea.Model by dispatching messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logMsg(msg)

	// Terminal background detection is cross-cutting and must be processed
	// before view-specific routing.
	if bgMsg, ok := msg.(tea.BackgroundColorMsg); ok {
		if m.cfg.Theme == "auto" {
			SetTheme(ThemeForBackground(bgMsg.IsDark()))
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.relayout()
		return m, nil
	case frameclock.TickMsg:
		return m.handleTick(msg)
	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)
	case docLoadedMsg:
		return m.handleDocLoaded(msg)
	case openedMsg:
		if msg.err != nil {
			m.ui.message = "Open " + msg.path + ": " + msg.err.Error()
		} else {
			m.ui.message = "Opened " + msg.path
		}
		return m, nil

	// Input messages
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// --- Frame ticks ---

func (m Model) handleTick(msg frameclock.TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Tick(msg) {
		return m, nil
	}
	for _, p := range m.panes() {
		p.settle()
	}
	return m, m.clock.Cmd()
}

// --- Async results ---

func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.loading = false
	m.loadErr = msg.err
	if msg.catalog != nil {
		m.catalog = msg.catalog
	}
	m.selection = newController(m.cfg.Selection)
	now := m.now()
	m.list.stop(now)
	m.grid.stop(now)
	m.relayout()
	m.ui.message = fmt.Sprintf("%d files", m.catalog.Len())

	if m.cfg.Selection.RequiresSelection && m.view != DocScreen {
		if first, ok := m.listNavigator().First(); ok {
			sink := m.sink()
			m.selection.Select(first, sink, sink)
		}
	}
	return m, m.animate()
}

func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.docGen || msg.path != m.docView.path {
		return m, nil
	}
	m.docView.loading = false
	m.docView.err = msg.err
	m.docView.lines, m.docView.width = nil, 0
	if msg.err == nil {
		m.docView.lines, m.docView.width = docLines(msg.content, msg.path)
	}
	m.doc.stop(m.now())
	m.relayout()
	lo, _ := m.doc.scroller.Geometry().OffsetRange()
	m.doc.scroller.ScrollTo(m.now(), lo, false)
	return m, nil
}

// --- Root key gate ---

func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.ui.showHelp {
		switch {
		case key.Matches(msg, HostKeys.Help), key.Matches(msg, HostKeys.Back):
			m.ui.showHelp = false
		case key.Matches(msg, HostKeys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// Messages last until the next key.
	m.ui.message = ""

	switch {
	case key.Matches(msg, HostKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, HostKeys.Help):
		m.ui.showHelp = true
		return m, nil
	case key.Matches(msg, HostKeys.Mouse):
		m.toggleMouseCapture()
		return m, nil
	case key.Matches(msg, HostKeys.Open):
		if path, ok := m.focusedPath(); ok {
			return m, openExternalCmd(path)
		}
		return m, nil
	}

	if m.view == DocScreen {
		return m.handleDocKeys(msg)
	}

	switch {
	case key.Matches(msg, HostKeys.Switch):
		return m.switchScreen(m.nextBrowseScreen())
	case key.Matches(msg, HostKeys.Reload):
		return m.reload()
	case key.Matches(msg, HostKeys.Hide):
		return m.hideCurrent()
	}

	if m.loading {
		return m, nil
	}

	action, ok := input.Classify(msg, m.cfg.Scroll.Paging)
	if !ok {
		return m, nil
	}
	if action.IsMove() {
		m.navigate(action.Direction, action.Step)
		return m, m.animate()
	}
	return m.handleCommand(action.Command)
}

// focusedPath is the open document, or the focused item on a browse screen.
func (m Model) focusedPath() (string, bool) {
	if m.view == DocScreen {
		return m.docView.path, m.docView.path != ""
	}
	p, ok := m.selection.Current()
	if !ok {
		return "", false
	}
	return m.catalog.Entry(p).Path, true
}

// navigate moves the selection. When no item lies in that direction the
// pane scrolls instead.
func (m Model) navigate(dir input.Direction, step input.Step) {
	sink := m.sink()
	if m.selection.Navigate(dir, step, m.navigator(), sink, sink) {
		return
	}
	m.activePane().scroller.Scroll(m.now(), dir, step)
}

func (m Model) handleCommand(cmd input.Command) (tea.Model, tea.Cmd) {
	sink := m.sink()
	switch cmd {
	case input.Clear:
		m.selection.Clear(sink)
	case input.Activate:
		if p, ok := m.selection.Activate(); ok {
			return m.openDoc(m.catalog.Entry(p).Path, &p)
		}
	case input.SelectAll:
		switch {
		case !m.cfg.Selection.Multiple:
			m.ui.message = "Multiple selection is off"
		case m.selection.SelectAll(m.catalog, m.catalog.Selectable):
			m.ui.message = fmt.Sprintf("%d selected", len(m.selection.Selected()))
		}
	case input.JumpToStart:
		if p, ok := m.listNavigator().First(); ok {
			m.selection.Select(p, sink, sink)
		}
	case input.JumpToEnd:
		if p, ok := m.listNavigator().Last(); ok {
			m.selection.Select(p, sink, sink)
		}
	case input.ZoomIn, input.ZoomOut, input.ZoomReset:
		if m.view != GridScreen {
			return m, nil
		}
		m = m.applyZoom(cmd)
	}
	return m, m.animate()
}

func (m Model) applyZoom(cmd input.Command) Model {
	zr := m.zoomRange()
	next := m.zoom
	switch cmd {
	case input.ZoomIn:
		next = zr.In(m.zoom)
	case input.ZoomOut:
		next = zr.Out(m.zoom)
	case input.ZoomReset:
		next = zr.Reset(m.zoom)
	}
	if next == m.zoom {
		return m
	}
	m.zoom = next
	m.grid.stop(m.now())
	m.relayout()
	m.ui.message = fmt.Sprintf("Zoom %.0f%%", m.zoom*100)
	m.revealCurrent()
	return m
}

// revealCurrent scrolls the active pane to the focused item when it is not
// fully visible.
func (m Model) revealCurrent() {
	p, ok := m.selection.Current()
	if !ok || m.activeLayout() == nil {
		return
	}
	sink := m.sink()
	if sink.VisibleRect().Contains(sink.FrameOf(p)) {
		return
	}
	sink.ScrollTo(p, scroll.PositionTop, false)
}

// --- Screens ---

func (m Model) nextBrowseScreen() Screen {
	for i, s := range browseTabs {
		if s == m.view {
			return browseTabs[(i+1)%len(browseTabs)]
		}
	}
	return browseTabs[0]
}

func (m Model) switchScreen(s Screen) (tea.Model, tea.Cmd) {
	if s == m.view {
		return m, nil
	}
	m.activePane().stop(m.now())
	m.drag = dragState{}
	m.view = s
	m.ui.message = ""
	m.revealCurrent()
	return m, m.animate()
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.gen++
	m.loading = true
	m.ui.message = "Reloading " + m.root
	return m, m.loadCatalogCmd()
}

// hideCurrent removes the focused item from the catalog. Files on disk are
// not touched.
func (m Model) hideCurrent() (tea.Model, tea.Cmd) {
	p, ok := m.selection.Current()
	if !ok {
		return m, nil
	}
	name := m.catalog.Entry(p).Name
	if !m.catalog.Remove(p) {
		return m, nil
	}
	m.selection.ItemRemoved(p, m.sink())
	m.relayout()
	m.ui.message = "Hid " + name
	return m, nil
}

// openDoc switches to the document screen and starts loading path.
func (m Model) openDoc(path string, origin *selection.IndexPath) (tea.Model, tea.Cmd) {
	returnTo := m.view
	if returnTo == DocScreen {
		returnTo = m.docView.returnTo
	}
	m.activePane().stop(m.now())
	m.docGen++
	m.docView = docState{path: path, loading: true, returnTo: returnTo, origin: origin}
	m.view = DocScreen
	m.relayout()
	return m, m.loadDocCmd(path)
}

// --- Document screen ---

func (m Model) handleDocKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, HostKeys.Back) {
		return m.closeDoc()
	}

	action, ok := input.Classify(msg, m.cfg.Scroll.Paging)
	if !ok {
		return m, nil
	}
	sc := m.doc.scroller
	now := m.now()
	switch {
	case action.IsMove():
		sc.Scroll(now, action.Direction, action.Step)
	case action.Command == input.JumpToStart:
		sc.Scroll(now, input.Backwards, input.End)
	case action.Command == input.JumpToEnd:
		sc.Scroll(now, input.Forwards, input.End)
	}
	return m, m.animate()
}

func (m Model) closeDoc() (tea.Model, tea.Cmd) {
	m.doc.stop(m.now())
	m.drag = dragState{}
	m.view = m.docView.returnTo
	if m.view == DocScreen {
		m.view = ListScreen
	}
	m.ui.message = ""

	// A reload while the document was open drops the selection; put it
	// back on the item the document came from.
	if o := m.docView.origin; o != nil {
		if _, ok := m.selection.Current(); !ok && selection.Contains(m.catalog, *o) && m.catalog.Selectable(*o) {
			sink := m.sink()
			m.selection.Select(*o, sink, sink)
			return m, m.animate()
		}
	}
	m.revealCurrent()
	return m, m.animate()
}
