package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/config"
	"github.com/daptify14/keynav/internal/frameclock"
	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
	"github.com/daptify14/keynav/internal/scroll"
	"github.com/daptify14/keynav/internal/selection"
)

// maxDocBytes caps how much of a file the document screen reads.
const maxDocBytes = 1 << 20

var errBinaryFile = errors.New("binary file")

// --- Model ---

// Model is the TUI model for browsing a directory with keyboard navigation.
type Model struct {
	opts Options
	cfg  config.Config
	view Screen
	root string
	gen  uint64 // catalog generation for stale async message detection

	catalog *Catalog
	loading bool
	loadErr error

	selection *selection.Controller
	clock     *frameclock.Clock
	list      *pane
	grid      *pane
	doc       *pane
	lists     listLayout
	grids     gridLayout
	zoom      float64

	docView docState
	docGen  uint64
	drag    dragState

	help     help.Model
	iconMode IconMode

	width  int
	height int

	ui       uiState
	debugLog *slog.Logger
	now      func() time.Time
}

// NewModel creates a model for opts. Zero config fields are filled by
// config.Config.Normalize.
func NewModel(opts Options) Model {
	cfg := opts.Config
	cfg.Normalize()

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	iconMode := opts.IconMode
	if iconMode == "" {
		iconMode = IconModeNerdFont
	}

	root := normalizePath(opts.Root)
	if root == "" {
		root = "."
	}

	view := opts.InitialScreen
	if view == DocScreen {
		view = ListScreen
	}

	metrics := scroll.Metrics{
		LineHeight: cfg.Scroll.LineHeight,
		Layout:     layoutDirection(cfg.Scroll.LayoutDirection),
	}
	maxDuration := cfg.Animation.MaxDuration

	m := Model{
		opts:      opts,
		cfg:       cfg,
		view:      view,
		root:      root,
		catalog:   newCatalog(root, nil),
		loading:   true,
		selection: newController(cfg.Selection),
		clock:     frameclock.New(cfg.Animation.FrameRate),
		list:      newPane("list", metrics, maxDuration, opts.DebugLog),
		grid:      newPane("grid", metrics, maxDuration, opts.DebugLog),
		doc:       newPane("doc", metrics, maxDuration, opts.DebugLog),
		zoom:      1,
		help:      help.New(),
		iconMode:  iconMode,
		ui:        uiState{mouseCapture: true},
		debugLog:  opts.DebugLog,
		now:       now,
	}
	if opts.DocPath != "" {
		m.docView = docState{path: opts.DocPath, loading: true, returnTo: view}
		m.view = DocScreen
	}
	SetTheme(ThemeByName(cfg.Theme))
	m.relayout()
	return m
}

func newController(cfg config.Selection) *selection.Controller {
	return &selection.Controller{
		RequiresSelection: cfg.RequiresSelection,
		Multiple:          cfg.Multiple,
	}
}

func layoutDirection(d config.LayoutDirection) input.LayoutDirection {
	if d == config.LayoutRTL {
		return input.RightToLeft
	}
	return input.LeftToRight
}

func endPolicy(p config.EndPolicy) selection.EndPolicy {
	if p == config.EndClosest {
		return selection.EndClosest
	}
	return selection.EndFarthest
}

// Init implements tea.Model by returning the initial command batch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCatalogCmd()}
	if m.cfg.Theme == "auto" {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}
	if m.view == DocScreen {
		cmds = append(cmds, m.loadDocCmd(m.docView.path))
	}
	return tea.Batch(cmds...)
}

// --- Async loads ---

func (m Model) loadCatalogCmd() tea.Cmd {
	gen := m.gen
	root := m.root
	walk := m.cfg.Walk
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), walkTimeout)
		defer cancel()
		cat, stats, err := walkCatalog(ctx, root, walk)
		return catalogLoadedMsg{catalog: cat, stats: stats, err: err, gen: gen}
	}
}

func (m Model) loadDocCmd(path string) tea.Cmd {
	gen := m.docGen
	return func() tea.Msg {
		content, err := readDoc(path)
		return docLoadedMsg{path: path, content: content, err: err, gen: gen}
	}
}

// readDoc reads up to maxDocBytes of a text file.
func readDoc(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxDocBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%s: %w", path, errBinaryFile)
	}
	return string(data), nil
}

// --- Layout ---

// relayout rebuilds the pane layouts for the current catalog, size and zoom.
func (m *Model) relayout() {
	width := m.effectiveWidth()
	bounds := m.paneBounds()
	now := m.now()

	m.lists = newListLayout(m.catalog, width)
	m.list.resize(now, bounds, m.lists.ContentSize())

	cell := geom.Sz(float64(m.cfg.Grid.CellWidth), float64(m.cfg.Grid.CellHeight))
	m.grids = newGridLayout(m.catalog, width, cell, m.zoom, layoutDirection(m.cfg.Scroll.LayoutDirection))
	m.grid.resize(now, bounds, m.grids.ContentSize())

	m.doc.resize(now, bounds, geom.Sz(float64(m.docView.width), float64(len(m.docView.lines))))
}

func (m Model) panes() []*pane { return []*pane{m.list, m.grid, m.doc} }

// activePane returns the pane for the current screen.
func (m Model) activePane() *pane {
	switch m.view {
	case GridScreen:
		return m.grid
	case DocScreen:
		return m.doc
	default:
		return m.list
	}
}

// activeLayout returns the layout of the current browse screen, or nil on
// the document screen.
func (m Model) activeLayout() paneLayout {
	switch m.view {
	case ListScreen:
		return m.lists
	case GridScreen:
		return m.grids
	default:
		return nil
	}
}

func (m Model) sink() paneSink {
	return paneSink{pane: m.activePane(), layout: m.activeLayout(), now: m.now(), log: m.debugLog}
}

func (m Model) navigator() selection.Navigator {
	if m.view == GridScreen {
		return selection.GridNavigator{
			Layout:         m.grids,
			CanSelect:      m.catalog.Selectable,
			SearchDistance: m.cfg.Grid.SearchDistance,
			EndPolicy:      endPolicy(m.cfg.Grid.EndPolicy),
		}
	}
	return m.listNavigator()
}

func (m Model) listNavigator() selection.ListNavigator {
	return selection.ListNavigator{
		Collection: m.catalog,
		CanSelect:  m.catalog.Selectable,
		Axis:       input.Vertical,
		PageItems:  m.paneHeight(),
	}
}

func (m Model) zoomRange() scroll.ZoomRange {
	return scroll.ZoomRange{Min: m.cfg.Scroll.ZoomMin, Max: m.cfg.Scroll.ZoomMax}
}

// animate subscribes every moving pane to the frame clock.
func (m Model) animate() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.panes() {
		if cmd := p.animate(m.clock); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// breadcrumbParts returns the breadcrumb trail for the current view.
func (m Model) breadcrumbParts() []string {
	if len(m.opts.Breadcrumb) > 0 {
		return m.opts.Breadcrumb
	}
	if m.view == DocScreen {
		return []string{appName, m.view.String(), m.docView.path}
	}
	return []string{appName, m.view.String(), m.root}
}

// Screen returns the current top-level screen.
func (m Model) Screen() Screen { return m.view }

func (m *Model) toggleMouseCapture() {
	m.ui.mouseCapture = !m.ui.mouseCapture
	if m.ui.mouseCapture {
		m.ui.message = "Mouse capture enabled (wheel + drag scrolling)"
		return
	}
	m.ui.message = "Mouse capture disabled (drag to select/copy)"
}
