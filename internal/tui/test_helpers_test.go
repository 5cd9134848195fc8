package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/keynav/internal/config"
)

// ── Clock ───────────────────────────────────────────────────────────

var testEpoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// fakeClock is a manually advanced time source for animation tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// ── Model Builder ───────────────────────────────────────────────────

// testRoot is the catalog root used by WithCatalog. Nothing is read from it.
const testRoot = "/proj"

// testModelConfig holds configuration for building a test Model.
// Options populate this struct; newTestModel reads it once to construct
// the Model. This avoids order-dependent option footguns.
type testModelConfig struct {
	view     Screen
	width    int
	height   int
	iconMode IconMode
	cfg      config.Config
	clock    *fakeClock
	postInit []func(*Model)
}

// TestModelOption configures a test Model via testModelConfig.
type TestModelOption func(*testModelConfig)

func WithView(v Screen) TestModelOption {
	return func(c *testModelConfig) { c.view = v }
}

func WithSize(w, h int) TestModelOption {
	return func(c *testModelConfig) { c.width = w; c.height = h }
}

func WithIconMode(mode IconMode) TestModelOption {
	return func(c *testModelConfig) { c.iconMode = mode }
}

func WithConfig(fn func(*config.Config)) TestModelOption {
	return func(c *testModelConfig) { fn(&c.cfg) }
}

func WithClock(clock *fakeClock) TestModelOption {
	return func(c *testModelConfig) { c.clock = clock }
}

// WithCatalog delivers a catalog of rel paths under testRoot as if the
// directory walk had finished.
func WithCatalog(rels ...string) TestModelOption {
	return func(c *testModelConfig) {
		c.postInit = append(c.postInit, func(m *Model) {
			paths := make([]string, len(rels))
			for i, rel := range rels {
				paths[i] = filepath.Join(testRoot, rel)
			}
			next, _ := m.handleCatalogLoaded(catalogLoadedMsg{catalog: newCatalog(testRoot, paths), gen: m.gen})
			*m = next.(Model)
		})
	}
}

// sampleFiles is the small project most tests browse. ".env" is hidden.
var sampleFiles = []string{"README.md", "main.go", "docs/guide.md", ".env"}

// newTestModel creates a List screen Model, 40x12, with icons off and a
// fake clock at testEpoch. Apply options to customize.
//
// Options are order-independent: the config struct is populated first, then the
// Model is built once from the final config. Post-construction mutations
// (WithCatalog) run after Model creation.
func newTestModel(opts ...TestModelOption) Model {
	cfg := &testModelConfig{
		view:     ListScreen,
		width:    40,
		height:   12,
		iconMode: IconModeNone,
		cfg:      config.Default(),
	}
	cfg.cfg.Theme = "dark"

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = &fakeClock{t: testEpoch}
	}

	m := NewModel(Options{
		Root:          testRoot,
		InitialScreen: cfg.view,
		Config:        cfg.cfg,
		IconMode:      cfg.iconMode,
		Now:           cfg.clock.Now,
	})
	m.width = cfg.width
	m.height = cfg.height
	m.help.SetWidth(cfg.width)
	m.relayout()

	for _, fn := range cfg.postInit {
		fn(&m)
	}

	return m
}

// ── Key Factories ───────────────────────────────────────────────────

// runeKey creates a tea.KeyPressMsg for a rune string (e.g., "j", "?", "G").
func runeKey(r string) tea.KeyPressMsg {
	runes := []rune(r)
	return tea.KeyPressMsg{Code: runes[0], Text: r}
}

// specialKey creates a tea.KeyPressMsg for a special key code (e.g., tea.KeyEsc).
func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// ctrlKey creates a tea.KeyPressMsg for a ctrl+key combo (e.g., ctrlKey('d') for ctrl+d).
func ctrlKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

// ── Dispatch Helpers ────────────────────────────────────────────────

// sendKey dispatches a tea.KeyPressMsg through Model.Update and asserts the
// returned value is a Model.
func sendKey(t *testing.T, m Model, key tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(key)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", result)
	}
	return updated, cmd
}

// sendKeys sends each key in order and drops the commands.
func sendKeys(t *testing.T, m Model, keys ...tea.KeyPressMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = sendKey(t, m, k)
	}
	return m
}

// sendMsg dispatches any tea.Msg through Model.Update and asserts the
// returned value is a Model.
func sendMsg(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", result)
	}
	return updated, cmd
}

// ── Assertion Helpers ───────────────────────────────────────────────

// isQuitCmd checks whether a tea.Cmd produces a tea.QuitMsg.
func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg := cmd()
	_, ok := msg.(tea.QuitMsg)
	return ok
}

// assertRenderedLinesFitWidth checks that no ANSI-aware line exceeds width.
func assertRenderedLinesFitWidth(t *testing.T, output string, width int) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for i, line := range lines {
		if got := ansi.StringWidth(line); got > width {
			t.Fatalf("line %d width=%d exceeds maxWidth=%d: %q", i+1, got, width, line)
		}
	}
}

// currentName returns the name of the focused item, or "" when nothing is
// focused.
func currentName(m Model) string {
	p, ok := m.selection.Current()
	if !ok {
		return ""
	}
	return m.catalog.Entry(p).Name
}

// ── Golden Test Helpers ─────────────────────────────────────────────

// stripForGolden removes ANSI escape codes and trailing whitespace from
// rendered output. Lipgloss often pads lines to full width with spaces;
// stripping trailing whitespace prevents golden file mismatches from
// invisible padding changes.
func stripForGolden(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
