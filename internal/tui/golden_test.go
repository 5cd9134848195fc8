package tui

// WARNING: github.com/charmbracelet/x/exp/golden is a pre-v1 experimental
// package. Its API may change in future releases. Pin the module version in
// go.mod and review changelogs before upgrading.

import (
	"testing"

	"github.com/charmbracelet/x/exp/golden"
)

// renderScreen renders the header and pane, leaving out the footer whose
// help line depends on terminal width.
func renderScreen(m Model) string {
	return stripForGolden(m.renderHeader() + "\n" + m.renderBody())
}

// ── List ────────────────────────────────────────────────────────────

func TestGoldenListScreen(t *testing.T) {
	m := newTestModel(WithCatalog(sampleFiles...))
	m = sendKeys(t, m, runeKey("j"), runeKey("j"))
	golden.RequireEqual(t, []byte(renderScreen(m)))
}

// ── Grid ────────────────────────────────────────────────────────────

func TestGoldenGridScreen(t *testing.T) {
	m := newTestModel(WithView(GridScreen), WithCatalog(sampleFiles...))
	golden.RequireEqual(t, []byte(renderScreen(m)))
}

// ── Document ────────────────────────────────────────────────────────

func TestGoldenDocScreen(t *testing.T) {
	m := newTestModel(WithCatalog(sampleFiles...), WithSize(50, 12))
	m.docGen++
	m.docView = docState{path: "/proj/notes.keynavunknown", loading: true, returnTo: ListScreen}
	m.view = DocScreen
	m, _ = sendMsg(t, m, docLoadedMsg{
		path:    m.docView.path,
		content: "first line\n\tindented\nthird\n",
		gen:     m.docGen,
	})
	golden.RequireEqual(t, []byte(renderScreen(m)))
}
