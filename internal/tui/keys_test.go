package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/input"
)

func TestHostKeys_MatchKeys(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
		want    bool
	}{
		{"q matches Quit", tea.KeyPressMsg{Code: 'q', Text: "q"}, HostKeys.Quit, true},
		{"ctrl+c matches Quit", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, HostKeys.Quit, true},
		{"? matches Help", tea.KeyPressMsg{Code: '?', Text: "?"}, HostKeys.Help, true},
		{"KeyTab matches Switch", tea.KeyPressMsg{Code: tea.KeyTab}, HostKeys.Switch, true},
		{"KeyEscape matches Back", tea.KeyPressMsg{Code: tea.KeyEscape}, HostKeys.Back, true},
		{"x matches Hide", tea.KeyPressMsg{Code: 'x', Text: "x"}, HostKeys.Hide, true},
		{"r matches Reload", tea.KeyPressMsg{Code: 'r', Text: "r"}, HostKeys.Reload, true},
		{"o matches Open", tea.KeyPressMsg{Code: 'o', Text: "o"}, HostKeys.Open, true},
		{"m matches Mouse", tea.KeyPressMsg{Code: 'm', Text: "m"}, HostKeys.Mouse, true},
		{"shift+tab does not match Switch", tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, HostKeys.Switch, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Matches(tt.msg, tt.binding); got != tt.want {
				t.Errorf("key.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHostKeys_DoNotShadowNavigation(t *testing.T) {
	host := []key.Binding{HostKeys.Quit, HostKeys.Help, HostKeys.Switch, HostKeys.Hide, HostKeys.Reload, HostKeys.Open, HostKeys.Mouse}
	for _, r := range []string{"h", "j", "k", "l", "g", "G", "+", "-", "0"} {
		msg := runeKey(r)
		if _, ok := input.Classify(msg, false); !ok {
			t.Fatalf("%q should classify as navigation input", r)
		}
		for _, b := range host {
			if key.Matches(msg, b) {
				t.Errorf("%q is taken by host binding %q", r, b.Help().Key)
			}
		}
	}
}

func TestScreenKeyMap_FullHelp(t *testing.T) {
	hasZoom := func(groups [][]key.Binding) bool {
		for _, g := range groups {
			for _, b := range g {
				if b.Help().Desc == input.Keys.ZoomIn.Help().Desc {
					return true
				}
			}
		}
		return false
	}

	if !hasZoom(screenKeyMap{screen: GridScreen}.FullHelp()) {
		t.Error("grid help should list zoom keys")
	}
	if hasZoom(screenKeyMap{screen: ListScreen}.FullHelp()) {
		t.Error("list help should not list zoom keys")
	}
	if hasZoom(screenKeyMap{screen: DocScreen}.FullHelp()) {
		t.Error("document help should not list zoom keys")
	}

	for _, s := range []Screen{ListScreen, GridScreen, DocScreen} {
		// Narrow terminals drop trailing columns, so quit lives in the first.
		first := screenKeyMap{screen: s}.FullHelp()[0]
		if first[len(first)-1].Help().Key != HostKeys.Quit.Help().Key {
			t.Errorf("%s help should list quit at the end of the first column", s)
		}
		if len(screenKeyMap{screen: s}.ShortHelp()) == 0 {
			t.Errorf("%s short help is empty", s)
		}
	}
}
