package tui

import (
	"errors"
	"testing"
)

func TestLookupOpener(t *testing.T) {
	found := func(string) (string, error) { return "/usr/bin/x", nil }
	missing := func(string) (string, error) { return "", errors.New("not found") }
	gui := func(k string) string {
		if k == "DISPLAY" {
			return ":0"
		}
		return ""
	}
	headless := func(string) string { return "" }

	tests := []struct {
		name     string
		goos     string
		lookPath func(string) (string, error)
		getenv   func(string) string
		want     opener
	}{
		{"darwin", "darwin", found, headless, opener{Command: "open"}},
		{"linux with display", "linux", found, gui, opener{Command: "xdg-open"}},
		{"linux headless", "linux", found, headless, opener{Reason: "no GUI session detected"}},
		{"linux missing xdg-open", "linux", missing, gui, opener{Reason: "xdg-open command not found"}},
		{"windows", "windows", found, gui, opener{Reason: "unsupported platform windows"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupOpener(tt.goos, tt.lookPath, tt.getenv); got != tt.want {
				t.Fatalf("lookupOpener() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOpenedMsgSetsStatus(t *testing.T) {
	m := newTestModel(WithCatalog(sampleFiles...))

	m, _ = sendMsg(t, m, openedMsg{path: "/proj/main.go", err: errors.New("no GUI session detected")})
	if m.ui.message != "Open /proj/main.go: no GUI session detected" {
		t.Fatalf("message = %q", m.ui.message)
	}
	m, _ = sendMsg(t, m, openedMsg{path: "/proj/main.go"})
	if m.ui.message != "Opened /proj/main.go" {
		t.Fatalf("message = %q", m.ui.message)
	}
}

func TestOpenKeyNeedsFocus(t *testing.T) {
	m := newTestModel(WithCatalog(sampleFiles...))

	if _, cmd := sendKey(t, m, runeKey("o")); cmd != nil {
		t.Fatal("open without a focused item should do nothing")
	}
	m = sendKeys(t, m, runeKey("j"))
	if _, cmd := sendKey(t, m, runeKey("o")); cmd == nil {
		t.Fatal("open should return a command for the focused item")
	}
}
