package tui

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"sync"

	tea "charm.land/bubbletea/v2"
)

// opener is the system command that hands a path to its default application.
type opener struct {
	Command string
	Reason  string // why Command is empty
}

var (
	cachedOpener opener
	openerOnce   sync.Once
)

func systemOpener() opener {
	openerOnce.Do(func() {
		cachedOpener = lookupOpener(runtime.GOOS, exec.LookPath, os.Getenv)
	})
	return cachedOpener
}

func lookupOpener(goos string, lookPath func(string) (string, error), getenv func(string) string) opener {
	var name string
	switch goos {
	case "darwin":
		name = "open"
	case "linux", "freebsd", "openbsd":
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return opener{Reason: "no GUI session detected"}
		}
		name = "xdg-open"
	default:
		return opener{Reason: "unsupported platform " + goos}
	}
	if _, err := lookPath(name); err != nil {
		return opener{Reason: name + " command not found"}
	}
	return opener{Command: name}
}

// openExternalCmd starts the system opener for path without waiting for it.
func openExternalCmd(path string) tea.Cmd {
	return func() tea.Msg {
		o := systemOpener()
		if o.Command == "" {
			return openedMsg{path: path, err: errors.New(o.Reason)}
		}
		return openedMsg{path: path, err: exec.Command(o.Command, path).Start()}
	}
}
