package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/selection"
)

// Screen represents the current top-level screen of the TUI.
type Screen int

// Screen values for top-level TUI screens.
const (
	ListScreen Screen = iota // sectioned file list
	GridScreen               // icon grid, zoomable
	DocScreen                // highlighted file content
)

var screenNames = [...]string{"List", "Grid", "Doc"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "Unknown"
	}
	return screenNames[s]
}

// ParseScreen maps a screen name to its Screen (case-insensitive).
func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Screen(i), nil
		}
	}
	return 0, fmt.Errorf("invalid screen %q (valid: list, grid, doc)", name)
}

// browseTabs are the screens reachable with the tab key.
var browseTabs = []Screen{ListScreen, GridScreen}

// docState is the file shown on the document screen.
type docState struct {
	path    string
	lines   []string // highlighted, one per row
	width   int      // widest line in cells
	loading bool
	err     error
	// returnTo is the browse screen esc goes back to.
	returnTo Screen
	// origin is the catalog item the document was opened from, if any.
	origin *selection.IndexPath
}

// dragState tracks a left-button drag on the active pane.
type dragState struct {
	active bool
	moved  bool
	lastX  int
	lastY  int
	lastAt time.Time
	// velocity is the latest drag speed in cells per second, in offset
	// space.
	velocity geom.Point
}

type uiState struct {
	message      string
	showHelp     bool
	mouseCapture bool
}
