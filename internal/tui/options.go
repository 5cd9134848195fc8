package tui

import (
	"log/slog"
	"time"

	"github.com/daptify14/keynav/internal/config"
)

// Options configures the TUI model.
type Options struct {
	// Root is the directory the list and grid screens browse.
	Root string

	// DocPath, when set, opens this file on the document screen at startup.
	DocPath string

	// InitialScreen is the screen shown first. It is ignored when DocPath is
	// set.
	InitialScreen Screen

	// Config carries scrolling, grid, selection and walk settings. A zero
	// value is replaced with config.Default().
	Config config.Config

	// IconMode controls which icon set to display next to filenames.
	// Valid values: IconModeNerdFont (default), IconModeUnicode, IconModeNone.
	IconMode IconMode

	// Breadcrumb overrides the navigation breadcrumb trail.
	// Example: ["keynav", "List"]
	Breadcrumb []string

	// DebugLog, when non-nil, receives structured JSON logs of every tea.Msg
	// processed by Update() except frame ticks. Set via the KEYNAV_DEBUG
	// environment variable.
	DebugLog *slog.Logger

	// Now is the time source for animations. Defaults to time.Now.
	Now func() time.Time
}
