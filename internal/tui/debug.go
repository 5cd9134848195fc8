package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/frameclock"
)

// logMsg logs a tea.Msg to the debug logger if one is configured.
// This is a no-op when debugLog is nil (the common case).
func (m Model) logMsg(msg tea.Msg) {
	if m.debugLog == nil {
		return
	}
	// Frame ticks arrive up to frame_rate times a second.
	if _, ok := msg.(frameclock.TickMsg); ok {
		return
	}
	m.debugLog.Info("msg",
		"type", fmt.Sprintf("%T", msg),
		"detail", formatMsgDetail(msg),
	)
}

// formatMsgDetail extracts key fields from known message types for readable log output.
// Unknown types log their type name only; %#v could leak the environment
// carried by tea.EnvMsg.
func formatMsgDetail(msg tea.Msg) string {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return msg.String()
	case tea.WindowSizeMsg:
		return fmt.Sprintf("%dx%d", msg.Width, msg.Height)
	case tea.MouseClickMsg:
		return fmt.Sprintf("x=%d y=%d", msg.X, msg.Y)
	case tea.MouseWheelMsg:
		return fmt.Sprintf("x=%d y=%d button=%s", msg.X, msg.Y, msg.Button)
	case tea.MouseMotionMsg:
		return fmt.Sprintf("x=%d y=%d", msg.X, msg.Y)
	case tea.MouseReleaseMsg:
		return fmt.Sprintf("x=%d y=%d", msg.X, msg.Y)
	case tea.BackgroundColorMsg:
		return fmt.Sprintf("dark=%t", msg.IsDark())

	case catalogLoadedMsg:
		return genErr(msg.gen, msg.err, fmt.Sprintf("files=%d elapsed=%s terminated=%s",
			msg.stats.files, msg.stats.elapsed, msg.stats.terminated))
	case docLoadedMsg:
		return genErr(msg.gen, msg.err, fmt.Sprintf("path=%q bytes=%d", msg.path, len(msg.content)))
	case openedMsg:
		if msg.err != nil {
			return fmt.Sprintf("path=%q err=%q", msg.path, msg.err.Error())
		}
		return fmt.Sprintf("path=%q", msg.path)

	default:
		return ""
	}
}

func genErr(gen uint64, err error, extra string) string {
	if err != nil {
		return fmt.Sprintf("gen=%d err=%q %s", gen, err.Error(), extra)
	}
	return fmt.Sprintf("gen=%d %s", gen, extra)
}
