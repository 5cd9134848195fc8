package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func visualTruncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

func visualPad(s string, targetWidth int) string {
	w := ansi.StringWidth(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// visualWindow returns the cells [left, left+width) of s, padded to width.
func visualWindow(s string, left, width int) string {
	if width <= 0 {
		return ""
	}
	return visualPad(ansi.Cut(s, left, left+width), width)
}

// roundCell converts a fractional offset to the cell it renders at.
func roundCell(v float64) int {
	return int(math.Round(v))
}
