package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	devicons "github.com/epilande/go-devicons"
)

// IconMode controls which icon set the TUI uses.
type IconMode string

// Icon mode values controlling which icon set is displayed.
const (
	IconModeNerdFont IconMode = "nerdfont"
	IconModeUnicode  IconMode = "unicode"
	IconModeNone     IconMode = "none"
)

var validIconModes = []IconMode{IconModeNerdFont, IconModeUnicode, IconModeNone}

// ParseIconMode validates and normalizes an icon mode string.
func ParseIconMode(s string) (IconMode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return IconModeNerdFont, nil
	}
	if m := IconMode(s); slices.Contains(validIconModes, m) {
		return m, nil
	}
	return "", fmt.Errorf("invalid icons mode %q (valid: nerdfont, unicode, none)", s)
}

const (
	nerdFontDirIcon    = "\uf115"     // nf-fa-folder_open_o
	unicodeDirIcon     = "\U0001F4C1" // 📁
	unicodeDefaultIcon = "\U0001F4C4" // 📄
)

// unicodeIcons maps file extensions to standard Unicode symbols.
var unicodeIcons = map[string]string{
	".md":   "\U0001F4DD", // 📝
	".png":  "\U0001F5BC", // 🖼
	".jpg":  "\U0001F5BC", // 🖼
	".svg":  "\U0001F5BC", // 🖼
	".zip":  "\U0001F4E6", // 📦
	".gz":   "\U0001F4E6", // 📦
	".yaml": "\u2699",     // ⚙
	".yml":  "\u2699",     // ⚙
	".toml": "\u2699",     // ⚙
	".json": "\u2699",     // ⚙
	".sh":   "\u25B6",     // ▶
	".go":   "\u25C6",     // ◆
}

// icon is a glyph plus an optional hex color from the icon set.
type icon struct {
	glyph string
	color string
}

func fileIcon(name string, mode IconMode) icon {
	switch mode {
	case IconModeUnicode:
		if g, ok := unicodeIcons[strings.ToLower(filepath.Ext(name))]; ok {
			return icon{glyph: g}
		}
		return icon{glyph: unicodeDefaultIcon}
	case IconModeNerdFont:
		style := devicons.IconForPath(name)
		return icon{glyph: style.Icon, color: style.Color}
	default:
		return icon{}
	}
}

func dirIcon(mode IconMode) icon {
	switch mode {
	case IconModeUnicode:
		return icon{glyph: unicodeDirIcon}
	case IconModeNerdFont:
		return icon{glyph: nerdFontDirIcon}
	default:
		return icon{}
	}
}

// render returns the styled glyph followed by a space, or "" when there is
// no glyph. Plain icons inherit the surrounding style.
func (i icon) render(plain bool, fallback lipgloss.Style) string {
	if i.glyph == "" {
		return ""
	}
	if plain {
		return i.glyph + " "
	}
	if i.color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(i.color)).Render(i.glyph) + " "
	}
	return fallback.Render(i.glyph) + " "
}
