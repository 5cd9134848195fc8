package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	catppuccin "github.com/catppuccin/go"
)

// Theme holds the semantic colors and pre-computed styles for the TUI.
type Theme struct {
	Primary color.Color
	Accent  color.Color
	Danger  color.Color
	Dim     color.Color

	// Focus is the current item; Marked is any other selected item.
	Focus    lipgloss.Style
	Marked   lipgloss.Style
	Normal   lipgloss.Style
	DimText  lipgloss.Style
	HintText lipgloss.Style

	SectionHeader lipgloss.Style
	BoldPrimary   lipgloss.Style
	PrimaryFg     lipgloss.Style
	DangerFg      lipgloss.Style

	Branch    lipgloss.Style
	StatusBar lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	HelpOverlay lipgloss.Style

	ChromaStyleName string
}

var activeTheme = ThemeDark()

// SetTheme sets the active global theme.
func SetTheme(t Theme) { activeTheme = t }

// ThemeDark returns the dark theme (Catppuccin Mocha palette).
func ThemeDark() Theme { return newTheme(catppuccin.Mocha, true) }

// ThemeLight returns the light theme (Catppuccin Latte palette).
func ThemeLight() Theme { return newTheme(catppuccin.Latte, false) }

// ThemeForBackground returns the appropriate theme for the terminal background.
func ThemeForBackground(isDark bool) Theme {
	if isDark {
		return ThemeDark()
	}
	return ThemeLight()
}

// ThemeByName resolves the config theme setting. "auto" starts dark and
// follows the terminal background once it is reported.
func ThemeByName(name string) Theme {
	if name == "light" {
		return ThemeLight()
	}
	return ThemeDark()
}

// textForegrounds returns normal, dim and hint text colors for the terminal
// polarity. Light terminals swap dim and hint for contrast.
func textForegrounds(flavor catppuccin.Flavor, isDark bool) (normal, dim, hint color.Color) {
	normal = lipgloss.Color(flavor.Text().Hex)
	if isDark {
		return normal, lipgloss.Color(flavor.Overlay1().Hex), lipgloss.Color(flavor.Subtext0().Hex)
	}
	return normal, lipgloss.Color(flavor.Subtext0().Hex), lipgloss.Color(flavor.Overlay1().Hex)
}

func newTheme(flavor catppuccin.Flavor, isDark bool) Theme {
	normal, dim, hint := textForegrounds(flavor, isDark)
	primary := lipgloss.Color(flavor.Sapphire().Hex)
	accent := lipgloss.Color(flavor.Yellow().Hex)
	danger := lipgloss.Color(flavor.Red().Hex)
	secondary := lipgloss.Color(flavor.Overlay0().Hex)
	focusBg := lipgloss.Color(flavor.Surface1().Hex)
	markedBg := lipgloss.Color(flavor.Surface0().Hex)

	chromaStyle := "catppuccin-mocha"
	if !isDark {
		chromaStyle = "catppuccin-latte"
	}

	t := Theme{
		Primary: primary,
		Accent:  accent,
		Danger:  danger,
		Dim:     dim,

		ChromaStyleName: chromaStyle,
	}

	t.Focus = lipgloss.NewStyle().
		Background(focusBg).
		Foreground(normal).
		Bold(true)
	t.Marked = lipgloss.NewStyle().
		Background(markedBg).
		Foreground(accent)
	t.Normal = lipgloss.NewStyle().Foreground(normal)
	t.DimText = lipgloss.NewStyle().Foreground(dim)
	t.HintText = lipgloss.NewStyle().Foreground(hint)

	t.SectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(flavor.Mauve().Hex))
	t.BoldPrimary = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.PrimaryFg = lipgloss.NewStyle().Foreground(primary)
	t.DangerFg = lipgloss.NewStyle().Foreground(danger)

	t.Branch = lipgloss.NewStyle().Foreground(secondary)
	t.StatusBar = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Mantle().Hex)).
		Foreground(normal).
		Padding(0, 1)

	t.ActiveTab = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary).
		Underline(true)
	t.InactiveTab = lipgloss.NewStyle().Foreground(dim)

	t.HelpOverlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 2)

	return t
}
