package tui

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	catppuccin "github.com/catppuccin/go"
)

// themeRole ties one style color to the palette entry it must come from.
type themeRole struct {
	field string
	got   func(Theme) color.Color
	want  func(catppuccin.Flavor) string
}

var browseRoles = []themeRole{
	{"Focus.Background", func(t Theme) color.Color { return t.Focus.GetBackground() }, func(f catppuccin.Flavor) string { return f.Surface1().Hex }},
	{"Focus.Foreground", func(t Theme) color.Color { return t.Focus.GetForeground() }, func(f catppuccin.Flavor) string { return f.Text().Hex }},
	{"Marked.Background", func(t Theme) color.Color { return t.Marked.GetBackground() }, func(f catppuccin.Flavor) string { return f.Surface0().Hex }},
	{"Marked.Foreground", func(t Theme) color.Color { return t.Marked.GetForeground() }, func(f catppuccin.Flavor) string { return f.Yellow().Hex }},
	{"SectionHeader.Foreground", func(t Theme) color.Color { return t.SectionHeader.GetForeground() }, func(f catppuccin.Flavor) string { return f.Mauve().Hex }},
	{"StatusBar.Background", func(t Theme) color.Color { return t.StatusBar.GetBackground() }, func(f catppuccin.Flavor) string { return f.Mantle().Hex }},
	{"ActiveTab.Foreground", func(t Theme) color.Color { return t.ActiveTab.GetForeground() }, func(f catppuccin.Flavor) string { return f.Sapphire().Hex }},
	{"HelpOverlay.Border", func(t Theme) color.Color { return t.HelpOverlay.GetBorderTopForeground() }, func(f catppuccin.Flavor) string { return f.Sapphire().Hex }},
	{"DangerFg.Foreground", func(t Theme) color.Color { return t.DangerFg.GetForeground() }, func(f catppuccin.Flavor) string { return f.Red().Hex }},
}

func TestThemeStylesUsePaletteRoles(t *testing.T) {
	for _, tc := range []struct {
		name   string
		flavor catppuccin.Flavor
		theme  Theme
	}{
		{"dark", catppuccin.Mocha, ThemeDark()},
		{"light", catppuccin.Latte, ThemeLight()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, role := range browseRoles {
				assertColorHex(t, role.field, role.got(tc.theme), normalizeHex(role.want(tc.flavor)))
			}
		})
	}
}

// Light terminals swap dim and hint text so unselectable rows stay legible.
func TestThemeDimAndHintSwapWithPolarity(t *testing.T) {
	dark, light := ThemeDark(), ThemeLight()

	assertColorHex(t, "dark DimText", dark.DimText.GetForeground(), normalizeHex(catppuccin.Mocha.Overlay1().Hex))
	assertColorHex(t, "dark HintText", dark.HintText.GetForeground(), normalizeHex(catppuccin.Mocha.Subtext0().Hex))
	assertColorHex(t, "light DimText", light.DimText.GetForeground(), normalizeHex(catppuccin.Latte.Subtext0().Hex))
	assertColorHex(t, "light HintText", light.HintText.GetForeground(), normalizeHex(catppuccin.Latte.Overlay1().Hex))
}

func TestThemeChromaStyleFollowsPolarity(t *testing.T) {
	if got := ThemeDark().ChromaStyleName; got != "catppuccin-mocha" {
		t.Fatalf("dark chroma style = %q", got)
	}
	if got := ThemeLight().ChromaStyleName; got != "catppuccin-latte" {
		t.Fatalf("light chroma style = %q", got)
	}
}

func TestThemeForBackground(t *testing.T) {
	dark := ThemeForBackground(true)
	light := ThemeForBackground(false)

	assertColorHex(t, "dark primary", dark.PrimaryFg.GetForeground(), colorHex(ThemeDark().PrimaryFg.GetForeground()))
	assertColorHex(t, "light primary", light.PrimaryFg.GetForeground(), colorHex(ThemeLight().PrimaryFg.GetForeground()))
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name string
		want Theme
	}{
		{name: "light", want: ThemeLight()},
		{name: "dark", want: ThemeDark()},
		{name: "auto", want: ThemeDark()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ThemeByName(tc.name)
			if got.ChromaStyleName != tc.want.ChromaStyleName {
				t.Fatalf("ThemeByName(%q) chroma style = %q, want %q", tc.name, got.ChromaStyleName, tc.want.ChromaStyleName)
			}
		})
	}
}

func assertColorHex(t *testing.T, field string, got color.Color, want string) {
	t.Helper()
	if gotHex := colorHex(got); gotHex != want {
		t.Fatalf("%s color mismatch: got %s want %s", field, gotHex, want)
	}
}

func colorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", (r>>8)&0xFF, (g>>8)&0xFF, (b>>8)&0xFF)
}

func normalizeHex(hex string) string {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if hex == "" {
		return ""
	}
	if !strings.HasPrefix(hex, "#") {
		return "#" + hex
	}
	return hex
}
