package tui

import (
	"testing"
)

func TestParseIconMode(t *testing.T) {
	tests := []struct {
		input   string
		want    IconMode
		wantErr bool
	}{
		{"nerdfont", IconModeNerdFont, false},
		{"unicode", IconModeUnicode, false},
		{"none", IconModeNone, false},
		{"NERDFONT", IconModeNerdFont, false},
		{"  unicode  ", IconModeUnicode, false},
		{"", IconModeNerdFont, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIconMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileIcon(t *testing.T) {
	t.Run("none mode returns empty", func(t *testing.T) {
		if got := fileIcon("main.go", IconModeNone); got.glyph != "" {
			t.Fatalf("expected empty, got %q", got.glyph)
		}
		if got := dirIcon(IconModeNone); got.glyph != "" {
			t.Fatalf("expected empty, got %q", got.glyph)
		}
	})

	t.Run("unicode mode returns unicode glyphs", func(t *testing.T) {
		icon := fileIcon("readme.md", IconModeUnicode)
		if icon.glyph == "" {
			t.Fatal("expected non-empty icon for .md file in unicode mode")
		}
		if icon == fileIcon("image.png", IconModeUnicode) {
			t.Fatal("expected different icons for .md and .png")
		}
		if icon.color != "" {
			t.Fatalf("unicode icons carry no color, got %q", icon.color)
		}
	})

	t.Run("unicode mode dir returns folder icon", func(t *testing.T) {
		if got := dirIcon(IconModeUnicode); got.glyph != unicodeDirIcon {
			t.Fatalf("expected unicode dir icon, got %q", got.glyph)
		}
	})

	t.Run("unicode mode unknown extension returns default", func(t *testing.T) {
		if got := fileIcon("file.xyz", IconModeUnicode); got.glyph != unicodeDefaultIcon {
			t.Fatalf("expected default unicode icon, got %q", got.glyph)
		}
	})

	t.Run("nerdfont mode returns glyph and hex color", func(t *testing.T) {
		icon := fileIcon("main.go", IconModeNerdFont)
		if icon.glyph == "" {
			t.Fatal("expected non-empty icon for .go file in nerdfont mode")
		}
		if icon.color == "" || icon.color[0] != '#' {
			t.Fatalf("expected hex color starting with #, got %q", icon.color)
		}
	})

	t.Run("nerdfont mode dir returns folder icon", func(t *testing.T) {
		if got := dirIcon(IconModeNerdFont); got.glyph != nerdFontDirIcon {
			t.Fatalf("expected nerdfont dir icon, got %q", got.glyph)
		}
	})
}

func TestIconRender(t *testing.T) {
	t.Run("empty glyph renders nothing", func(t *testing.T) {
		if got := (icon{}).render(false, activeTheme.Normal); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})

	t.Run("plain keeps the bare glyph", func(t *testing.T) {
		got := fileIcon("main.go", IconModeNerdFont).render(true, activeTheme.Normal)
		want := fileIcon("main.go", IconModeNerdFont).glyph + " "
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("styled icon ends with a separating space", func(t *testing.T) {
		got := fileIcon("config.yaml", IconModeUnicode).render(false, activeTheme.DimText)
		if got == "" || got[len(got)-1] != ' ' {
			t.Fatalf("expected trailing space, got %q", got)
		}
	})
}
