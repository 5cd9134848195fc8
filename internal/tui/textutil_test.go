package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestVisualTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "main.go", width: 10, want: "main.go"},
		{name: "exact", in: "main.go", width: 7, want: "main.go"},
		{name: "truncated with ellipsis", in: "README.md", width: 5, want: "READ…"},
		{name: "zero width", in: "main.go", width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visualTruncate(tt.in, tt.width); got != tt.want {
				t.Fatalf("visualTruncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestVisualWindow(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		left  int
		width int
		want  string
	}{
		{name: "from start", in: "abcdef", left: 0, width: 3, want: "abc"},
		{name: "scrolled", in: "abcdef", left: 2, width: 3, want: "cde"},
		{name: "past end pads", in: "abcdef", left: 4, width: 4, want: "ef  "},
		{name: "empty width", in: "abcdef", left: 0, width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visualWindow(tt.in, tt.left, tt.width); got != tt.want {
				t.Fatalf("visualWindow(%q, %d, %d) = %q, want %q", tt.in, tt.left, tt.width, got, tt.want)
			}
		})
	}

	t.Run("styled text keeps cell count", func(t *testing.T) {
		styled := activeTheme.BoldPrimary.Render("abcdef")
		got := visualWindow(styled, 1, 4)
		if plain := ansi.Strip(got); plain != "bcde" {
			t.Fatalf("got %q, want %q", plain, "bcde")
		}
	})
}

func TestRoundCell(t *testing.T) {
	for in, want := range map[float64]int{0: 0, 0.49: 0, 0.5: 1, 2.6: 3, -0.4: 0} {
		if got := roundCell(in); got != want {
			t.Fatalf("roundCell(%v) = %d, want %d", in, got, want)
		}
	}
}
