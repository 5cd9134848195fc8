package tui

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

const defaultChromaStyleName = "catppuccin-mocha"

// docTabWidth is how many cells a tab expands to on the document screen.
const docTabWidth = 4

// highlightCode applies syntax highlighting to source code and returns ANSI-colored text.
// It detects the language from the filename. If detection fails or highlighting errors,
// it returns the original source unchanged.
func highlightCode(source, filename string) string {
	lexer := detectLexer(filename)
	if lexer == nil {
		return source
	}
	lexer = chroma.Coalesce(lexer)

	styleName := activeTheme.ChromaStyleName
	if styleName == "" {
		styleName = defaultChromaStyleName
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}

	result := buf.String()
	if !strings.HasSuffix(source, "\n") {
		result = strings.TrimRight(result, "\n")
	}
	return result
}

// detectLexer finds the chroma lexer for a filename, or nil.
func detectLexer(filename string) chroma.Lexer {
	name := filepath.Base(filename)
	if filename == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}
	return lexers.Match(name)
}

// docLines splits highlighted content into display rows and reports the
// widest row in cells.
func docLines(content, filename string) ([]string, int) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", strings.Repeat(" ", docTabWidth))
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, 0
	}
	lines := strings.Split(highlightCode(content, filename), "\n")
	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	return lines, width
}
