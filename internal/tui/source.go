package tui

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
)

// sourceLine is one line of the site file, split into colored spans.
type sourceLine struct {
	spans []span
}

// span is a run of characters sharing one color. The zero color renders
// unstyled.
type span struct {
	text  string
	color lipgloss.Color
}

// highlightSite tokenizes the site file for the Source tab. Site definitions
// are YAML or JSON; anything else renders plain. The result always has one
// entry per input line.
func highlightSite(path string, lines []string) []sourceLine {
	lexer := siteLexer(path)
	if lexer == nil {
		return plainSource(lines)
	}

	it, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return plainSource(lines)
	}

	out := make([]sourceLine, 0, len(lines))
	var cur sourceLine
	for _, tok := range it.Tokens() {
		color := tokenColor(tok.Type)
		text := tok.Value
		for {
			nl := strings.IndexByte(text, '\n')
			if nl < 0 {
				break
			}
			if nl > 0 {
				cur.spans = append(cur.spans, span{text: text[:nl], color: color})
			}
			out = append(out, cur)
			cur = sourceLine{}
			text = text[nl+1:]
		}
		if text != "" {
			cur.spans = append(cur.spans, span{text: text, color: color})
		}
	}
	out = append(out, cur)

	// Some lexers force a trailing newline; drop the phantom line.
	for len(out) > len(lines) && len(out[len(out)-1].spans) == 0 {
		out = out[:len(out)-1]
	}
	for len(out) < len(lines) {
		out = append(out, sourceLine{})
	}
	return out
}

func plainSource(lines []string) []sourceLine {
	out := make([]sourceLine, len(lines))
	for i, line := range lines {
		out[i] = sourceLine{spans: []span{{text: line}}}
	}
	return out
}

// siteLexer picks the lexer from the site-file extension, mirroring the
// formats the loader accepts.
func siteLexer(path string) chroma.Lexer {
	var l chroma.Lexer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		l = lexers.Get("yaml")
	case ".json":
		l = lexers.Get("json")
	default:
		l = lexers.Match(filepath.Base(path))
	}
	if l == nil {
		return nil
	}
	return chroma.Coalesce(l)
}

// tokenColor maps chroma token classes onto the package palette so the
// source pane matches the rest of the UI.
func tokenColor(tt chroma.TokenType) lipgloss.Color {
	switch {
	case tt.InCategory(chroma.Comment):
		return colorDim
	case tt.InCategory(chroma.Keyword):
		return colorPurple
	case tt.InSubCategory(chroma.LiteralNumber):
		return colorPurple
	case tt.InSubCategory(chroma.LiteralString):
		return colorYellow
	case tt.InCategory(chroma.Name):
		return colorBlue
	default:
		return ""
	}
}

// renderSourceLine renders one line from its spans, truncated to maxWidth
// runes.
func renderSourceLine(ln sourceLine, maxWidth int) string {
	var b strings.Builder
	w := 0
	for _, sp := range ln.spans {
		text := sp.text
		n := utf8.RuneCountInString(text)
		if maxWidth > 0 && w+n > maxWidth {
			text = truncate(text, maxWidth-w)
			n = utf8.RuneCountInString(text)
		}
		w += n
		if sp.color != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(sp.color).Render(text))
		} else {
			b.WriteString(text)
		}
		if maxWidth > 0 && w >= maxWidth {
			break
		}
	}
	return b.String()
}
