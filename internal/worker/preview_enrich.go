package worker

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"

	"github.com/wilbur182/runa/internal/formatter"
)

// styleLines produces a cosmetic, syntax-aware rendering of raw file lines
// alongside the plain sanitized Lines. Markdown gets glamour's renderer;
// everything else goes through chroma's quick.Highlight, which picks a
// lexer by extension and falls back to another lexer when the extension is
// unknown. A rendering error yields no styled output at all — Lines remains
// the single source of truth either way.
func styleLines(path string, raw []string, paneWidth int) []string {
	ext := fileExt(path)
	content := strings.Join(raw, "\n")

	if ext == "md" || ext == "markdown" {
		rendered, err := glamour.Render(content, "dark")
		if err != nil {
			return nil
		}
		return padRenderedLines(rendered, raw, paneWidth)
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, ext, "terminal256", "monokai"); err != nil {
		return nil
	}
	return padRenderedLines(buf.String(), raw, paneWidth)
}

// padRenderedLines reconciles a terminal-escaped rendering back to exactly
// len(raw) lines so Styled stays index-aligned with Lines; rendered lines
// are kept as-is (ANSI escapes intact, no padding), and positions past the
// end of the rendering fall back to the sanitized raw line.
func padRenderedLines(rendered string, raw []string, paneWidth int) []string {
	rl := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	out := make([]string, len(raw))
	for i := range raw {
		if i < len(rl) {
			out[i] = rl[i]
		} else {
			out[i] = formatter.SanitizeToWidth(raw[i], paneWidth)
		}
	}
	return out
}
