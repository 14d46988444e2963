package formatter

import (
	"strings"
)

// FormatMarkdown colors the structural markers of rendered contract text for
// the terminal echo: headings in the header style, blockquote bars in blue
// and list bullets in yellow. The characters themselves are left intact, so
// stripping the escape codes gives back the input.
func FormatMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = styleMarkdownLine(line)
	}
	return strings.Join(lines, "\n")
}

func styleMarkdownLine(line string) string {
	switch {
	case line == "":
		return line
	case strings.HasPrefix(line, "#"):
		return StyleHeader.Render(line)
	case line == ">":
		return StyleBlue.Render(line)
	case strings.HasPrefix(line, "> "):
		return StyleBlue.Render(">") + " " + StyleFg.Render(line[2:])
	case strings.HasPrefix(line, "- "):
		return StyleYellow.Render("-") + " " + line[2:]
	default:
		return line
	}
}
