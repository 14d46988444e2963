package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table with a header rule and an optional footer
// row drawn under a second rule. Columns listed in RightAlign are padded on
// the left, which suits money amounts.
type Table struct {
	Headers    []string
	Rows       [][]string
	Footer     []string
	RightAlign map[int]bool
}

// RenderTable renders a simple left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

// Render measures visible widths (ANSI sequences excluded) and pads every
// column to its widest cell across headers, rows and footer.
func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	cols := len(t.Headers)

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	measure(t.Footer)

	var b strings.Builder

	headers := make([]string, cols)
	for i, h := range t.Headers {
		headers[i] = StyleHeader.Render(h)
	}
	t.writeRow(&b, headers, widths)
	writeRule(&b, widths)

	for _, row := range t.Rows {
		t.writeRow(&b, row, widths)
	}

	if len(t.Footer) > 0 {
		writeRule(&b, widths)
		t.writeRow(&b, t.Footer, widths)
	}

	return b.String()
}

func (t Table) writeRow(b *strings.Builder, row []string, widths []int) {
	cols := len(widths)
	for i := 0; i < cols; i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if t.RightAlign[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			continue
		}
		b.WriteString(cell)
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}

func writeRule(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
