package formatter

import (
	"strings"

	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Field renders a dimmed label followed by its value. Empty values show "--".
func Field(label, value string) string {
	if value == "" {
		value = Dim("--")
	}
	return StyleDim.Render(label) + "  " + value
}

// TypeBadge returns a capitalized, purple-styled project type label.
func TypeBadge(kind string) string {
	if kind == "" {
		return StyleDim.Render("--")
	}
	word, err := domain.Capitalize(kind)
	if err != nil {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(word)
}
