package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// previewKeyMap lists the pager keys shown in the footer.
type previewKeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func defaultPreviewKeyMap() previewKeyMap {
	return previewKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
	}
}

// previewModel is a read-only pager over the rendered contract.
type previewModel struct {
	title   string
	content string
	keys    previewKeyMap
	vp      viewport.Model
	ready   bool
}

func newPreviewModel(title, content string) previewModel {
	return previewModel{
		title:   title,
		content: content,
		keys:    defaultPreviewKeyMap(),
	}
}

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 4

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.MouseWheelEnabled = true
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case !m.ready:
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if !m.ready {
		return formatter.Dim("Loading…")
	}

	var b strings.Builder
	b.WriteString(formatter.Header(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n\n")

	hints := []string{
		m.scrollIndicator(),
		formatter.Dim("↑/↓ pgup/pgdn: scroll"),
		formatter.Dim(m.keys.Top.Help().Key + ": " + m.keys.Top.Help().Desc),
		formatter.Dim(m.keys.Bottom.Help().Key + ": " + m.keys.Bottom.Help().Desc),
		formatter.Dim(m.keys.Quit.Help().Key + ": " + m.keys.Quit.Help().Desc),
	}
	b.WriteString(strings.Join(hints, "  "))
	return b.String()
}

// scrollIndicator returns a dim scroll position string for the footer.
func (m previewModel) scrollIndicator() string {
	switch {
	case m.vp.AtTop():
		return formatter.Dim("[TOP]")
	case m.vp.AtBottom():
		return formatter.Dim("[END]")
	default:
		return formatter.Dim(fmt.Sprintf("[%d%%]", int(m.vp.ScrollPercent()*100)))
	}
}
