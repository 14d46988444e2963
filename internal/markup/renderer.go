// Package markup serializes document nodes into Markdown text.
package markup

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/document"
)

// Syntax holds the marker strings used for each block type.
type Syntax struct {
	Heading    string
	ListItem   string
	Blockquote string
}

// Markdown is the default syntax.
var Markdown = Syntax{
	Heading:    "#",
	ListItem:   "-",
	Blockquote: ">",
}

// Renderer turns a node sequence into text. The zero value is not usable;
// construct one with NewRenderer.
type Renderer struct {
	syntax    Syntax
	separator string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSeparator sets the string inserted between rendered nodes. Every node
// already ends with a blank line, so the default is empty.
func WithSeparator(sep string) Option {
	return func(r *Renderer) {
		r.separator = sep
	}
}

// WithSyntax replaces the marker set.
func WithSyntax(s Syntax) Option {
	return func(r *Renderer) {
		r.syntax = s
	}
}

// NewRenderer returns a Markdown renderer with an empty separator.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{syntax: Markdown}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render serializes nodes in order. It fails on the first node it cannot
// render and returns no partial output.
func (r *Renderer) Render(nodes []document.Node) (string, error) {
	blocks := make([]string, 0, len(nodes))
	for i, node := range nodes {
		block, err := r.renderNode(node)
		if err != nil {
			return "", fmt.Errorf("rendering node %d: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, r.separator), nil
}

// Render serializes nodes with the default syntax and the given separator.
func Render(nodes []document.Node, separator string) (string, error) {
	return NewRenderer(WithSeparator(separator)).Render(nodes)
}

func (r *Renderer) renderNode(node document.Node) (string, error) {
	var body string
	switch n := node.(type) {
	case document.Heading:
		if n.Level < 1 || n.Level > document.MaxHeadingLevel {
			return "", fmt.Errorf("%w: heading level %d outside 1..%d", document.ErrMalformedNode, n.Level, document.MaxHeadingLevel)
		}
		body = strings.Repeat(r.syntax.Heading, n.Level) + " " + n.Text
	case document.Paragraph:
		body = strings.Join(n.Lines, "\n\n")
	case document.List:
		items := make([]string, len(n.Items))
		for i, item := range n.Items {
			items[i] = r.syntax.ListItem + " " + item
		}
		body = strings.Join(items, "\n")
	case document.Blockquote:
		body = r.quote(n.Text)
	case nil:
		return "", fmt.Errorf("%w: nil node", document.ErrUnknownNodeKind)
	default:
		return "", fmt.Errorf("%w: %T", document.ErrUnknownNodeKind, node)
	}
	return body + "\n\n", nil
}

// quote prefixes every line with the blockquote marker. Blank lines keep a
// bare marker so the quote stays one block.
func (r *Renderer) quote(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = r.syntax.Blockquote
			continue
		}
		lines[i] = r.syntax.Blockquote + " " + line
	}
	return strings.Join(lines, "\n")
}
