// Package document defines the typed nodes a contract is assembled from.
//
// Nodes are plain values. The builder creates them in reading order and the
// markup renderer consumes them; nothing mutates a node after creation.
package document

import "errors"

var (
	// ErrUnknownNodeKind indicates a node whose kind the renderer does not
	// understand. It always points at a builder defect.
	ErrUnknownNodeKind = errors.New("unknown node kind")

	// ErrMalformedNode indicates a known node kind with unusable contents,
	// such as a heading level outside 1..6.
	ErrMalformedNode = errors.New("malformed node")
)

type Kind string

const (
	KindHeading    Kind = "heading"
	KindParagraph  Kind = "paragraph"
	KindList       Kind = "list"
	KindBlockquote Kind = "blockquote"
)

// MaxHeadingLevel is the deepest heading the markup supports.
const MaxHeadingLevel = 6

// Node is one block of the document.
type Node interface {
	Kind() Kind
}

type Heading struct {
	Level int
	Text  string
}

// Paragraph holds one or more texts. Each text is its own line in the
// rendered block.
type Paragraph struct {
	Lines []string
}

type List struct {
	Items []string
}

type Blockquote struct {
	Text string
}

func (Heading) Kind() Kind    { return KindHeading }
func (Paragraph) Kind() Kind  { return KindParagraph }
func (List) Kind() Kind       { return KindList }
func (Blockquote) Kind() Kind { return KindBlockquote }

// H returns a heading node.
func H(level int, text string) Heading { return Heading{Level: level, Text: text} }

// P returns a paragraph node holding the given texts.
func P(lines ...string) Paragraph { return Paragraph{Lines: lines} }

// UL returns a list node. The items slice is copied.
func UL(items ...string) List {
	return List{Items: append([]string(nil), items...)}
}

// Quote returns a blockquote node.
func Quote(text string) Blockquote { return Blockquote{Text: text} }

// CountHeadings returns how many headings of the given level appear in nodes.
// A level of 0 counts every heading.
func CountHeadings(nodes []Node, level int) int {
	n := 0
	for _, node := range nodes {
		h, ok := node.(Heading)
		if !ok {
			continue
		}
		if level == 0 || h.Level == level {
			n++
		}
	}
	return n
}
