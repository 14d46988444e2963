package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, KindHeading, H(1, "x").Kind())
	assert.Equal(t, KindParagraph, P("x").Kind())
	assert.Equal(t, KindList, UL("x").Kind())
	assert.Equal(t, KindBlockquote, Quote("x").Kind())
}

func TestUL_CopiesItems(t *testing.T) {
	items := []string{"a", "b"}
	list := UL(items...)
	items[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, list.Items)
}

func TestCountHeadings(t *testing.T) {
	nodes := []Node{
		H(1, "Title"),
		P("text"),
		H(2, "One"),
		H(3, "Sub"),
		H(2, "Two"),
		UL("item"),
	}
	assert.Equal(t, 4, CountHeadings(nodes, 0))
	assert.Equal(t, 1, CountHeadings(nodes, 1))
	assert.Equal(t, 2, CountHeadings(nodes, 2))
	assert.Equal(t, 1, CountHeadings(nodes, 3))
	assert.Equal(t, 0, CountHeadings(nodes, 4))
}
