package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tree() *Element {
	root := &Element{TagName: "root"}
	a := &Element{TagName: "a", Parent: root}
	b := &Element{TagName: "b", Parent: root}
	inner := &Element{TagName: "a", Parent: b}
	root.Children = []Node{
		&Text{Data: "before", Parent: root},
		a,
		&Text{Data: "between", Parent: root},
		b,
	}
	b.Children = []Node{inner, &Text{Data: "leaf", Parent: b}}
	return root
}

func TestChildElementCountIgnoresText(t *testing.T) {
	root := tree()
	assert.Equal(t, 2, root.ChildElementCount())
}

func TestElementsReturnsOnlyDirectElements(t *testing.T) {
	root := tree()
	els := root.Elements()
	assert.Len(t, els, 2)
	assert.Equal(t, "a", els[0].TagName)
	assert.Equal(t, "b", els[1].TagName)
}

func TestGetAttribute(t *testing.T) {
	e := &Element{Attrs: []Attribute{{Name: "id", Value: "1"}, {Name: "class", Value: "x"}}}
	v, ok := e.GetAttribute("class")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = e.GetAttribute("missing")
	assert.False(t, ok)
}

func TestFirstElementByTagName(t *testing.T) {
	root := tree()
	found := root.FirstElementByTagName("b")
	assert.Same(t, root.Elements()[1], found)
	assert.Nil(t, root.FirstElementByTagName("nope"))
}

func TestElementsByTagNameDirectOnly(t *testing.T) {
	root := tree()
	// only "a" as a direct child, not the "a" nested inside "b".
	found := root.ElementsByTagName("a")
	assert.Len(t, found, 1)
}

func TestGetElementsByTagNamePreOrder(t *testing.T) {
	root := tree()
	found := root.GetElementsByTagName("a")
	assert.Len(t, found, 2)
	// direct child "a" (a sibling of "b") is visited before "b"'s own
	// "a" descendant, per the documented pre-order.
	assert.Same(t, root.Elements()[0], found[0])
	assert.Same(t, root.Elements()[1].Elements()[0], found[1])
}

func TestTextContentSkipsTagsAndAttributes(t *testing.T) {
	root := tree()
	assert.Equal(t, "beforebetweenleaf", root.TextContent())
}
