// Package dom is a thin recorder built on top of xmltok: it drives a
// Parser one byte at a time and accumulates its events into a tree of
// Element and Text nodes, matching the DOM-recorder collaborator
// described alongside the tokenizer it wraps.
package dom

import "strings"

// Node is either an *Element or a *Text child of an Element.
type Node interface {
	node()
}

// Element owns its children (nested Elements and, in this richer
// variant, interleaved Text runs) and its attributes. TagName is
// copied out of the tokenizer's name stack, not aliased to it, since
// the stack is reused by later Parse calls. Parent is a non-owning
// back-reference; children are owned exclusively by their parent, so
// the tree can never contain a cycle.
type Element struct {
	TagName  string
	Attrs    []Attribute
	Children []Node
	Parent   *Element
}

// Attribute is a name/value pair recorded off ATTRSTART/ATTRVAL
// events. Value is built up incrementally, one Data() chunk at a
// time, since the tokenizer's data window holds only a few bytes.
type Attribute struct {
	Name  string
	Value string
}

// Text is a run of character data between two Element siblings, or at
// the start or end of an element's content. Consecutive CONTENT
// events are folded into one Text node rather than one per byte.
type Text struct {
	Data   string
	Parent *Element
}

func (*Element) node() {}
func (*Text) node()    {}

// ChildElementCount returns the number of direct Element children,
// ignoring interleaved Text runs.
func (e *Element) ChildElementCount() int {
	n := 0
	for _, c := range e.Children {
		if _, ok := c.(*Element); ok {
			n++
		}
	}
	return n
}

// Elements returns the direct Element children, in document order.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// GetAttribute returns the value of the first attribute named name,
// or ("", false) if no such attribute was recorded.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// FirstElementByTagName returns the first direct child Element named
// name, or nil.
func (e *Element) FirstElementByTagName(name string) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.TagName == name {
			return el
		}
	}
	return nil
}

// ElementsByTagName returns every direct child Element named name, in
// document order.
func (e *Element) ElementsByTagName(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.TagName == name {
			out = append(out, el)
		}
	}
	return out
}

// GetElementsByTagName returns every descendant Element named name, in
// pre-order (a node before its own children, children before later
// siblings). The recorder decides this ordering explicitly since the
// tokenizer's source left it as an open question.
func (e *Element) GetElementsByTagName(name string) []*Element {
	var out []*Element
	e.collectByTagName(name, &out)
	return out
}

func (e *Element) collectByTagName(name string, out *[]*Element) {
	for _, c := range e.Children {
		el, ok := c.(*Element)
		if !ok {
			continue
		}
		if el.TagName == name {
			*out = append(*out, el)
		}
		el.collectByTagName(name, out)
	}
}

// TextContent concatenates the character data of every descendant, in
// document order, skipping element tags and attribute values.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeTextContent(&b)
	return b.String()
}

func (e *Element) writeTextContent(b *strings.Builder) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Text:
			b.WriteString(n.Data)
		case *Element:
			n.writeTextContent(b)
		}
	}
}
