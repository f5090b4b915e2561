package dom

import "strings"

// Punctuation written by the serializer, kept as named constants
// rather than repeated string literals.
const (
	angleOpen      = "<"
	angleClose     = ">"
	angleOpenSlash = "</"
	space          = " "
	equal          = "=\""
	quote          = "\""
)

// InnerHTML serializes e's children (not e itself) back into markup:
// "<tag attr=\"value\" ...>...children...</tag>" for each child
// Element, and a Text child's data written verbatim. Per the DOM API
// surface's deliberate simplification, nothing is escaped: a "<" or
// "&" inside recorded text or an attribute value comes back out
// exactly as it was recorded.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, c := range e.Children {
		writeNode(&b, c)
	}
	return b.String()
}

// OuterHTML serializes e itself, tag included.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	writeElement(&b, e)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		b.WriteString(v.Data)
	case *Element:
		writeElement(b, v)
	}
}

func writeElement(b *strings.Builder, e *Element) {
	b.WriteString(angleOpen)
	b.WriteString(e.TagName)
	for _, a := range e.Attrs {
		b.WriteString(space)
		b.WriteString(a.Name)
		b.WriteString(equal)
		b.WriteString(a.Value)
		b.WriteString(quote)
	}
	b.WriteString(angleClose)
	for _, c := range e.Children {
		writeNode(b, c)
	}
	b.WriteString(angleOpenSlash)
	b.WriteString(e.TagName)
	b.WriteString(angleClose)
}
