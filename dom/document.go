package dom

import (
	"bytes"
	"io"

	"github.com/tinytok/xmltok"
)

// Document owns the tree built from one parse's events. The parser's
// scratch buffer is supplied by the caller to each Parse call and is
// not retained once that call returns. The zero value is a valid
// "uninitialised" document: IsError is true and Root is nil until
// Parse succeeds.
type Document struct {
	root   *Element
	isErr  bool
	errMsg string
}

// NewDocument returns an empty, uninitialised Document.
func NewDocument() *Document {
	return &Document{isErr: true, errMsg: "document not parsed"}
}

// Parse feeds data through a fresh Parser using scratch as its name
// stack, recording events into a tree. It returns true on success. On
// failure (a negative Code, or an EOF the parser doesn't accept) the
// partial tree is discarded, IsError becomes true, and ErrorMessage
// reports the corresponding message from codes.go.
func (d *Document) Parse(data []byte, scratch []byte) bool {
	return d.ParseReader(bytes.NewReader(data), scratch)
}

// ParseReader is Parse's streaming counterpart: it drives a fresh
// Parser over r through a Reader, so the caller never has to buffer
// the whole document up front. Failure and success are reported the
// same way as Parse.
func (d *Document) ParseReader(r io.Reader, scratch []byte) bool {
	var p xmltok.Parser
	p.Init(scratch)
	rr := xmltok.NewReader(r, &p)

	rec := recorder{}
	for {
		code := rr.Next()
		if code.IsError() {
			d.fail(code)
			return false
		}
		if code == xmltok.OK {
			break
		}
		rec.consume(code, &p)
	}

	d.root = rec.root
	d.isErr = false
	d.errMsg = ""
	return true
}

func (d *Document) fail(code xmltok.Code) {
	d.root = nil
	d.isErr = true
	d.errMsg = code.Error()
}

// IsError reports whether the most recent Parse failed, or no Parse
// has succeeded yet.
func (d *Document) IsError() bool { return d.isErr || d.root == nil }

// ErrorMessage is the constant message for the code that failed the
// most recent Parse, or an "uninitialised" placeholder before the
// first Parse.
func (d *Document) ErrorMessage() string {
	if d.errMsg == "" && d.root == nil {
		return "document not parsed"
	}
	return d.errMsg
}

// Root is the document's root Element, or nil while IsError is true.
func (d *Document) Root() *Element { return d.root }

// recorder implements the DOM-recorder collaborator: one Parser event
// in, zero or more tree mutations out.
type recorder struct {
	root    *Element
	current *Element
}

func (r *recorder) consume(code xmltok.Code, p *xmltok.Parser) {
	switch code {
	case xmltok.ELEMSTART:
		e := &Element{TagName: string(p.Elem()), Parent: r.current}
		if r.current == nil {
			r.root = e
		} else {
			r.current.Children = append(r.current.Children, e)
		}
		r.current = e
	case xmltok.CONTENT:
		r.appendText(p.Data())
	case xmltok.ELEMEND:
		if r.current != nil {
			r.current = r.current.Parent
		}
	case xmltok.ATTRSTART:
		r.current.Attrs = append(r.current.Attrs, Attribute{Name: string(p.Attr())})
	case xmltok.ATTRVAL:
		i := len(r.current.Attrs) - 1
		r.current.Attrs[i].Value += string(p.Data())
	}
	// ATTREND, PISTART, PICONTENT, PIEND: ignored by this recorder.
}

// appendText folds consecutive CONTENT chunks into one Text node,
// creating a new one only when the previous sibling isn't already
// text.
func (r *recorder) appendText(data []byte) {
	if r.current == nil {
		return
	}
	n := len(r.current.Children)
	if n > 0 {
		if t, ok := r.current.Children[n-1].(*Text); ok {
			t.Data += string(data)
			return
		}
	}
	r.current.Children = append(r.current.Children, &Text{Data: string(data), Parent: r.current})
}
