// Package xmltok implements a streaming, byte-at-a-time XML tokenizer.
//
// A Parser consumes one input byte per call to Parse and returns
// exactly one Code: a lexical event, OK ("no new token yet"), or a
// negative error. It holds no heap-allocated state of its own; the
// name stack it uses to track open elements, attributes and
// processing-instruction targets lives in a scratch buffer the caller
// provides to Init and may reuse across documents.
//
// The design mirrors a Mealy machine: (state, byte) -> (state', event),
// dispatched one byte at a time so that nesting depth is bounded by
// the scratch buffer's size rather than the host call stack.
package xmltok

// Parser is a streaming XML tokenizer. The zero value is not usable;
// call Init before the first Parse.
type Parser struct {
	state     State
	nextstate State

	stringRef string
	stringPos int

	quote  byte
	ignore byte

	reflen int
	refbuf [8]byte

	declCtx  bool
	matchIdx int

	line  int
	col   int
	total int64

	elem int
	attr int
	pi   int

	data [8]byte

	stack     []byte
	stacklen  int
	stacksize int
}

// Init (re)initialises p to parse a fresh document, wiring stack as
// its name-stack scratch buffer. stack is retained and mutated by
// subsequent Parse calls; the caller owns its storage and may reuse
// the same slice across documents by calling Init again.
func (p *Parser) Init(stack []byte) {
	*p = Parser{
		stack:     stack,
		stacksize: len(stack),
		line:      1,
	}
	if len(stack) > 0 {
		stack[0] = 0
	}
}

// Elem returns the name of the currently open element, or nil at the
// top level. Valid until the matching ELEMEND.
func (p *Parser) Elem() []byte { return p.name(p.elem) }

// Attr returns the name of the currently open attribute, or nil if
// none is open. Valid until the matching ATTREND.
func (p *Parser) Attr() []byte { return p.name(p.attr) }

// PI returns the target of the currently open processing instruction,
// or nil if none is open. Valid until the matching PIEND.
func (p *Parser) PI() []byte { return p.name(p.pi) }

// Data returns the chunk exposed by the most recent CONTENT, ATTRVAL
// or PICONTENT event. Valid only until the next call to Parse.
func (p *Parser) Data() []byte {
	n := 0
	for n < len(p.data) && p.data[n] != 0 {
		n++
	}
	return p.data[:n]
}

// Line returns the current 1-based line number.
func (p *Parser) Line() int { return p.line }

// Column returns the current 1-based column, reset at each line break.
func (p *Parser) Column() int { return p.col }

// Total returns the number of input bytes consumed so far, not
// counting any byte that was immediately rejected as a NUL.
func (p *Parser) Total() int64 { return p.total }

// EOF reports whether the document may legally end in the parser's
// current state: only once the root element has closed and only
// trailing whitespace, comments or processing instructions remain.
func (p *Parser) EOF() Code {
	if p.state == stMisc3 {
		return OK
	}
	return EEOF
}

// Parse consumes one input byte and returns the resulting event, OK,
// or a negative error code. Once a negative code is returned, p must
// be re-initialised with Init before it is used again.
func (p *Parser) Parse(b byte) Code {
	if b == 0 {
		return ESYN
	}
	p.total++

	if p.ignore != 0 && b == p.ignore {
		p.ignore = 0
		return OK
	}
	p.ignore = 0
	if b == '\r' || b == '\n' {
		if b == '\r' {
			p.ignore = '\n'
		}
		b = '\n'
		p.line++
		p.col = 0
	}
	p.col++

	return p.dispatch(b)
}

func (p *Parser) setData(bs ...byte) {
	n := copy(p.data[:], bs)
	p.data[n] = 0
}

func (p *Parser) beginStringMatch(literal string, next State) {
	p.stringRef = literal
	p.stringPos = 0
	p.nextstate = next
	p.state = stString
}

func (p *Parser) popElement() {
	child := p.elem
	p.popTop(child)
	p.elem = p.parentOffset(child)
}

func (p *Parser) popAttr() {
	p.popTop(p.attr)
	p.attr = 0
}

func (p *Parser) popPI() {
	p.popTop(p.pi)
	p.pi = 0
}

// afterClose returns the state to resume in once the root element's
// last open tag has closed: content if something still encloses it,
// or trailing-whitespace-only if the document root itself just
// closed.
func (p *Parser) afterClose() State {
	if p.elem == 0 {
		return stMisc3
	}
	return stMisc2
}
