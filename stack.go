package xmltok

// The name stack is a contiguous, caller-owned []byte region storing
// the lexically nested open element names, plus (at the top) an
// optionally open attribute or PI name, back to back as
// NUL,byte,byte,...,byte,NUL. stacklen always indexes the trailing
// NUL. elem/attr/pi are stored as byte offsets into the stack rather
// than raw pointers/slices, per the self-referential-cursor note: an
// offset survives copies of the Parser value and is trivial to
// resolve on read.

// pushstack allocates a new name slot on top of the stack, seeded
// with the first byte of the name, and points *cursor at it. The NUL
// currently at stacklen terminates whatever was already on top (or is
// the top-level sentinel) and is left untouched as the separator in
// front of the new name; only the two bytes after it are written.
func (p *Parser) pushstack(cursor *int, b byte) Code {
	if p.stacklen+3 > p.stacksize {
		return ESTACK
	}
	p.stacklen++
	p.stack[p.stacklen] = b
	*cursor = p.stacklen
	p.stacklen++
	p.stack[p.stacklen] = 0
	return OK
}

// pushstackc appends one more byte to the name currently on top of
// the stack, growing it in place: the byte at stacklen is this name's
// own terminator, being replaced as the name grows, not a separator
// that needs preserving.
func (p *Parser) pushstackc(b byte) Code {
	if p.stacklen+2 > p.stacksize {
		return ESTACK
	}
	p.stack[p.stacklen] = b
	p.stacklen++
	p.stack[p.stacklen] = 0
	return OK
}

// popTop discards the name starting at offset, leaving stacklen
// pointing at the NUL that terminates whatever is now on top.
func (p *Parser) popTop(offset int) {
	p.stacklen = offset - 1
}

// parentOffset finds the start offset of the name enclosing the name
// that starts at childOffset, or 0 (the top-level sentinel) if
// childOffset names the outermost open element.
func (p *Parser) parentOffset(childOffset int) int {
	end := childOffset - 1
	if end == 0 {
		return 0
	}
	i := end - 1
	for i > 0 && p.stack[i] != 0 {
		i--
	}
	return i + 1
}

// symlen returns the length in bytes of the NUL-terminated name
// starting at cursor. Only meaningful immediately after a *START
// event, before anything else is pushed on top of it.
func (p *Parser) symlen(cursor int) int {
	return p.stacklen - cursor
}

// name returns the NUL-terminated substring of the stack starting at
// cursor, or nil if cursor is the empty top-level sentinel.
func (p *Parser) name(cursor int) []byte {
	if cursor == 0 {
		return nil
	}
	end := cursor
	for end < p.stacklen && p.stack[end] != 0 {
		end++
	}
	return p.stack[cursor:end]
}
