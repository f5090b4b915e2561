package xmltok

// dispatch advances the state machine by exactly one (already
// line-ending-normalised) byte.
func (p *Parser) dispatch(b byte) Code {
	switch p.state {

	case stInit:
		return p.stepInit(b)
	case stMisc0:
		return p.stepMiscOutside(b, stLe0)
	case stMisc1:
		return p.stepMiscOutside(b, stLe1)
	case stMisc2:
		return p.stepMisc2(b)
	case stMisc2a:
		return p.stepReference(b, stMisc2, false)
	case stMisc3:
		return p.stepMiscOutside(b, stLe3)

	case stLe0:
		return p.stepLe(b, stMisc0, true)
	case stLe1:
		return p.stepLe(b, stMisc1, false)
	case stLe2:
		return p.stepLe(b, stMisc2, false)
	case stLe3:
		return p.stepLe(b, stMisc3, false)
	case stLee1:
		return p.stepLee1(b)
	case stLee2:
		return p.stepLee2(b)
	case stLeq0:
		return p.stepLeq0(b)

	case stElem0:
		return p.stepElem0(b)
	case stElem1:
		return p.stepElemWS(b)
	case stElem2:
		return p.stepElemWS(b)
	case stElem3:
		return p.stepElem3(b)

	case stAttr0:
		return p.stepAttr0(b)
	case stAttr1:
		return p.stepAttr1(b)
	case stAttr2:
		return p.stepAttr2(b)
	case stAttr3:
		return p.stepAttr3(b)
	case stAttr4:
		return p.stepReference(b, stAttr3, true)

	case stEtag0:
		return p.stepEtag0(b)
	case stEtag2:
		return p.stepEtag2(b)

	case stPi0, stPi1:
		return p.stepPiLeading(b)
	case stPi2:
		return p.stepPi2(b)
	case stPi3, stPi4:
		return p.stepPiPending(b)

	case stCd0:
		return p.stepCd0(b)
	case stCd1:
		return p.stepCd1(b)
	case stCd2:
		return p.stepCd2(b)

	case stComment0:
		return p.stepComment0(b)
	case stComment1:
		return p.stepComment1(b)
	case stComment2, stComment3, stComment4:
		return p.stepComment2(b)

	case stDt0:
		return p.stepDt(b, stDt0)
	case stDt3:
		return p.stepDt(b, stDt3)
	case stDt1:
		return p.stepDt1(b)
	case stDt4:
		return p.stepDt4(b)
	case stDt2:
		return p.stepDt2(b)

	case stString:
		return p.stepString(b)

	case stXmldecl0:
		return p.stepXmldecl0(b)
	case stXmldecl1:
		return p.stepExpectEquals(b, stXmldecl2)
	case stXmldecl2:
		return p.stepExpectQuote(b, stVer0)
	case stXmldecl3:
		return p.stepXmldeclAttrChoice(b, true)
	case stXmldecl4:
		return p.stepExpectEquals(b, stXmldecl5)
	case stXmldecl5:
		return p.stepExpectQuote(b, stEnc0)
	case stXmldecl6:
		return p.stepExpectEquals(b, stXmldecl8)
	case stXmldecl7:
		return p.stepXmldeclAttrChoice(b, false)
	case stXmldecl8:
		return p.stepExpectQuote(b, stStd0)
	case stXmldecl9:
		return p.stepXmldecl9(b)

	case stVer0:
		return p.stepLiteralByte(b, '1', stVer1)
	case stVer1:
		return p.stepLiteralByte(b, '.', stVer2)
	case stVer2:
		if isNum(b) {
			p.state = stVer3
			return OK
		}
		return ESYN
	case stVer3:
		return p.stepCloseQuote(b, stXmldecl3)

	case stEnc0:
		if b == p.quote {
			p.state = stXmldecl7
			return OK
		}
		if isEncName(b) {
			return OK
		}
		return ESYN

	case stStd0:
		return p.stepStd0(b)
	case stStd1:
		if isSP(b) {
			return OK
		}
		if b == '?' {
			p.state = stXmldecl9
			return OK
		}
		return ESYN
	case stStd3:
		return p.stepCloseQuote(b, stStd1)
	}
	return ESYN
}

func (p *Parser) stepInit(b byte) Code {
	if b == 0xEF {
		p.beginStringMatch("\xBB\xBF", stMisc0)
		return OK
	}
	if isSP(b) {
		p.state = stMisc0
		return OK
	}
	if b == '<' {
		p.state = stLe0
		return OK
	}
	return ESYN
}

// stepMiscOutside handles misc0/misc1/misc3: whitespace outside any
// element is insignificant and simply skipped.
func (p *Parser) stepMiscOutside(b byte, le State) Code {
	if isSP(b) {
		return OK
	}
	if b == '<' {
		p.state = le
		return OK
	}
	return ESYN
}

// stepMisc2 handles ordinary character data inside root content:
// whitespace here is significant and reported like any other byte.
func (p *Parser) stepMisc2(b byte) Code {
	if b == '<' {
		p.state = stLe2
		return OK
	}
	if b == '&' {
		p.reflen = 0
		p.state = stMisc2a
		return OK
	}
	if isChar(b) {
		p.setData(b)
		return CONTENT
	}
	return ESYN
}

// stepReference accumulates and resolves a reference (either inside
// content or inside an attribute value), emitting CONTENT or ATTRVAL
// as appropriate and returning to back.
func (p *Parser) stepReference(b byte, back State, isAttr bool) Code {
	if b == ';' {
		n, code := resolveReference(p.refbuf[:p.reflen], &p.data)
		if code != OK {
			return code
		}
		p.data[n] = 0
		p.state = back
		if isAttr {
			return ATTRVAL
		}
		return CONTENT
	}
	if !isRef(b) {
		return EREF
	}
	if p.reflen >= 7 {
		return EREF
	}
	p.refbuf[p.reflen] = b
	p.reflen++
	return OK
}

// stepLe handles the '<' dispatch shared by misc0/1/2/3. declOK marks
// only the very first '<' of the document as eligible to open an XML
// declaration.
func (p *Parser) stepLe(b byte, back State, declOK bool) Code {
	if back == stMisc0 {
		// A comment or PI after the first '<' resumes in misc1, so no
		// later '<' can open a declaration.
		back = stMisc1
	}
	switch {
	case b == '?':
		p.nextstate = back
		p.declCtx = declOK
		p.state = stLeq0
		return OK
	case b == '!':
		p.nextstate = back
		p.state = stLee1
		return OK
	case b == '/':
		if back != stMisc2 || p.elem == 0 {
			return ESYN
		}
		p.matchIdx = 0
		p.state = stEtag0
		return OK
	case isNameStart(b):
		if back == stMisc3 {
			return ESYN
		}
		if code := p.pushstack(&p.elem, b); code != OK {
			return code
		}
		p.state = stElem0
		return OK
	}
	return ESYN
}

func (p *Parser) stepLee1(b byte) Code {
	switch b {
	case '-':
		p.state = stLee2
		return OK
	case '[':
		if p.nextstate != stMisc2 {
			return ESYN
		}
		p.beginStringMatch("CDATA[", stCd0)
		return OK
	case 'D':
		if p.nextstate != stMisc0 && p.nextstate != stMisc1 {
			return ESYN
		}
		p.beginStringMatch("OCTYPE", stDt0)
		return OK
	}
	return ESYN
}

func (p *Parser) stepLee2(b byte) Code {
	if b == '-' {
		p.state = stComment0
		return OK
	}
	return ESYN
}

func (p *Parser) stepLeq0(b byte) Code {
	if p.symIsEmpty(p.pi) {
		if !isNameStart(b) {
			return ESYN
		}
		return p.pushstack(&p.pi, b)
	}
	if isName(b) {
		return p.pushstackc(b)
	}
	if !isSP(b) && b != '?' {
		return ESYN
	}
	target := p.name(p.pi)
	if isXMLTarget(target) {
		if !p.declCtx {
			return ESYN
		}
		p.popPI()
		p.state = stXmldecl0
		return OK
	}
	if b == '?' {
		p.state = stPi1
	} else {
		p.state = stPi0
	}
	return PISTART
}

// symIsEmpty reports whether cursor has not yet been assigned a slot
// on the stack for the target currently being read at leq0.
func (p *Parser) symIsEmpty(cursor int) bool {
	return cursor == 0
}

func isXMLTarget(name []byte) bool {
	if len(name) != 3 {
		return false
	}
	return (name[0]|0x20) == 'x' && (name[1]|0x20) == 'm' && (name[2]|0x20) == 'l'
}

func (p *Parser) stepString(b byte) Code {
	if b != p.stringRef[p.stringPos] {
		return ESYN
	}
	p.stringPos++
	if p.stringPos == len(p.stringRef) {
		p.state = p.nextstate
	}
	return OK
}

// --- open tag -------------------------------------------------------

func (p *Parser) stepElem0(b byte) Code {
	if isName(b) {
		return p.pushstackc(b)
	}
	switch {
	case isSP(b):
		p.state = stElem1
		return ELEMSTART
	case b == '>':
		p.state = stMisc2
		return ELEMSTART
	case b == '/':
		p.state = stElem3
		return ELEMSTART
	}
	return ESYN
}

func (p *Parser) stepElemWS(b byte) Code {
	switch {
	case isSP(b):
		return OK
	case b == '>':
		p.state = stMisc2
		return OK
	case b == '/':
		p.state = stElem3
		return OK
	case isNameStart(b):
		if code := p.pushstack(&p.attr, b); code != OK {
			return code
		}
		p.state = stAttr0
		return OK
	}
	return ESYN
}

func (p *Parser) stepElem3(b byte) Code {
	if b != '>' {
		return ESYN
	}
	p.popElement()
	p.state = p.afterClose()
	return ELEMEND
}

// --- attributes -------------------------------------------------------

func (p *Parser) stepAttr0(b byte) Code {
	if isName(b) {
		return p.pushstackc(b)
	}
	switch {
	case isSP(b):
		p.state = stAttr1
		return ATTRSTART
	case b == '=':
		p.state = stAttr2
		return ATTRSTART
	}
	return ESYN
}

func (p *Parser) stepAttr1(b byte) Code {
	if isSP(b) {
		return OK
	}
	if b == '=' {
		p.state = stAttr2
		return OK
	}
	return ESYN
}

func (p *Parser) stepAttr2(b byte) Code {
	if isSP(b) {
		return OK
	}
	if b == '\'' || b == '"' {
		p.quote = b
		p.state = stAttr3
		return OK
	}
	return ESYN
}

func (p *Parser) stepAttr3(b byte) Code {
	switch {
	case b == p.quote:
		p.popAttr()
		p.state = stElem2
		return ATTREND
	case b == '&':
		p.reflen = 0
		p.state = stAttr4
		return OK
	case b == '\t' || b == '\n':
		p.setData(' ')
		return ATTRVAL
	case isAttValue(b):
		p.setData(b)
		return ATTRVAL
	}
	return ESYN
}

// --- close tag -------------------------------------------------------

func (p *Parser) stepEtag0(b byte) Code {
	if isName(b) {
		expected := p.stack[p.elem+p.matchIdx]
		if expected == 0 || b != expected {
			return ECLOSE
		}
		p.matchIdx++
		return OK
	}
	if p.stack[p.elem+p.matchIdx] != 0 {
		return ECLOSE
	}
	switch {
	case b == '>':
		p.popElement()
		p.state = p.afterClose()
		return ELEMEND
	case isSP(b):
		p.state = stEtag2
		return OK
	}
	return ESYN
}

func (p *Parser) stepEtag2(b byte) Code {
	if isSP(b) {
		return OK
	}
	if b == '>' {
		p.popElement()
		p.state = p.afterClose()
		return ELEMEND
	}
	return ESYN
}

// --- processing instructions -----------------------------------------

func (p *Parser) stepPiLeading(b byte) Code {
	if isSP(b) {
		return OK
	}
	if b == '?' {
		if p.state == stPi0 {
			p.state = stPi3
		} else {
			p.state = stPi4
		}
		return OK
	}
	if isChar(b) {
		p.setData(b)
		p.state = stPi2
		return PICONTENT
	}
	return ESYN
}

func (p *Parser) stepPi2(b byte) Code {
	if b == '?' {
		p.state = stPi3
		return OK
	}
	if isChar(b) {
		p.setData(b)
		return PICONTENT
	}
	return ESYN
}

func (p *Parser) stepPiPending(b byte) Code {
	if b == '>' {
		p.popPI()
		p.state = p.nextstate
		return PIEND
	}
	if b == '?' {
		// The previously pending '?' is reported now, since it turned
		// out not to start "?>"; this '?' takes its place as the sole
		// pending candidate, so it is not itself reported yet.
		p.setData('?')
		return PICONTENT
	}
	if isChar(b) {
		p.setData('?', b)
		p.state = stPi2
		return PICONTENT
	}
	return ESYN
}

// --- CDATA -------------------------------------------------------------

func (p *Parser) stepCd0(b byte) Code {
	if b == ']' {
		p.state = stCd1
		return OK
	}
	if isChar(b) {
		p.setData(b)
		return CONTENT
	}
	return ESYN
}

func (p *Parser) stepCd1(b byte) Code {
	if b == ']' {
		p.state = stCd2
		return OK
	}
	if isChar(b) {
		p.setData(']', b)
		p.state = stCd0
		return CONTENT
	}
	return ESYN
}

func (p *Parser) stepCd2(b byte) Code {
	if b == '>' {
		// CDATA is only reachable from root content, so its close
		// always resumes content scanning regardless of nextstate,
		// which the entry string-match into "CDATA[" has since
		// overwritten.
		p.state = stMisc2
		return OK
	}
	if b == ']' {
		p.setData(']')
		return CONTENT
	}
	if isChar(b) {
		p.setData(']', ']', b)
		p.state = stCd0
		return CONTENT
	}
	return ESYN
}

// --- comments ------------------------------------------------------------

func (p *Parser) stepComment0(b byte) Code {
	if b == '-' {
		p.state = stComment1
	}
	return OK
}

func (p *Parser) stepComment1(b byte) Code {
	if b == '-' {
		p.state = stComment2
		return OK
	}
	p.state = stComment0
	return OK
}

func (p *Parser) stepComment2(b byte) Code {
	switch b {
	case '>':
		p.state = p.nextstate
		return OK
	case '-':
		return OK
	}
	p.state = stComment0
	return OK
}

// --- DOCTYPE ---------------------------------------------------------------

func (p *Parser) stepDt(b byte, self State) Code {
	switch b {
	case '"', '\'':
		p.quote = b
		p.nextstate = self
		p.state = stDt1
		return OK
	case '<':
		p.nextstate = self
		p.state = stDt4
		return OK
	}
	if self == stDt0 {
		switch b {
		case '[':
			p.state = stDt3
			return OK
		case '>':
			// DOCTYPE is only reachable from the prolog, before or
			// after the XML declaration; either way its close always
			// resumes stMisc1, since nextstate has since been
			// overwritten by the entry string-match into "OCTYPE".
			p.state = stMisc1
			return OK
		}
		return OK
	}
	if b == ']' {
		p.state = stDt0
		return OK
	}
	return OK
}

func (p *Parser) stepDt1(b byte) Code {
	if b == p.quote {
		p.state = p.nextstate
	}
	return OK
}

func (p *Parser) stepDt4(b byte) Code {
	if b == '!' {
		p.state = stDt2
		return OK
	}
	p.state = p.nextstate
	return OK
}

func (p *Parser) stepDt2(b byte) Code {
	if b == '-' {
		p.state = stComment0
		return OK
	}
	p.state = p.nextstate
	return OK
}

// --- XML declaration -------------------------------------------------------

func (p *Parser) stepXmldecl0(b byte) Code {
	if isSP(b) {
		return OK
	}
	if b == 'v' {
		p.beginStringMatch("ersion", stXmldecl1)
		return OK
	}
	return ESYN
}

func (p *Parser) stepExpectEquals(b byte, next State) Code {
	if isSP(b) {
		return OK
	}
	if b == '=' {
		p.state = next
		return OK
	}
	return ESYN
}

func (p *Parser) stepExpectQuote(b byte, next State) Code {
	if isSP(b) {
		return OK
	}
	if b == '\'' || b == '"' {
		p.quote = b
		p.state = next
		return OK
	}
	return ESYN
}

func (p *Parser) stepLiteralByte(b, want byte, next State) Code {
	if b == want {
		p.state = next
		return OK
	}
	return ESYN
}

func (p *Parser) stepCloseQuote(b byte, next State) Code {
	if b == p.quote {
		p.state = next
		return OK
	}
	return ESYN
}

// stepXmldeclAttrChoice handles both post-version (allowEncoding) and
// post-encoding (!allowEncoding) positions in the XML declaration.
func (p *Parser) stepXmldeclAttrChoice(b byte, allowEncoding bool) Code {
	if isSP(b) {
		return OK
	}
	if b == '?' {
		p.state = stXmldecl9
		return OK
	}
	if allowEncoding && b == 'e' {
		p.beginStringMatch("ncoding", stXmldecl4)
		return OK
	}
	if b == 's' {
		p.beginStringMatch("tandalone", stXmldecl6)
		return OK
	}
	return ESYN
}

func (p *Parser) stepXmldecl9(b byte) Code {
	if b == '>' {
		p.state = stMisc1
		return OK
	}
	return ESYN
}

func (p *Parser) stepStd0(b byte) Code {
	switch b {
	case 'y':
		p.beginStringMatch("es", stStd3)
		return OK
	case 'n':
		p.beginStringMatch("o", stStd3)
		return OK
	}
	return ESYN
}
