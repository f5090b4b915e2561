package xmltok

// Character classifiers. Each is a table lookup over the full byte
// range, populated once in init(), rather than a chain of range
// comparisons.

var (
	spTable        [256]bool
	alphaTable     [256]bool
	numTable       [256]bool
	hexTable       [256]bool
	encNameTable   [256]bool
	nameStartTable [256]bool
	nameTable      [256]bool
	charTable      [256]bool
	refTable       [256]bool
)

func init() {
	spTable[' '] = true
	spTable['\t'] = true
	spTable['\n'] = true
	spTable['\r'] = true

	for c := byte('a'); c <= 'z'; c++ {
		alphaTable[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		alphaTable[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		numTable[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		hexTable[c] = true
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexTable[c] = true
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexTable[c] = true
	}

	for c := 0; c < 256; c++ {
		b := byte(c)
		encNameTable[b] = alphaTable[b] || numTable[b] || b == '.' || b == '_' || b == '-'
		nameStartTable[b] = alphaTable[b] || b == '_' || b == ':' || b >= 0x80
		nameTable[b] = nameStartTable[b] || numTable[b] || b == '-' || b == '.'
		refTable[b] = alphaTable[b] || numTable[b] || b == '#'
		// XML Char, ASCII-restricted: printable ASCII, tab/LF/CR, and
		// any UTF-8 continuation/lead byte (0x80-0xFF). Control bytes
		// below 0x20 other than whitespace are rejected.
		charTable[b] = b >= 0x20 || b == '\t' || b == '\n' || b == '\r' || b >= 0x80
	}
}

func isSP(b byte) bool        { return spTable[b] }
func isAlpha(b byte) bool     { return alphaTable[b] }
func isNum(b byte) bool       { return numTable[b] }
func isHex(b byte) bool       { return hexTable[b] }
func isEncName(b byte) bool   { return encNameTable[b] }
func isNameStart(b byte) bool { return nameStartTable[b] }
func isName(b byte) bool      { return nameTable[b] }
func isRef(b byte) bool       { return refTable[b] }
func isChar(b byte) bool      { return charTable[b] }

// isAttValue reports whether b may appear literally (unescaped) inside
// an attribute value. The caller is responsible for checking b against
// the currently open quote character separately.
func isAttValue(b byte) bool {
	return isChar(b) && b != '<' && b != '&'
}
