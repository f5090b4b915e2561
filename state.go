package xmltok

// State is one of the tokenizer's named states. The machine advances
// one input byte at a time; a State never implies any recursion or
// call-stack depth, so nesting is bounded only by the caller-supplied
// scratch buffer.
type State int

const (
	stInit State = iota

	// "between markup" states, one per allowed document position.
	stMisc0  // before the XML declaration
	stMisc1  // after the XML declaration, still in the prolog
	stMisc2  // inside root element content
	stMisc2a // resolving a reference inside content
	stMisc3  // after the root element has closed

	// '<' dispatch, one per misc context.
	stLe0
	stLe1
	stLe2
	stLe3
	stLee1 // saw '<!', deciding comment/CDATA/DOCTYPE
	stLee2 // saw '<!-', waiting for the second '-'
	stLeq0 // saw '<?', reading the PI/decl target

	// open tag.
	stElem0 // element name
	stElem1 // whitespace after name, before first attribute
	stElem2 // whitespace after an attribute, before the next or '>'
	stElem3 // saw '/', expecting '>'

	// attribute.
	stAttr0 // attribute name
	stAttr1 // whitespace before '='
	stAttr2 // whitespace after '=', before opening quote
	stAttr3 // quoted value body
	stAttr4 // reference inside value

	// close tag.
	stEtag0 // name, byte-matched against the open element
	stEtag1 // unused: reserved for a stricter split of name-matching
	stEtag2 // trailing whitespace before '>'

	// processing instruction.
	stPi0 // leading whitespace/first body byte after a ws-terminated target
	stPi1 // first body byte after a '?'-terminated (empty so far) target
	stPi2 // body byte scanning
	stPi3 // one pending '?' seen while scanning the body
	stPi4 // one pending '?' seen with no body content yet

	// CDATA section body ("]]>" terminated).
	stCd0 // scanning
	stCd1 // one pending ']'
	stCd2 // two pending ']]'

	// comment ("-->" terminated), silently dropped.
	stComment0 // scanning
	stComment1 // one pending '-'
	stComment2 // two pending '--'
	stComment3 // reserved: dash-run-length >= 3, folds into stComment2
	stComment4 // reserved: dash-run-length >= 4, folds into stComment2

	// DOCTYPE, silently dropped.
	stDt0 // top-level scanning, outside the internal subset
	stDt1 // inside a quoted literal
	stDt2 // saw '<!' inside DOCTYPE, expecting '-' to open a comment
	stDt3 // scanning inside the internal subset "[ ... ]"
	stDt4 // saw '<' inside DOCTYPE, expecting '!'

	// literal ASCII string matcher, shared by BOM/keyword matching.
	stString

	// XML declaration.
	stXmldecl0 // leading whitespace, expect "version"
	stXmldecl1 // after "version", expect '='
	stXmldecl2 // after '=', expect opening quote
	stXmldecl3 // after version value: expect "encoding", "standalone" or close
	stXmldecl4 // after "encoding", expect '='
	stXmldecl5 // after '=', expect opening quote
	stXmldecl6 // after "standalone" (reached via 's'), expect '='
	stXmldecl7 // after encoding value: expect "standalone" or close
	stXmldecl8 // after '=' for standalone, expect opening quote
	stXmldecl9 // saw '?', expect '>' to finish the declaration

	stVer0 // "1"
	stVer1 // "."
	stVer2 // single digit
	stVer3 // closing quote

	stEnc0 // encoding name body

	stStd0 // "y" or "n"
	stStd1 // after the value, before close
	stStd2 // reserved
	stStd3 // closing quote after "yes"/"no" literal match
)
