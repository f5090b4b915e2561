package xmltok

import "math/bits"

// Feed drives p over as much of data as it can consume, exactly as if
// Parse had been called once per byte in a loop: no event is skipped,
// coalesced, or reordered, and the tokenizer's one-event-per-byte
// contract is untouched. It returns the number of bytes consumed and
// the Code produced by the last Parse call. A negative Code stops Feed
// at the byte that produced it; an empty data returns (0, OK).
//
// The only thing Feed adds over a bare loop is a fast search for the
// end of a run of ordinary content or attribute-value bytes, so the
// caller's hot path avoids re-deriving that boundary one byte at a
// time: search for the next byte that could possibly end the run,
// then only do full work on what's left, gated on
// github.com/klauspost/cpuid/v2 feature checks.
func (p *Parser) Feed(data []byte) (int, Code) {
	i := 0
	last := OK
	for i < len(data) {
		end := i + 1
		switch p.state {
		case stMisc2:
			end = i + scanContentRun(data[i:])
		case stAttr3:
			end = i + scanAttrRun(data[i:], p.quote)
		}
		if end <= i {
			end = i + 1
		}
		for ; i < end; i++ {
			last = p.Parse(data[i])
			if last < OK {
				return i + 1, last
			}
		}
	}
	return i, last
}

// scanContentRun returns the length of the leading run of data that
// cannot possibly close or interrupt root content: no '<', '&', or
// '\r' (which needs the line-ending normaliser, not the fast path).
// It never inspects the classify tables that decide validity; Feed
// still routes every byte through Parse, so an invalid byte inside
// the run is still caught, just after the boundary search finishes.
func scanContentRun(data []byte) int {
	if canUseWideScan {
		return wideContentRun(data)
	}
	return genericContentRun(data)
}

// scanAttrRun is scanContentRun's counterpart inside a quoted
// attribute value: it stops at the closing quote, '&', or a raw '\r'.
func scanAttrRun(data []byte, quote byte) int {
	if canUseWideScan {
		return wideAttrRun(data, quote)
	}
	return genericAttrRun(data, quote)
}

func genericContentRun(data []byte) int {
	for i, b := range data {
		if b == '<' || b == '&' || b == '\r' {
			return i
		}
	}
	return len(data)
}

func genericAttrRun(data []byte, quote byte) int {
	for i, b := range data {
		if b == quote || b == '&' || b == '\r' {
			return i
		}
	}
	return len(data)
}

// swarFindAny3 finds the index of the first byte in data equal to a,
// b, or c using the classic SWAR "haszero" trick eight bytes at a
// time, falling back to a byte loop for the remainder. It has no
// architecture-specific instructions of its own; canUseWideScan
// (bulk_amd64.go/bulk_arm64.go) only decides whether the extra word
// packing is worth it on a given CPU.
func swarFindAny3(data []byte, a, b, c byte) int {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	splat := func(x byte) uint64 { return lo * uint64(x) }
	sa, sb, sc := splat(a), splat(b), splat(c)
	i := 0
	for ; i+8 <= len(data); i += 8 {
		v := uint64(data[i]) | uint64(data[i+1])<<8 | uint64(data[i+2])<<16 |
			uint64(data[i+3])<<24 | uint64(data[i+4])<<32 | uint64(data[i+5])<<40 |
			uint64(data[i+6])<<48 | uint64(data[i+7])<<56
		hasZero := func(w uint64) uint64 { return (w - lo) & ^w & hi }
		mask := hasZero(v^sa) | hasZero(v^sb) | hasZero(v^sc)
		if mask != 0 {
			return i + bits.TrailingZeros64(mask)/8
		}
	}
	for ; i < len(data); i++ {
		if data[i] == a || data[i] == b || data[i] == c {
			return i
		}
	}
	return len(data)
}
