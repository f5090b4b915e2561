package xmltok

import "io"

// Reader buffers bytes from an io.Reader and drives a Parser one byte
// at a time, without pulling in bufio's larger general-purpose
// machinery.
type Reader struct {
	buf [4096]byte
	rd  io.Reader
	r   int
	w   int

	p   *Parser
	err error
}

// NewReader wires rd as the byte source for p. p must already be
// initialised with Init.
func NewReader(rd io.Reader, p *Parser) *Reader {
	return &Reader{rd: rd, p: p}
}

func (rr *Reader) fill() error {
	if rr.r > 0 {
		copy(rr.buf[:], rr.buf[rr.r:rr.w])
		rr.w -= rr.r
		rr.r = 0
	}
	n, err := rr.rd.Read(rr.buf[rr.w:])
	rr.w += n
	if n <= 0 && err != nil {
		return err
	}
	return nil
}

// Next feeds buffered bytes into the Parser, one at a time, until it
// returns something other than OK, and reports that Code. Once the
// underlying reader is exhausted, Next reports the Parser's own EOF
// verdict; any other read error is reported as EEOF.
func (rr *Reader) Next() Code {
	if rr.err != nil {
		return rr.eofCode()
	}
	for {
		for rr.r < rr.w {
			b := rr.buf[rr.r]
			rr.r++
			if code := rr.p.Parse(b); code != OK {
				return code
			}
		}
		if err := rr.fill(); err != nil {
			rr.err = err
			return rr.eofCode()
		}
	}
}

func (rr *Reader) eofCode() Code {
	if rr.err == io.EOF {
		return rr.p.EOF()
	}
	return EEOF
}
