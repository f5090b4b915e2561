package xmltok

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderDrivesParserToCleanEOF(t *testing.T) {
	// given
	p := &Parser{}
	p.Init(make([]byte, 64))
	rr := NewReader(strings.NewReader(`<stuff major="lol">hey</stuff>`), p)

	// when
	var codes []Code
	for {
		code := rr.Next()
		require.False(t, code.IsError())
		if code == OK {
			break
		}
		codes = append(codes, code)
	}

	// then
	assert.Contains(t, codes, ELEMSTART)
	assert.Contains(t, codes, ATTRSTART)
	assert.Contains(t, codes, ATTRVAL)
	assert.Contains(t, codes, ATTREND)
	assert.Contains(t, codes, CONTENT)
	assert.Contains(t, codes, ELEMEND)
}

func TestReaderReportsUnexpectedEOF(t *testing.T) {
	// given: the reader runs out of bytes before the root element
	// closes.
	p := &Parser{}
	p.Init(make([]byte, 64))
	rr := NewReader(strings.NewReader("<a><b>"), p)

	// when
	var last Code
	for {
		last = rr.Next()
		if last == OK || last.IsError() {
			break
		}
	}

	// then
	assert.Equal(t, EEOF, last)
}

func TestReaderReportsParserErrorCode(t *testing.T) {
	// given
	p := &Parser{}
	p.Init(make([]byte, 64))
	rr := NewReader(strings.NewReader("<a><b></c></a>"), p)

	// when
	var last Code
	for {
		last = rr.Next()
		if last.IsError() {
			break
		}
	}

	// then
	assert.Equal(t, ECLOSE, last)
}

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReaderMapsUnderlyingReadErrorToEEOF(t *testing.T) {
	// given
	p := &Parser{}
	p.Init(make([]byte, 64))
	rr := NewReader(erroringReader{}, p)

	// when
	code := rr.Next()

	// then
	assert.Equal(t, EEOF, code)
}

func TestReaderHandlesInputLargerThanOneBuffer(t *testing.T) {
	// given: content long enough to force fill() to compact and refill
	// the ring buffer more than once.
	long := strings.Repeat("x", 10000)
	p := &Parser{}
	p.Init(make([]byte, 128))
	rr := NewReader(strings.NewReader("<a>"+long+"</a>"), p)

	// when
	var last Code
	for {
		last = rr.Next()
		if last == OK || last.IsError() {
			break
		}
	}

	// then
	assert.Equal(t, OK, last)
}
