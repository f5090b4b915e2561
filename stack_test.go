package xmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushstackPreservesParentSeparator(t *testing.T) {
	// given
	p := &Parser{}
	p.Init(make([]byte, 64))

	// when: push "root", then a nested "child" on top of it.
	require.Equal(t, OK, p.pushstack(&p.elem, 'r'))
	require.Equal(t, OK, p.pushstackc('o'))
	require.Equal(t, OK, p.pushstackc('o'))
	require.Equal(t, OK, p.pushstackc('t'))
	rootCursor := p.elem
	require.Equal(t, OK, p.pushstack(&p.elem, 'c'))
	require.Equal(t, OK, p.pushstackc('h'))
	childCursor := p.elem

	// then: root's own terminator was preserved, not stomped by the
	// child's first byte.
	assert.Equal(t, "root", string(p.name(rootCursor)))
	assert.Equal(t, "ch", string(p.name(childCursor)))

	// when the child pops
	p.popTop(childCursor)

	// then root's name is intact and its parentOffset is the sentinel.
	assert.Equal(t, "root", string(p.name(rootCursor)))
	assert.Equal(t, 0, p.parentOffset(rootCursor))
}

func TestParentOffsetThreeDeep(t *testing.T) {
	// given: a/b/c nested elements built the way stElem0/stepLe build
	// them: pushstack for the first byte, pushstackc for the rest.
	p := &Parser{}
	p.Init(make([]byte, 64))

	require.Equal(t, OK, p.pushstack(&p.elem, 'a'))
	aCursor := p.elem
	require.Equal(t, OK, p.pushstack(&p.elem, 'b'))
	bCursor := p.elem
	require.Equal(t, OK, p.pushstack(&p.elem, 'c'))
	cCursor := p.elem

	// then
	assert.Equal(t, bCursor, p.parentOffset(cCursor))
	assert.Equal(t, aCursor, p.parentOffset(bCursor))
	assert.Equal(t, 0, p.parentOffset(aCursor))
}

func TestPushstackRefusesToOverflow(t *testing.T) {
	// given: pushstack needs stacklen+3 <= stacksize (a byte for the
	// name, one for its terminator, and the leading sentinel it never
	// overwrites); a 2-byte buffer leaves no room for any of that.
	p := &Parser{}
	p.Init(make([]byte, 2))

	// then
	assert.Equal(t, ESTACK, p.pushstack(&p.elem, 'a'))
}

func TestPushstackcRefusesToOverflow(t *testing.T) {
	// given: after one pushstack, stacklen is 2; pushstackc needs
	// stacklen+2 <= stacksize, so a 3-byte buffer has no room left.
	p := &Parser{}
	p.Init(make([]byte, 3))
	require.Equal(t, OK, p.pushstack(&p.elem, 'a'))

	// then
	assert.Equal(t, ESTACK, p.pushstackc('b'))
}

func TestNameOfSentinelCursorIsNil(t *testing.T) {
	p := &Parser{}
	p.Init(make([]byte, 16))
	assert.Nil(t, p.name(0))
}
