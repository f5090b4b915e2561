package xmltok

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rune sets below deliberately exclude '<', '&', and the current
// quote character from anything that lands in text or attribute value
// position: this generator's job is to build documents this tokenizer
// is guaranteed to accept, not to explore its error paths (that's
// randGarbage's job, in TestFuzzNoPanic below).
var (
	startNameRunes = []rune(":_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	restNameRunes  = []rune("0123456789-_.abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	textRunes      = []rune(" \t/:+*#.!$%[]=?'0123456789-_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	everythingRunes = []rune("<>&; \t\n\r\"'/:+*#.!$%[]=?0123456789-_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

func randName(r *rand.Rand) string {
	c := 1 + r.Intn(10)
	b := make([]rune, c)
	b[0] = startNameRunes[r.Intn(len(startNameRunes))]
	for i := 1; i < c; i++ {
		b[i] = restNameRunes[r.Intn(len(restNameRunes))]
	}
	return string(b)
}

func randText(r *rand.Rand) string {
	c := 1 + r.Intn(64)
	b := make([]rune, c)
	for i := 0; i < c; i++ {
		b[i] = textRunes[r.Intn(len(textRunes))]
	}
	return string(b)
}

func randGarbage(r *rand.Rand) string {
	c := r.Intn(2000)
	b := make([]rune, c)
	for i := 0; i < c; i++ {
		b[i] = everythingRunes[r.Intn(len(everythingRunes))]
	}
	return string(b)
}

// buildElement recursively emits a well-formed element: a name, zero
// or more attributes, and either a self-close or a body of nested
// elements/text followed by a matching close tag.
func buildElement(depth int, b *bytes.Buffer, r *rand.Rand) {
	name := randName(r)
	b.WriteString("<")
	b.WriteString(name)
	numAttrs := r.Intn(4)
	for j := 0; j < numAttrs; j++ {
		b.WriteString(" ")
		b.WriteString(randName(r))
		b.WriteString(`="`)
		b.WriteString(randText(r))
		b.WriteString(`"`)
	}
	if depth > 4 || r.Intn(3) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	children := r.Intn(4)
	for j := 0; j < children; j++ {
		if r.Intn(2) == 0 {
			buildElement(depth+1, b, r)
		} else {
			b.WriteString(randText(r))
		}
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func TestFuzzWellFormedDocumentsNeverFail(t *testing.T) {
	// given
	r := rand.New(rand.NewSource(123456789))
	const n = 2000

	for i := 0; i < n; i++ {
		var buf bytes.Buffer
		buildElement(0, &buf, r)
		doc := buf.Bytes()

		p := &Parser{}
		p.Init(make([]byte, 4096))

		// when
		var last Code
		for _, b := range doc {
			last = p.Parse(b)
			require.Falsef(t, last.IsError(), "doc=%q byte=%q code=%v", doc, b, last)
		}

		// then
		assert.Equalf(t, OK, p.EOF(), "doc=%q", doc)
	}
}

func TestFuzzNoPanic(t *testing.T) {
	// given
	r := rand.New(rand.NewSource(123456789))
	const n = 2000

	for i := 0; i < n; i++ {
		xml := randGarbage(r)

		p := &Parser{}
		p.Init(make([]byte, 256))

		// when/then: garbage may legitimately produce any error code,
		// the only requirement is that Parse never panics.
		for j := 0; j < len(xml); j++ {
			code := p.Parse(xml[j])
			if code.IsError() {
				break
			}
		}
	}
}

func TestFuzzNoPanicWithTinyScratch(t *testing.T) {
	// given: a scratch buffer too small for most names, to push ESTACK
	// paths through the same generator.
	r := rand.New(rand.NewSource(42))
	const n = 500

	for i := 0; i < n; i++ {
		var buf bytes.Buffer
		buildElement(0, &buf, r)
		doc := buf.Bytes()

		p := &Parser{}
		p.Init(make([]byte, 4))

		for _, b := range doc {
			if p.Parse(b).IsError() {
				break
			}
		}
	}
}
