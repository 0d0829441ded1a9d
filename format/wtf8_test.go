package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func surrogateBytes(cp rune) []byte {
	return EncodeWTF8Char(cp)
}

func TestWTF8ValidateAcceptsIsolatedSurrogates(t *testing.T) {
	var f WTF8
	lead := surrogateBytes(0xD800)
	trail := surrogateBytes(0xDC00)
	assert.True(t, f.Validate(lead))
	assert.True(t, f.Validate(trail))
	assert.True(t, f.Validate([]byte("plain text")))
}

func TestWTF8ValidateRejectsAdjacentSurrogatePair(t *testing.T) {
	var f WTF8
	pair := append(surrogateBytes(0xD800), surrogateBytes(0xDC00)...)
	assert.False(t, f.Validate(pair), "an adjacent pair must be folded by Fixup, not stored raw")
}

func TestWTF8FixupCombinesSurrogatePair(t *testing.T) {
	var f WTF8
	lhs := append([]byte("x"), surrogateBytes(0xD83D)...) // high surrogate of U+1F600
	rhs := append(surrogateBytes(0xDE00), []byte("y")...) // low surrogate of U+1F600

	fixup := f.Fixup(lhs, rhs)
	assert.False(t, fixup.IsNop())
	assert.Equal(t, uint32(3), fixup.DropLeft)
	assert.Equal(t, uint32(3), fixup.DropRight)
	assert.Equal(t, uint32(4), fixup.InsertLen)
	assert.Equal(t, []byte("\U0001F600"), fixup.InsertBytes[:fixup.InsertLen])
}

func TestWTF8FixupNopWhenNoPairAtBoundary(t *testing.T) {
	var f WTF8
	assert.True(t, f.Fixup([]byte("abc"), []byte("def")).IsNop())
	assert.True(t, f.Fixup(nil, []byte("def")).IsNop())
	assert.True(t, f.Fixup(surrogateBytes(0xD800), []byte("z")).IsNop())
}

func TestWTF8ValidatePrefixSuffixSubseq(t *testing.T) {
	var f WTF8
	full := []byte("ok\U0001F600")
	assert.True(t, f.ValidatePrefix(full[:len(full)-2]))

	suffixSrc := append(surrogateBytes(0xD800), []byte("ok")...)
	assert.True(t, f.ValidateSuffix(suffixSrc[1:]))
}
