package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF8ValidateWhole(t *testing.T) {
	var f UTF8
	assert.True(t, f.Validate([]byte("hello, 世界")))
	assert.True(t, f.Validate(nil))
	assert.False(t, f.Validate([]byte{0xFF}))
	assert.False(t, f.Validate([]byte{0xC0, 0x80}))
}

func TestUTF8ValidateRejectsIsolatedSurrogate(t *testing.T) {
	var f UTF8
	assert.False(t, f.Validate([]byte{0xED, 0xA0, 0x80}))
}

func TestUTF8ValidatePrefixAllowsTrailingTruncation(t *testing.T) {
	var f UTF8
	full := []byte("ok\U0001F600")
	for n := len(full); n > len(full)-4; n-- {
		assert.True(t, f.ValidatePrefix(full[:n]), "n=%d", n)
	}
	// an invalid byte earlier in the buffer still fails
	assert.False(t, f.ValidatePrefix([]byte{0xFF, 'a'}))
}

func TestUTF8ValidateSuffixAllowsLeadingContinuation(t *testing.T) {
	var f UTF8
	full := []byte("\U0001F600ok")
	for n := 1; n < 4; n++ {
		assert.True(t, f.ValidateSuffix(full[n:]), "n=%d", n)
	}
}

func TestUTF8ValidateSubseqAllowsBothEdges(t *testing.T) {
	var f UTF8
	full := []byte("\U0001F600mid\U0001F601")
	assert.True(t, f.ValidateSubseq(full[1:len(full)-1]))
}
