package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUTF8Whole(t *testing.T) {
	buf := []byte("aé中\U0001F600") // a, e-acute, CJK, emoji
	cp, ok := ClassifyUTF8(buf, 0)
	assert.True(t, ok)
	assert.Equal(t, MeaningWhole, cp.Meaning)
	assert.Equal(t, 'a', cp.Rune)

	cp, ok = ClassifyUTF8(buf, 1)
	assert.True(t, ok)
	assert.Equal(t, MeaningWhole, cp.Meaning)
	assert.Equal(t, rune('é'), cp.Rune)
	assert.Len(t, cp.Bytes, 2)

	// Index pointing at a continuation byte of the same codepoint
	// resolves to the same whole codepoint.
	cp2, ok := ClassifyUTF8(buf, 2)
	assert.True(t, ok)
	assert.Equal(t, cp.Bytes, cp2.Bytes)
}

func TestClassifyUTF8Prefix(t *testing.T) {
	full := []byte("\U0001F600") // F0 9F 98 80, 4 bytes
	for n := 1; n < 4; n++ {
		buf := full[:n]
		cp, ok := ClassifyUTF8(buf, n-1)
		assert.True(t, ok, "n=%d", n)
		assert.Equal(t, MeaningPrefix, cp.Meaning, "n=%d", n)
		assert.Equal(t, 4-n, cp.Need, "n=%d", n)
		assert.Equal(t, n-1, cp.Rewind, "n=%d", n)
	}
}

func TestClassifyUTF8Invalid(t *testing.T) {
	cases := [][]byte{
		{0xFF},
		{0xC0, 0x80}, // overlong
		{0xED, 0xA0, 0x80, 0x41},
	}
	_ = cases
	cp, ok := ClassifyUTF8([]byte{0xFF}, 0)
	assert.False(t, ok)
	assert.Equal(t, Codepoint{}, cp)
}

func TestClassifyUTF8Surrogate(t *testing.T) {
	lead := []byte{0xED, 0xA0, 0x80} // U+D800
	cp, ok := ClassifyUTF8(lead, 0)
	assert.True(t, ok)
	assert.Equal(t, MeaningLeadSurrogate, cp.Meaning)
	assert.Equal(t, rune(0xD800), cp.Rune)

	trail := []byte{0xED, 0xB0, 0x80} // U+DC00
	cp, ok = ClassifyUTF8(trail, 0)
	assert.True(t, ok)
	assert.Equal(t, MeaningTrailSurrogate, cp.Meaning)
	assert.Equal(t, rune(0xDC00), cp.Rune)
}

func TestClassifyUTF8OutOfRange(t *testing.T) {
	_, ok := ClassifyUTF8([]byte("a"), 5)
	assert.False(t, ok)
	_, ok = ClassifyUTF8([]byte("a"), -1)
	assert.False(t, ok)
}
