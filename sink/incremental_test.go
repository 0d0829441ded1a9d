package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8SplitsIncompleteTail(t *testing.T) {
	emoji := []byte("\U0001F600")
	buf := append([]byte("hi"), emoji[:3]...)

	valid, inc := DecodeUTF8(buf)
	assert.Equal(t, "hi", string(valid))
	require.NotNil(t, inc)

	completed, rest := inc.TryComplete(emoji[3:])
	assert.Equal(t, emoji, completed)
	assert.Empty(t, rest)
}

func TestDecodeUTF8WholeBufferNoIncomplete(t *testing.T) {
	valid, inc := DecodeUTF8([]byte("complete"))
	assert.Equal(t, "complete", string(valid))
	assert.Nil(t, inc)
}

func TestDecodeUTF8StopsAtIsolatedSurrogate(t *testing.T) {
	// WTF-8 encoding of an isolated high surrogate (U+D83D): valid WTF-8,
	// not valid strict UTF-8, so it must not appear in DecodeUTF8's output.
	surrogate := []byte{0xED, 0xA0, 0xBD}
	buf := append([]byte("hi"), surrogate...)

	valid, inc := DecodeUTF8(buf)
	assert.Equal(t, "hi", string(valid))
	assert.Nil(t, inc)
}

func TestIncompleteUTF8TryCompleteStillIncomplete(t *testing.T) {
	emoji := []byte("\U0001F600")
	_, inc := DecodeUTF8(emoji[:1])
	completed, rest := inc.TryComplete(emoji[1:3])
	assert.Nil(t, completed)
	assert.Nil(t, rest)

	completed, rest = inc.TryComplete(emoji[3:])
	assert.Equal(t, emoji, completed)
	assert.Empty(t, rest)
}
