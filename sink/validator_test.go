package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
	"github.com/go-tendril/tendril/internal/ttesting"
)

func bytesTendril(b []byte) tendril.Tendril[format.Bytes, tendril.NonAtomic] {
	return tendril.FromByteSliceUnchecked[format.Bytes, tendril.NonAtomic](b)
}

func TestUTF8ValidatorWholeChunks(t *testing.T) {
	inner := ttesting.NewMockSink[format.UTF8, tendril.NonAtomic]()
	v := NewUTF8Validator[tendril.NonAtomic, string](inner)
	require.NoError(t, v.Process(bytesTendril([]byte("hello "))))
	require.NoError(t, v.Process(bytesTendril([]byte("world"))))
	assert.Equal(t, "hello world", v.Finish())
	assert.Empty(t, inner.Errors)
}

func TestUTF8ValidatorStraddlesChunkBoundary(t *testing.T) {
	inner := ttesting.NewMockSink[format.UTF8, tendril.NonAtomic]()
	v := NewUTF8Validator[tendril.NonAtomic, string](inner)

	emoji := []byte("\U0001F600") // 4 bytes: F0 9F 98 80
	require.NoError(t, v.Process(bytesTendril(append([]byte("a"), emoji[:2]...))))
	require.NoError(t, v.Process(bytesTendril(emoji[2:])))
	assert.Equal(t, "a\U0001F600", v.Finish())
	assert.Empty(t, inner.Errors)
}

func TestUTF8ValidatorReportsTruncatedTail(t *testing.T) {
	inner := ttesting.NewMockSink[format.UTF8, tendril.NonAtomic]()
	v := NewUTF8Validator[tendril.NonAtomic, string](inner)

	emoji := []byte("\U0001F600")
	require.NoError(t, v.Process(bytesTendril(append([]byte("x"), emoji[:2]...))))
	v.Finish()
	assert.Len(t, inner.Errors, 1)
}

func TestUTF8ValidatorRecoversFromInvalidByte(t *testing.T) {
	inner := ttesting.NewMockSink[format.UTF8, tendril.NonAtomic]()
	v := NewUTF8Validator[tendril.NonAtomic, string](inner)

	require.NoError(t, v.Process(bytesTendril([]byte{'a', 0xFF, 'b'})))
	out := v.Finish()
	assert.Equal(t, "a�b", out)
	assert.Len(t, inner.Errors, 1)
}

func TestUTF8ValidatorChunkScenarios(t *testing.T) {
	cases := []struct {
		name   string
		input  [][]byte
		chunks []string
		errs   int
	}{
		{
			name:   "empty",
			input:  nil,
			chunks: nil,
			errs:   0,
		},
		{
			name:   "no straddling",
			input:  [][]byte{[]byte("x"), []byte("y"), []byte("z")},
			chunks: []string{"x", "y", "z"},
			errs:   0,
		},
		{
			// scenario 4: a 3-byte codepoint split byte-by-byte across
			// three chunks reassembles into a single output chunk.
			name:   "straddling codepoint reassembles cleanly",
			input:  [][]byte{[]byte("xy\xEA"), []byte("\x99"), []byte("\xAE")},
			chunks: []string{"xy", "ꙮ"},
			errs:   0,
		},
		{
			// scenario 5: a straddling prefix is completed by garbage
			// (0xFF) that can never finish it, and the next chunk's
			// own invalid lead byte is reported separately. Exactly
			// one error for the unresolved pfx, one for the remaining
			// chunk.
			name:   "straddling codepoint completed by invalid byte",
			input:  [][]byte{[]byte("xy\xEA"), []byte("\xFF"), []byte("\x99\xAEz")},
			chunks: []string{"xy", "�", "�z"},
			errs:   2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inner := ttesting.NewMockSink[format.UTF8, tendril.NonAtomic]()
			v := NewUTF8Validator[tendril.NonAtomic, string](inner)
			for _, chunk := range c.input {
				require.NoError(t, v.Process(bytesTendril(chunk)))
			}
			v.Finish()
			assert.Equal(t, c.chunks, inner.Chunks)
			assert.Len(t, inner.Errors, c.errs)
		})
	}
}
