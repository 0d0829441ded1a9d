package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesAlwaysValid(t *testing.T) {
	var f Bytes
	bufs := [][]byte{nil, {}, {0xFF, 0x00, 0x80}, []byte("hello")}
	for _, b := range bufs {
		assert.True(t, f.Validate(b))
		assert.True(t, f.ValidatePrefix(b))
		assert.True(t, f.ValidateSuffix(b))
		assert.True(t, f.ValidateSubseq(b))
	}
}
