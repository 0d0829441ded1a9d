package tendril

import (
	"bytes"
	"fmt"
)

// String renders the Tendril's bytes as a Go string. For format.Bytes
// content this may not be valid UTF-8; Go strings tolerate that.
func (t *Tendril[F, A]) String() string {
	return string(t.st.Bytes())
}

// GoString implements fmt.GoStringer for %#v debugging output.
func (t *Tendril[F, A]) GoString() string {
	return fmt.Sprintf("tendril.Tendril{%q}", t.st.Bytes())
}

// Equal reports whether t and other have identical content.
func (t *Tendril[F, A]) Equal(other *Tendril[F, A]) bool {
	return bytes.Equal(t.st.Bytes(), other.st.Bytes())
}

// Compare orders t and other lexicographically by content, like
// bytes.Compare.
func (t *Tendril[F, A]) Compare(other *Tendril[F, A]) int {
	return bytes.Compare(t.st.Bytes(), other.st.Bytes())
}

// Write implements io.Writer, appending p unvalidated (equivalent to
// PushBytesUnchecked). It never returns an error.
func (t *Tendril[F, A]) Write(p []byte) (int, error) {
	t.PushBytesUnchecked(p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (t *Tendril[F, A]) WriteString(s string) (int, error) {
	t.PushBytesUnchecked([]byte(s))
	return len(s), nil
}
